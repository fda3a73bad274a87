package drinklabels

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/ukaji3/drinklabels-go/pkg/drinklabels/models"
	"github.com/ukaji3/drinklabels-go/pkg/drinklabels/parser"
)

const testHeader = "Table Number(s),Contact,Pax,Notes,Soft Drink List,Wine List,Cider List,Ale List,Spirit List,Customers"

func writeOrders(t *testing.T, rows ...string) string {
	t.Helper()
	content := strings.Join(append([]string{"Drinks pre-order", "Exported", testHeader, "0,Example,1,,,,,,,"}, rows...), "\n")
	path := filepath.Join(t.TempDir(), "orders.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write orders: %v", err)
	}
	return path
}

func TestBuild(t *testing.T) {
	path := writeOrders(t,
		`5,Jane Smith,2,,"2 Coca Cola (330ml), 1 Diet Coke (330ml)",,,,,`,
		`20,Ann Lee,4,Window,,1 Merlot (12.5% vol),,,,2 Prosecco (20cl Bottles)`,
		`5,Bob Ray,2,,3 Coca Cola (330ml),,,,1 Gordon's Gin (37.5% vol),`,
		`41,Kitchen,1,,1 Coca Cola (330ml),,,,,`,
	)

	result, err := Build(context.Background(), path, DefaultOptions())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if result.Source != "orders.csv" {
		t.Errorf("Source = %q, expected orders.csv", result.Source)
	}
	if len(result.Tables) != 3 {
		t.Fatalf("Expected 3 tables, got %d", len(result.Tables))
	}

	five := result.Tables[0]
	if five.Number != 5 || five.Pax != 4 || five.Contact != "Jane Smith, Bob Ray" {
		t.Errorf("Unexpected table 5: %+v", five)
	}
	expectedSoft := []models.OrderedDrink{
		{Name: "COKE", Thermal: models.Cold, Qty: 5},
		{Name: "DIET COKE", Thermal: models.Cold, Qty: 1},
	}
	if !reflect.DeepEqual(five.SoftDrinks, expectedSoft) {
		t.Errorf("Table 5 soft drinks = %+v, expected %+v", five.SoftDrinks, expectedSoft)
	}
	if five.Glassware == nil || five.Glassware.Tumbler != 4 {
		t.Errorf("Table 5 glassware = %+v", five.Glassware)
	}

	if result.Tables[1].Number != 20 || result.Tables[2].Number != 41 {
		t.Errorf("Tables out of order: %d, %d", result.Tables[1].Number, result.Tables[2].Number)
	}
	if result.Tables[2].Glassware != nil {
		t.Errorf("Table 41 should have no glassware, got %+v", result.Tables[2].Glassware)
	}

	if len(result.Zones) != 6 {
		t.Fatalf("Expected 6 zones, got %d", len(result.Zones))
	}
	aLydney := result.Zones[0]
	if aLydney.Cold.Get("COKE") != 5 || aLydney.Warm.Get("GIN") != 1 {
		t.Errorf("A Lydney = warm %v cold %v", aLydney.Warm.Map(), aLydney.Cold.Map())
	}
	cLydney := result.Zones[2]
	if cLydney.Cold.Get("SMALL PROSECCO") != 2 || cLydney.Warm.Get("MERLOT") != 1 {
		t.Errorf("C Lydney = warm %v cold %v", cLydney.Warm.Map(), cLydney.Cold.Map())
	}

	// Table 41 sits outside every zone
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "table 41") {
		t.Errorf("Warnings = %q", result.Warnings)
	}

	expectedTotals := models.Glassware{Tumbler: 156, Wine: 140, Pint: 124, Prosecco: 28}
	if result.GlasswareTotals != expectedTotals {
		t.Errorf("GlasswareTotals = %+v, expected %+v", result.GlasswareTotals, expectedTotals)
	}
}

func TestBuildExcludesUnknownDrinks(t *testing.T) {
	path := writeOrders(t,
		`3,Ann Lee,2,,"2 Coca Cola (330ml), 4 Coca Colla (330ml)",,,,,`,
	)

	result, err := Build(context.Background(), path, DefaultOptions())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if got := result.Tables[0].SoftDrinks; len(got) != 1 || got[0].Qty != 2 {
		t.Errorf("Soft drinks = %+v, expected only 2 COKE", got)
	}
	if result.Zones[0].Cold.Get("COKE") != 2 || result.Zones[0].Cold.Len() != 1 {
		t.Errorf("Zone totals include unknown drink: %v", result.Zones[0].Cold.Map())
	}
	if len(result.Dropped) != 1 || result.Dropped[0].Text != "4 Coca Colla (330ml)" {
		t.Errorf("Dropped = %+v", result.Dropped)
	}
}

func TestBuildSkipsBadRows(t *testing.T) {
	path := writeOrders(t,
		`T9,Ann Lee,2,,1 Coca Cola (330ml),,,,,`,
		`4,Bob Ray,2,,1 Coca Cola (330ml),,,,,`,
	)

	result, err := Build(context.Background(), path, DefaultOptions())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(result.Tables) != 1 || result.Tables[0].Number != 4 {
		t.Errorf("Expected only table 4, got %+v", result.Tables)
	}
	if len(result.Skipped) != 1 || result.Skipped[0].Line != 5 || result.Skipped[0].Field != models.FieldTable {
		t.Errorf("Skipped = %+v", result.Skipped)
	}

	opts := DefaultOptions()
	opts.Strict = true
	_, err = Build(context.Background(), path, opts)
	if !errors.Is(err, parser.ErrInvalidTableNumber) {
		t.Errorf("Strict build error = %v, expected ErrInvalidTableNumber", err)
	}
	var stageErr *StageError
	if !errors.As(err, &stageErr) || stageErr.Stage != "parse" {
		t.Errorf("Expected parse StageError, got %#v", err)
	}
}

func TestBuildWarnsOnUnreadablePax(t *testing.T) {
	path := writeOrders(t,
		`5,Jane Smith,six,,1 Coca Cola (330ml),,,,,`,
	)

	result, err := Build(context.Background(), path, DefaultOptions())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(result.Tables) != 1 || result.Tables[0].Pax != 0 {
		t.Fatalf("Tables = %+v, expected table 5 with pax 0", result.Tables)
	}
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], `line 5: pax "six"`) {
		t.Errorf("Warnings = %q", result.Warnings)
	}
	if len(result.Dropped) != 1 || result.Dropped[0].Field != models.FieldPax {
		t.Errorf("Dropped = %+v", result.Dropped)
	}
}

func TestBuildErrors(t *testing.T) {
	_, err := Build(context.Background(), filepath.Join(t.TempDir(), "missing.csv"), DefaultOptions())
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("Expected ErrFileNotFound, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "orders.csv")
	if err := os.WriteFile(path, []byte("a\nb\nTable Number(s),Contact\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err = Build(context.Background(), path, DefaultOptions())
	if !errors.Is(err, parser.ErrMissingColumn) {
		t.Errorf("Expected ErrMissingColumn, got %v", err)
	}
}

func TestProcessCancelled(t *testing.T) {
	ref, err := DefaultOptions().reference()
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	recs := []models.RawRecord{{Line: 5, Values: map[models.Field]string{models.FieldTable: "1"}}}
	if _, err := Process(ctx, recs, ref, DefaultOptions()); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}
