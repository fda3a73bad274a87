package parser

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/ukaji3/drinklabels-go/pkg/drinklabels/models"
	"github.com/ukaji3/drinklabels-go/pkg/drinklabels/reference"
)

func defaultReference(t *testing.T) *reference.Data {
	t.Helper()
	ref, err := reference.Default()
	if err != nil {
		t.Fatalf("reference.Default failed: %v", err)
	}
	return ref
}

func record(line int, values map[models.Field]string) models.RawRecord {
	return models.RawRecord{Line: line, Values: values}
}

func TestParseRow(t *testing.T) {
	ref := defaultReference(t)

	rec := record(7, map[models.Field]string{
		models.FieldTable:   "12, 13,14",
		models.FieldContact: " Jane Smith ",
		models.FieldPax:     "6",
		models.FieldNotes:   "Birthday",
		models.CategoryField(models.SoftDrinks): "2 Coca Cola (330ml), 1 Diet Coke (330ml), 1 Coca Cola (330ml)",
		models.CategoryField(models.Wines):      "1 Merlot (12.5% vol), 1 Pinot Grigio (12% vol)",
		models.CategoryField(models.Specials):   "2 Prosecco (20cl Bottles), 1 Prosecco (75cl Bottle)",
	})

	order, dropped, err := ParseRow(rec, ref)
	if err != nil {
		t.Fatalf("ParseRow failed: %v", err)
	}
	if len(dropped) != 0 {
		t.Errorf("Expected no dropped items, got %+v", dropped)
	}

	if order.Number != 12 || order.Label != "12" {
		t.Errorf("Expected table 12, got %d (%q)", order.Number, order.Label)
	}
	if !reflect.DeepEqual(order.PlusTables, []string{"13", "14"}) {
		t.Errorf("Expected plus tables [13 14], got %q", order.PlusTables)
	}
	if order.Contact != "Jane Smith" || order.Pax != 6 || order.Notes != "Birthday" || order.Line != 7 {
		t.Errorf("Unexpected identity fields: %+v", order)
	}

	expectedSoft := []models.OrderedDrink{
		{Name: "COKE", Thermal: models.Cold, Qty: 3},
		{Name: "DIET COKE", Thermal: models.Cold, Qty: 1},
	}
	if !reflect.DeepEqual(order.SoftDrinks, expectedSoft) {
		t.Errorf("SoftDrinks = %+v, expected %+v", order.SoftDrinks, expectedSoft)
	}

	expectedWines := []models.OrderedDrink{
		{Name: "MERLOT", Thermal: models.Warm, Qty: 1},
		{Name: "PINOT G", Thermal: models.Cold, Qty: 1},
	}
	if !reflect.DeepEqual(order.Wines, expectedWines) {
		t.Errorf("Wines = %+v, expected %+v", order.Wines, expectedWines)
	}

	// "Bottles" is rewritten before lookup
	expectedSpecials := []models.OrderedDrink{
		{Name: "SMALL PROSECCO", Thermal: models.Cold, Qty: 2},
		{Name: "LARGE PROSECCO", Thermal: models.Cold, Qty: 1},
	}
	if !reflect.DeepEqual(order.Specials, expectedSpecials) {
		t.Errorf("Specials = %+v, expected %+v", order.Specials, expectedSpecials)
	}
	if order.Glassware != nil {
		t.Errorf("Expected glassware unset after parsing, got %+v", order.Glassware)
	}
}

func TestParseRowDropsUnknownItems(t *testing.T) {
	ref := defaultReference(t)

	rec := record(3, map[models.Field]string{
		models.FieldTable: "5",
		models.CategoryField(models.SoftDrinks): "2 Coca Kola (330ml), 1 Diet Coke (330ml)",
		models.CategoryField(models.Ales):       "a Steam IPA (4.6% vol)",
		// Catalogued, but under a different category
		models.CategoryField(models.Ciders): "1 Merlot (12.5% vol)",
	})

	order, dropped, err := ParseRow(rec, ref)
	if err != nil {
		t.Fatalf("ParseRow failed: %v", err)
	}

	expected := []models.OrderedDrink{{Name: "DIET COKE", Thermal: models.Cold, Qty: 1}}
	if !reflect.DeepEqual(order.SoftDrinks, expected) {
		t.Errorf("SoftDrinks = %+v, expected %+v", order.SoftDrinks, expected)
	}
	if len(order.Ales) != 0 || len(order.Ciders) != 0 {
		t.Errorf("Expected no ales or ciders, got %+v / %+v", order.Ales, order.Ciders)
	}

	if len(dropped) != 3 {
		t.Fatalf("Expected 3 dropped items, got %d: %+v", len(dropped), dropped)
	}
	reasons := map[models.Category]string{}
	for _, d := range dropped {
		if d.Line != 3 {
			t.Errorf("Dropped item line = %d, expected 3", d.Line)
		}
		reasons[d.Category] = d.Reason
	}
	if reasons[models.SoftDrinks] != "not in catalog" || reasons[models.Ales] != "no quantity" || reasons[models.Ciders] != "not in catalog" {
		t.Errorf("Unexpected drop reasons: %v", reasons)
	}
}

func TestParseRowTableNumbers(t *testing.T) {
	ref := defaultReference(t)

	tests := []struct {
		field    string
		number   int
		label    string
		plus     []string
		expected error
	}{
		{"5", 5, "5", nil, nil},
		{" 7 ,8", 7, "7", []string{"8"}, nil},
		{"09", 9, "09", nil, nil},
		{"9a", 0, "", nil, ErrInvalidTableNumber},
		{",10", 10, "10", nil, nil},
		{"", 0, "", nil, ErrMissingTableNumber},
		{" , ", 0, "", nil, ErrMissingTableNumber},
		{"T5", 0, "", nil, ErrInvalidTableNumber},
	}

	for _, tt := range tests {
		rec := record(4, map[models.Field]string{models.FieldTable: tt.field})
		order, _, err := ParseRow(rec, ref)
		if tt.expected != nil {
			if !errors.Is(err, tt.expected) {
				t.Errorf("ParseRow(%q) error = %v, expected %v", tt.field, err, tt.expected)
			}
			var rowErr *RowError
			if !errors.As(err, &rowErr) || rowErr.Line != 4 || rowErr.Field != models.FieldTable {
				t.Errorf("ParseRow(%q) error = %#v, expected *RowError on line 4", tt.field, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseRow(%q) failed: %v", tt.field, err)
			continue
		}
		if order.Number != tt.number || order.Label != tt.label || !reflect.DeepEqual(order.PlusTables, tt.plus) {
			t.Errorf("ParseRow(%q) = %d %q %q, expected %d %q %q",
				tt.field, order.Number, order.Label, order.PlusTables, tt.number, tt.label, tt.plus)
		}
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		input    string
		expected int
		ok       bool
	}{
		{"4", 4, true},
		{" 12 ", 12, true},
		{"6 people", 6, true},
		{"", 0, true},
		{"  ", 0, true},
		{"six", 0, false},
	}

	for _, tt := range tests {
		result, ok := parseCount(tt.input)
		if result != tt.expected || ok != tt.ok {
			t.Errorf("parseCount(%q) = %d, %v, expected %d, %v", tt.input, result, ok, tt.expected, tt.ok)
		}
	}
}

func TestParseRowReportsUnreadablePax(t *testing.T) {
	ref := defaultReference(t)

	rec := record(6, map[models.Field]string{
		models.FieldTable: "5",
		models.FieldPax:   " six ",
	})
	order, dropped, err := ParseRow(rec, ref)
	if err != nil {
		t.Fatalf("ParseRow failed: %v", err)
	}
	if order.Pax != 0 {
		t.Errorf("Pax = %d, expected 0", order.Pax)
	}
	if len(dropped) != 1 {
		t.Fatalf("Dropped = %+v, expected one pax entry", dropped)
	}
	d := dropped[0]
	if d.Field != models.FieldPax || d.Text != "six" || d.Line != 6 || d.Category != "" {
		t.Errorf("Dropped = %+v", d)
	}

	rec.Values[models.FieldPax] = "4"
	if _, dropped, _ := ParseRow(rec, ref); len(dropped) != 0 {
		t.Errorf("Dropped = %+v for a numeric pax", dropped)
	}
}

func TestParseRowsPreservesOrder(t *testing.T) {
	ref := defaultReference(t)

	var recs []models.RawRecord
	for i := 0; i < 50; i++ {
		table := "x"
		if i%10 != 0 {
			table = string(rune('0'+i%10)) + "0"
		}
		recs = append(recs, record(i+4, map[models.Field]string{models.FieldTable: table}))
	}

	outcomes, err := ParseRows(context.Background(), recs, ref, 4)
	if err != nil {
		t.Fatalf("ParseRows failed: %v", err)
	}
	if len(outcomes) != len(recs) {
		t.Fatalf("Expected %d outcomes, got %d", len(recs), len(outcomes))
	}
	for i, oc := range outcomes {
		if i%10 == 0 {
			if oc.Err == nil {
				t.Errorf("Outcome %d: expected error for table %q", i, recs[i].Get(models.FieldTable))
			}
			continue
		}
		if oc.Err != nil {
			t.Errorf("Outcome %d: unexpected error %v", i, oc.Err)
			continue
		}
		if oc.Order.Line != recs[i].Line || oc.Order.Number != (i%10)*10 {
			t.Errorf("Outcome %d: got line %d table %d", i, oc.Order.Line, oc.Order.Number)
		}
	}
}

func TestParseRowsCancelled(t *testing.T) {
	ref := defaultReference(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	recs := []models.RawRecord{record(4, map[models.Field]string{models.FieldTable: "1"})}
	if _, err := ParseRows(ctx, recs, ref, 1); !errors.Is(err, context.Canceled) {
		t.Errorf("ParseRows error = %v, expected context.Canceled", err)
	}
}
