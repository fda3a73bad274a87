package tables

import (
	"reflect"
	"testing"

	"github.com/ukaji3/drinklabels-go/pkg/drinklabels/models"
)

var glassTable = map[int]models.Glassware{
	1: {Tumbler: 4, Wine: 4, Pint: 2},
	2: {Tumbler: 2, Prosecco: 2},
	9: {Pint: 6},
}

func TestAttachGlassware(t *testing.T) {
	orders := []models.TableOrder{{Number: 1}, {Number: 2}, {Number: 41}}

	annotated := AttachGlassware(orders, glassTable)
	if annotated[0].Glassware == nil || *annotated[0].Glassware != glassTable[1] {
		t.Errorf("Table 1 glassware = %+v, expected %+v", annotated[0].Glassware, glassTable[1])
	}
	if annotated[1].Glassware == nil || *annotated[1].Glassware != glassTable[2] {
		t.Errorf("Table 2 glassware = %+v, expected %+v", annotated[1].Glassware, glassTable[2])
	}
	if annotated[2].Glassware != nil {
		t.Errorf("Table 41 glassware = %+v, expected unset", annotated[2].Glassware)
	}
	if orders[0].Glassware != nil {
		t.Errorf("AttachGlassware modified its input")
	}

	// Entries are copies, not shared with the table
	annotated[0].Glassware.Tumbler = 100
	if glassTable[1].Tumbler != 4 {
		t.Errorf("Attached glassware aliases the reference table")
	}
}

func TestAttachGlasswareIdempotent(t *testing.T) {
	orders := []models.TableOrder{{Number: 1}, {Number: 9}, {Number: 3}}

	once := AttachGlassware(orders, glassTable)
	twice := AttachGlassware(once, glassTable)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Second pass changed values: %+v vs %+v", once, twice)
	}
}

func TestGlasswareTotals(t *testing.T) {
	expected := models.Glassware{Tumbler: 6, Wine: 4, Pint: 8, Prosecco: 2}
	if result := GlasswareTotals(glassTable); result != expected {
		t.Errorf("GlasswareTotals = %+v, expected %+v", result, expected)
	}
	if result := GlasswareTotals(nil); !result.IsZero() {
		t.Errorf("GlasswareTotals(nil) = %+v, expected zero", result)
	}
}
