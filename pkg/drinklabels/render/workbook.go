package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/ukaji3/drinklabels-go/pkg/drinklabels/models"
	"github.com/xuri/excelize/v2"
)

const (
	sheetTables = "Tables"
	sheetCrates = "Crates"
	sheetGlass  = "Glassware"
)

// Workbook writes the run as a spreadsheet: one row per table, one row per
// zone and drink, and the glassware totals.
func Workbook(w io.Writer, result *models.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetTables); err != nil {
		return err
	}
	for _, name := range []string{sheetCrates, sheetGlass} {
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	if err := writeTableSheet(f, result.Tables, bold); err != nil {
		return fmt.Errorf("workbook %s: %w", sheetTables, err)
	}
	if err := writeCrateSheet(f, result.Zones, bold); err != nil {
		return fmt.Errorf("workbook %s: %w", sheetCrates, err)
	}
	if err := writeGlassSheet(f, result.GlasswareTotals, bold); err != nil {
		return fmt.Errorf("workbook %s: %w", sheetGlass, err)
	}

	return f.Write(w)
}

func writeTableSheet(f *excelize.File, orders []models.TableOrder, headerStyle int) error {
	header := []interface{}{"Table", "Includes", "Contact", "Pax", "Notes"}
	for _, c := range models.Categories {
		header = append(header, string(c))
	}
	header = append(header, "Tumbler", "Wine", "Pint", "Prosecco")
	if err := writeHeader(f, sheetTables, header, headerStyle); err != nil {
		return err
	}

	for i, o := range orders {
		row := []interface{}{o.Label, strings.Join(o.PlusTables, ","), o.Contact, o.Pax, o.Notes}
		for _, c := range models.Categories {
			row = append(row, formatDrinks(o.Drinks(c)))
		}
		if o.Glassware != nil {
			row = append(row, o.Glassware.Tumbler, o.Glassware.Wine, o.Glassware.Pint, o.Glassware.Prosecco)
		}
		if err := setRow(f, sheetTables, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeCrateSheet(f *excelize.File, summaries []models.ZoneSummary, headerStyle int) error {
	header := []interface{}{"Coach", "End", "Tables", "Thermal", "Drink", "Qty"}
	if err := writeHeader(f, sheetCrates, header, headerStyle); err != nil {
		return err
	}

	rowNum := 2
	for _, s := range summaries {
		tables := fmt.Sprintf("%d-%d", s.Zone.Start, s.Zone.Finish)
		for _, t := range []models.Thermal{models.Warm, models.Cold} {
			for _, it := range s.Tally(t).Items() {
				row := []interface{}{s.Zone.Coach, s.Zone.End, tables, string(t), it.Name, it.Qty}
				if err := setRow(f, sheetCrates, rowNum, row); err != nil {
					return err
				}
				rowNum++
			}
		}
	}
	return nil
}

func writeGlassSheet(f *excelize.File, totals models.Glassware, headerStyle int) error {
	if err := writeHeader(f, sheetGlass, []interface{}{"Glass", "Total"}, headerStyle); err != nil {
		return err
	}
	rows := [][]interface{}{
		{"Tumbler", totals.Tumbler},
		{"Wine", totals.Wine},
		{"Pint", totals.Pint},
		{"Prosecco", totals.Prosecco},
	}
	for i, row := range rows {
		if err := setRow(f, sheetGlass, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeHeader(f *excelize.File, sheet string, header []interface{}, style int) error {
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, style)
}

func setRow(f *excelize.File, sheet string, rowNum int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

// formatDrinks renders a list as "2 COKE, 1 DIET COKE".
func formatDrinks(drinks []models.OrderedDrink) string {
	parts := make([]string, len(drinks))
	for i, d := range drinks {
		parts[i] = fmt.Sprintf("%d %s", d.Qty, d.Name)
	}
	return strings.Join(parts, ", ")
}
