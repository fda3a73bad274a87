// Package parser reads order exports and turns their rows into table orders.
package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/drinklabels-go/pkg/drinklabels/models"
	"github.com/ukaji3/drinklabels-go/pkg/drinklabels/reference"
	"github.com/xuri/excelize/v2"
)

// Format is the container format of an order export.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

const utf8BOM = "\ufeff"

// sourceRow is a non-blank row together with its 1-based physical line, so
// banner lines are counted even when they are blank.
type sourceRow struct {
	line  int
	cells []string
}

// DetectFormat picks the reader from the file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return FormatCSV, nil
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
}

// ReadFile reads an order export from disk. sheet selects the worksheet of
// an XLSX file; empty means the first sheet.
func ReadFile(path string, ref *reference.Data, sheet string) ([]models.RawRecord, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if format == FormatXLSX {
		return ReadXLSX(f, ref, sheet)
	}
	return ReadCSV(f, ref)
}

// ReadCSV reads a delimited export. Blank lines are ignored and a leading
// byte order mark is tolerated.
func ReadCSV(r io.Reader, ref *reference.Data) ([]models.RawRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var rows []sourceRow
	for first := true; ; first = false {
		cells, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if first && len(cells) > 0 {
			cells[0] = strings.TrimPrefix(cells[0], utf8BOM)
		}
		if isBlank(cells) {
			continue
		}
		rows = append(rows, sourceRow{line: line, cells: cells})
	}
	return frame(rows, ref)
}

// ReadXLSX reads the export from a workbook.
func ReadXLSX(r io.Reader, ref *reference.Data, sheet string) ([]models.RawRecord, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrNoHeader
		}
		sheet = sheets[0]
	}

	cells, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	var rows []sourceRow
	for rowIdx, row := range cells {
		if isBlank(row) {
			continue
		}
		rows = append(rows, sourceRow{line: rowIdx + 1, cells: row}) // 1-based row index
	}
	return frame(rows, ref)
}

// frame drops the banner lines, resolves the header and turns the remaining
// rows into records keyed by logical field. Banner lines are counted by
// physical line; the header is the first non-blank row after them.
func frame(rows []sourceRow, ref *reference.Data) ([]models.RawRecord, error) {
	start := -1
	for i, row := range rows {
		if row.line > ref.Input.SkipLines {
			start = i
			break
		}
	}
	if start < 0 {
		return nil, ErrNoHeader
	}
	header := rows[start]

	positions := make(map[string]int, len(header.cells))
	for i, h := range header.cells {
		h = strings.TrimSpace(strings.TrimPrefix(h, utf8BOM))
		if _, dup := positions[h]; !dup {
			positions[h] = i
		}
	}

	columns := make(map[models.Field]int)
	var missing []string
	for _, f := range reference.RequiredFields() {
		name := ref.Columns[f]
		idx, ok := positions[name]
		if !ok {
			missing = append(missing, fmt.Sprintf("%q", name))
			continue
		}
		columns[f] = idx
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s (header on line %d)", ErrMissingColumn, strings.Join(missing, ", "), header.line)
	}

	data := rows[start+1:]
	if len(data) <= ref.Input.SkipRecords {
		return nil, nil
	}
	data = data[ref.Input.SkipRecords:]

	records := make([]models.RawRecord, 0, len(data))
	for _, row := range data {
		rec := models.RawRecord{
			Line:   row.line,
			Values: make(map[models.Field]string, len(columns)),
		}
		for f, idx := range columns {
			if idx < len(row.cells) {
				rec.Values[f] = row.cells[idx]
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
