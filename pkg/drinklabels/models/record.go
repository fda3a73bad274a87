package models

// Field is a logical column of the order spreadsheet.
type Field string

const (
	FieldTable   Field = "table"
	FieldContact Field = "contact"
	FieldPax     Field = "pax"
	FieldNotes   Field = "notes"
)

// CategoryField returns the logical column holding a category's list.
func CategoryField(c Category) Field {
	return Field(c)
}

// RawRecord is one data row of the spreadsheet keyed by logical field.
type RawRecord struct {
	// Line is the 1-based line (or row) number in the source.
	Line int `json:"line"`
	// Values maps logical field to the raw cell text.
	Values map[Field]string `json:"values"`
}

// Get returns the cell for f, or "" when absent.
func (r RawRecord) Get(f Field) string {
	return r.Values[f]
}

// Has reports whether the row carries a cell for f.
func (r RawRecord) Has(f Field) bool {
	_, ok := r.Values[f]
	return ok
}
