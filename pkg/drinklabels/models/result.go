package models

// DroppedItem records a category item or cell value that could not be used.
type DroppedItem struct {
	// Line is the source line of the row.
	Line int `json:"line"`
	// Category is the list the item came from; empty for non-drink cells.
	Category Category `json:"category,omitempty"`
	// Field names the non-drink cell that was unreadable, such as pax.
	Field Field `json:"field,omitempty"`
	// Text is the raw item text.
	Text string `json:"text"`
	// Reason says why it was dropped.
	Reason string `json:"reason"`
}

// RowFailure is a serialisable record of a skipped row.
type RowFailure struct {
	Line    int    `json:"line"`
	Field   Field  `json:"field,omitempty"`
	Message string `json:"message"`
}

// Result is the full output of one pipeline run.
type Result struct {
	// Source is the input file name (no path).
	Source string `json:"source"`
	// Tables holds the merged and annotated orders, ascending by number.
	Tables []TableOrder `json:"tables"`
	// Zones holds one summary per configured zone, in configuration order.
	Zones []ZoneSummary `json:"zones"`
	// GlasswareTotals sums the whole static glassware table.
	GlasswareTotals Glassware `json:"glassware_totals"`
	// Skipped lists rows that failed to parse.
	Skipped []RowFailure `json:"skipped,omitempty"`
	// Dropped lists unusable category items.
	Dropped []DroppedItem `json:"dropped,omitempty"`
	// Warnings carries non-fatal observations such as uncovered tables.
	Warnings []string `json:"warnings,omitempty"`
}
