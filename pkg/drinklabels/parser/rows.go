package parser

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/drinklabels-go/pkg/drinklabels/models"
	"github.com/ukaji3/drinklabels-go/pkg/drinklabels/reference"
	"golang.org/x/sync/errgroup"
)

// Outcome is the result of parsing one row.
type Outcome struct {
	// Order is the parsed table order; zero when Err is set.
	Order models.TableOrder
	// Dropped lists category items that were skipped.
	Dropped []models.DroppedItem
	// Err is a *RowError when the row could not be used.
	Err error
}

// ParseRow turns one raw record into a table order. Unknown drinks and
// items without a quantity are dropped and reported, never fatal; a missing
// or non-integer primary table number fails the row. An unreadable pax
// count is reported as a dropped pax value and counted as zero.
func ParseRow(rec models.RawRecord, ref *reference.Data) (models.TableOrder, []models.DroppedItem, error) {
	number, label, plus, err := parseTableNumbers(rec.Get(models.FieldTable))
	if err != nil {
		return models.TableOrder{}, nil, NewRowError(rec.Line, models.FieldTable, err)
	}

	pax, ok := parseCount(rec.Get(models.FieldPax))
	order := models.TableOrder{
		Number:     number,
		Label:      label,
		PlusTables: plus,
		Contact:    strings.TrimSpace(rec.Get(models.FieldContact)),
		Pax:        pax,
		Notes:      strings.TrimSpace(rec.Get(models.FieldNotes)),
		Line:       rec.Line,
	}

	var dropped []models.DroppedItem
	if !ok {
		dropped = append(dropped, models.DroppedItem{
			Line:   rec.Line,
			Field:  models.FieldPax,
			Text:   strings.TrimSpace(rec.Get(models.FieldPax)),
			Reason: "not a number",
		})
	}
	for _, c := range models.Categories {
		cell := ref.Rewrite(c, rec.Get(models.CategoryField(c)))
		drinks, skipped := parseCategory(c, cell, ref.Catalog)
		order.SetDrinks(c, drinks)
		for _, d := range skipped {
			d.Line = rec.Line
			dropped = append(dropped, d)
		}
	}

	return order, dropped, nil
}

// ParseRows parses every record using up to workers goroutines. Outcomes
// are returned in input order. The only error is context cancellation.
func ParseRows(ctx context.Context, recs []models.RawRecord, ref *reference.Data, workers int) ([]Outcome, error) {
	outcomes := make([]Outcome, len(recs))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i := range recs {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			order, dropped, err := ParseRow(recs[i], ref)
			outcomes[i] = Outcome{Order: order, Dropped: dropped, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

// parseCategory extracts the catalogued drinks of one cell. Repeated
// drinks within the cell are summed.
func parseCategory(c models.Category, cell string, catalog models.Catalog) ([]models.OrderedDrink, []models.DroppedItem) {
	if strings.TrimSpace(cell) == "" {
		return nil, nil
	}

	var drinks []models.OrderedDrink
	var dropped []models.DroppedItem
	index := make(map[string]int)

	for _, text := range SplitItems(cell) {
		item, ok := ParseItem(text)
		if !ok {
			dropped = append(dropped, models.DroppedItem{Category: c, Text: text, Reason: "no quantity"})
			continue
		}
		entry, ok := catalog.Lookup(c, item.Description)
		if !ok {
			dropped = append(dropped, models.DroppedItem{Category: c, Text: text, Reason: "not in catalog"})
			continue
		}
		if i, seen := index[entry.Name]; seen {
			drinks[i].Qty += item.Qty
			continue
		}
		index[entry.Name] = len(drinks)
		drinks = append(drinks, models.OrderedDrink{
			Name:    entry.Name,
			Thermal: entry.Thermal,
			Qty:     item.Qty,
		})
	}
	return drinks, dropped
}

// parseTableNumbers splits "12, 13,14" into the primary number, its source
// label and the linked tables.
func parseTableNumbers(field string) (int, string, []string, error) {
	var tokens []string
	for _, tok := range strings.Split(field, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			tokens = append(tokens, tok)
		}
	}
	if len(tokens) == 0 {
		return 0, "", nil, ErrMissingTableNumber
	}

	n, err := strconv.Atoi(tokens[0])
	if err != nil || n < 0 {
		return 0, "", nil, fmt.Errorf("%w: %q", ErrInvalidTableNumber, tokens[0])
	}

	var plus []string
	if len(tokens) > 1 {
		plus = tokens[1:]
	}
	return n, tokens[0], plus, nil
}

// parseCount reads the leading integer of a count cell. An empty cell is
// zero; a cell with no leading digits is zero and not ok.
func parseCount(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	n, _, ok := leadingInt(s)
	if !ok {
		return 0, false
	}
	return n, true
}
