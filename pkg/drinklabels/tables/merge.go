// Package tables consolidates parsed rows into one order per physical table
// and attaches glassware requirements.
package tables

import (
	"sort"
	"strings"

	"github.com/ukaji3/drinklabels-go/pkg/drinklabels/models"
)

// SortByNumber returns a copy of orders stable-sorted ascending by primary
// table number. Rows for the same table keep their source order.
func SortByNumber(orders []models.TableOrder) []models.TableOrder {
	sorted := append([]models.TableOrder(nil), orders...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Number < sorted[j].Number
	})
	return sorted
}

// Merge folds adjacent orders that share a primary table number into a
// single order. Input must already be sorted by number; rows for the same
// table that are not adjacent stay separate. The input is not modified.
func Merge(orders []models.TableOrder) []models.TableOrder {
	var merged []models.TableOrder
	for _, o := range orders {
		last := len(merged) - 1
		if last >= 0 && merged[last].Number == o.Number {
			merged[last] = mergeInto(merged[last], o)
			continue
		}
		merged = append(merged, o.Clone())
	}
	return merged
}

// mergeInto absorbs src into acc. acc is owned by the merger and never
// shared with the caller's input.
func mergeInto(acc, src models.TableOrder) models.TableOrder {
	acc.Contact = joinDistinct(acc.Contact, src.Contact, ", ")
	acc.Notes = joinDistinct(acc.Notes, src.Notes, "; ")
	acc.Pax += src.Pax
	acc.PlusTables = unionTables(acc.PlusTables, src.PlusTables, acc.Label)

	for _, c := range models.Categories {
		acc.SetDrinks(c, mergeDrinks(acc.Drinks(c), src.Drinks(c)))
	}

	if acc.Glassware == nil && src.Glassware != nil {
		g := *src.Glassware
		acc.Glassware = &g
	}
	return acc
}

// mergeDrinks sums quantities by canonical name and appends unseen drinks.
func mergeDrinks(dst, src []models.OrderedDrink) []models.OrderedDrink {
	for _, d := range src {
		found := false
		for i := range dst {
			if dst[i].Name == d.Name {
				dst[i].Qty += d.Qty
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, d)
		}
	}
	return dst
}

// joinDistinct appends b to a unless either is empty or b is already one
// of the joined parts.
func joinDistinct(a, b, sep string) string {
	switch {
	case b == "":
		return a
	case a == "":
		return b
	}
	for _, part := range strings.Split(a, sep) {
		if part == b {
			return a
		}
	}
	return a + sep + b
}

// unionTables appends the tables of b missing from a, skipping the primary.
func unionTables(a, b []string, primary string) []string {
	for _, t := range b {
		if t == primary || contains(a, t) {
			continue
		}
		a = append(a, t)
	}
	return a
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
