package tables

import "github.com/ukaji3/drinklabels-go/pkg/drinklabels/models"

// AttachGlassware returns copies of orders with the glassware entry for
// each primary number attached. Tables without an entry are left unset.
// Running it again over its own output yields the same values.
func AttachGlassware(orders []models.TableOrder, table map[int]models.Glassware) []models.TableOrder {
	out := make([]models.TableOrder, len(orders))
	for i, o := range orders {
		o = o.Clone()
		o.Glassware = nil
		if g, ok := table[o.Number]; ok {
			o.Glassware = &g
		}
		out[i] = o
	}
	return out
}

// GlasswareTotals sums every entry of the glassware table, whether or not
// the table appears in the current run.
func GlasswareTotals(table map[int]models.Glassware) models.Glassware {
	var total models.Glassware
	for _, g := range table {
		total = total.Add(g)
	}
	return total
}
