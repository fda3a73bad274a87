// Package zones buckets table orders into coach-end zones for crate packing.
package zones

import (
	"fmt"

	"github.com/ukaji3/drinklabels-go/pkg/drinklabels/models"
)

// Validate rejects zone tables with empty labels, inverted ranges or
// overlapping ranges.
func Validate(zs []models.Zone) error {
	for i, z := range zs {
		if z.Coach == "" || z.End == "" {
			return fmt.Errorf("zone %d: coach and end are required", i+1)
		}
		if z.Start > z.Finish {
			return fmt.Errorf("zone %s: start %d is after finish %d", z.ID(), z.Start, z.Finish)
		}
		for _, other := range zs[:i] {
			if z.Start <= other.Finish && other.Start <= z.Finish {
				return fmt.Errorf("zone %s (%d-%d) overlaps zone %s (%d-%d)",
					z.ID(), z.Start, z.Finish, other.ID(), other.Start, other.Finish)
			}
		}
	}
	return nil
}

// Uncovered returns the numbers that fall within no zone, in input order.
func Uncovered(zs []models.Zone, numbers []int) []int {
	var out []int
	for _, n := range numbers {
		if Find(zs, n) < 0 {
			out = append(out, n)
		}
	}
	return out
}

// Find returns the index of the first zone containing n, or -1.
func Find(zs []models.Zone, n int) int {
	for i, z := range zs {
		if z.Contains(n) {
			return i
		}
	}
	return -1
}

// Aggregate sums drink quantities per zone, split by thermal class. A table
// is folded into every zone whose range contains its primary number; tables
// outside all zones contribute nothing.
func Aggregate(zs []models.Zone, tables []models.TableOrder) []models.ZoneSummary {
	summaries := make([]models.ZoneSummary, len(zs))
	for i, z := range zs {
		summaries[i].Zone = z
		for _, t := range tables {
			if !z.Contains(t.Number) {
				continue
			}
			summaries[i].Tables = append(summaries[i].Tables, t.Number)
			for _, d := range t.AllDrinks() {
				summaries[i].Tally(d.Thermal).Add(d.Name, d.Qty)
			}
		}
	}
	return summaries
}
