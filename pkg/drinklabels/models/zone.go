package models

import (
	"encoding/json"
	"fmt"
)

// Zone is one coach end served by a single pair of crates.
type Zone struct {
	// Coach is the coach letter.
	Coach string `json:"coach" yaml:"coach"`
	// End names the end of the coach.
	End string `json:"end" yaml:"end"`
	// Start is the first table number in the zone.
	Start int `json:"start" yaml:"start"`
	// Finish is the last table number in the zone (inclusive).
	Finish int `json:"finish" yaml:"finish"`
}

// Contains reports whether table number n falls within the zone.
func (z Zone) Contains(n int) bool {
	return n >= z.Start && n <= z.Finish
}

// ID returns a display identifier such as "A Lydney".
func (z Zone) ID() string {
	return fmt.Sprintf("%s %s", z.Coach, z.End)
}

// DrinkTotal is one aggregated line of a tally.
type DrinkTotal struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

// Tally sums quantities by canonical name, remembering first-seen order.
type Tally struct {
	totals map[string]int
	order  []string
}

// Add adds qty units of name.
func (t *Tally) Add(name string, qty int) {
	if t.totals == nil {
		t.totals = make(map[string]int)
	}
	if _, ok := t.totals[name]; !ok {
		t.order = append(t.order, name)
	}
	t.totals[name] += qty
}

// Get returns the total for name.
func (t Tally) Get(name string) int {
	return t.totals[name]
}

// Len returns the number of distinct names.
func (t Tally) Len() int {
	return len(t.order)
}

// Items returns the totals in first-seen order.
func (t Tally) Items() []DrinkTotal {
	out := make([]DrinkTotal, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, DrinkTotal{Name: name, Qty: t.totals[name]})
	}
	return out
}

// Map returns a copy of the totals keyed by name.
func (t Tally) Map() map[string]int {
	out := make(map[string]int, len(t.totals))
	for k, v := range t.totals {
		out[k] = v
	}
	return out
}

// MarshalJSON encodes the tally as an ordered list of totals.
func (t Tally) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Items())
}

// ZoneSummary holds the crate contents for one zone.
type ZoneSummary struct {
	// Zone is the zone being summarised.
	Zone Zone `json:"zone"`
	// Tables lists the primary numbers of the tables folded in.
	Tables []int `json:"tables,omitempty"`
	// Warm totals the warm drinks.
	Warm Tally `json:"warm"`
	// Cold totals the cold drinks.
	Cold Tally `json:"cold"`
}

// Tally returns the warm or cold tally.
func (s *ZoneSummary) Tally(t Thermal) *Tally {
	if t == Warm {
		return &s.Warm
	}
	return &s.Cold
}
