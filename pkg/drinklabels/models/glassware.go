package models

import "fmt"

// Glassware holds the glass counts a table needs laid out.
type Glassware struct {
	Tumbler  int `json:"tumbler" yaml:"tumbler"`
	Wine     int `json:"wine" yaml:"wine"`
	Pint     int `json:"pint" yaml:"pint"`
	Prosecco int `json:"prosecco" yaml:"prosecco"`
}

// GlassCount is one labelled glass count.
type GlassCount struct {
	Label string
	Count int
}

// IsZero reports whether every count is zero.
func (g Glassware) IsZero() bool {
	return g == Glassware{}
}

// Add returns the element-wise sum of g and other.
func (g Glassware) Add(other Glassware) Glassware {
	return Glassware{
		Tumbler:  g.Tumbler + other.Tumbler,
		Wine:     g.Wine + other.Wine,
		Pint:     g.Pint + other.Pint,
		Prosecco: g.Prosecco + other.Prosecco,
	}
}

// Counts returns the labelled counts in display order, skipping zeros.
func (g Glassware) Counts() []GlassCount {
	all := []GlassCount{
		{Label: "Tumbler", Count: g.Tumbler},
		{Label: "Wine", Count: g.Wine},
		{Label: "Pint", Count: g.Pint},
		{Label: "Prosecco", Count: g.Prosecco},
	}
	var out []GlassCount
	for _, c := range all {
		if c.Count != 0 {
			out = append(out, c)
		}
	}
	return out
}

// Validate rejects negative counts.
func (g Glassware) Validate() error {
	if g.Tumbler < 0 || g.Wine < 0 || g.Pint < 0 || g.Prosecco < 0 {
		return fmt.Errorf("glassware counts must be non-negative: %+v", g)
	}
	return nil
}
