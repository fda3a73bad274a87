package models

// OrderedDrink is one catalogued drink and its quantity on an order.
type OrderedDrink struct {
	// Name is the canonical catalog name.
	Name string `json:"name"`
	// Thermal is the serving temperature class.
	Thermal Thermal `json:"thermal"`
	// Qty is the number of units ordered.
	Qty int `json:"qty"`
}

// TableOrder represents the drinks ordered for one physical table.
type TableOrder struct {
	// Number is the primary table number.
	Number int `json:"number"`
	// Label is the primary table number as written in the source.
	Label string `json:"label"`
	// PlusTables lists additional tables joined to this one.
	PlusTables []string `json:"plus_tables,omitempty"`
	// Contact is the booking contact; merged rows are joined with ", ".
	Contact string `json:"contact"`
	// Pax is the party size.
	Pax int `json:"pax"`
	// Notes is free text; merged rows are joined with "; ".
	Notes string `json:"notes,omitempty"`
	// SoftDrinks is the soft drinks list.
	SoftDrinks []OrderedDrink `json:"soft_drinks,omitempty"`
	// Wines is the wine list.
	Wines []OrderedDrink `json:"wines,omitempty"`
	// Ciders is the cider list.
	Ciders []OrderedDrink `json:"ciders,omitempty"`
	// Ales is the ale list.
	Ales []OrderedDrink `json:"ales,omitempty"`
	// Spirits is the spirits list.
	Spirits []OrderedDrink `json:"spirits,omitempty"`
	// Specials is the specials list (prosecco and similar).
	Specials []OrderedDrink `json:"specials,omitempty"`
	// Glassware is the glass requirement; nil when the table has none.
	Glassware *Glassware `json:"glassware,omitempty"`
	// Line is the source line of the first row that contributed to this table.
	Line int `json:"line"`
}

// Drinks returns the list for a category.
func (t *TableOrder) Drinks(c Category) []OrderedDrink {
	if p := t.list(c); p != nil {
		return *p
	}
	return nil
}

// SetDrinks replaces the list for a category.
func (t *TableOrder) SetDrinks(c Category, drinks []OrderedDrink) {
	if p := t.list(c); p != nil {
		*p = drinks
	}
}

// AllDrinks returns every drink across all categories in display order.
func (t *TableOrder) AllDrinks() []OrderedDrink {
	var out []OrderedDrink
	for _, c := range Categories {
		out = append(out, t.Drinks(c)...)
	}
	return out
}

func (t *TableOrder) list(c Category) *[]OrderedDrink {
	switch c {
	case SoftDrinks:
		return &t.SoftDrinks
	case Wines:
		return &t.Wines
	case Ciders:
		return &t.Ciders
	case Ales:
		return &t.Ales
	case Spirits:
		return &t.Spirits
	case Specials:
		return &t.Specials
	}
	return nil
}

// Clone returns a deep copy of t that shares no slices or pointers with it.
func (t TableOrder) Clone() TableOrder {
	out := t
	out.PlusTables = cloneSlice(t.PlusTables)
	for _, c := range Categories {
		out.SetDrinks(c, cloneSlice(t.Drinks(c)))
	}
	if t.Glassware != nil {
		g := *t.Glassware
		out.Glassware = &g
	}
	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
