// Package models defines data structures for drink-order processing.
package models

import "fmt"

// Thermal is the serving temperature class of a drink.
type Thermal string

const (
	// Warm drinks travel in the ambient crate.
	Warm Thermal = "WARM"
	// Cold drinks travel in the chilled crate.
	Cold Thermal = "COLD"
)

// Valid reports whether t is a known thermal class.
func (t Thermal) Valid() bool {
	return t == Warm || t == Cold
}

// Category identifies one of the drink lists of an order.
type Category string

const (
	// SoftDrinks is the "Soft Drink List" column.
	SoftDrinks Category = "soft_drinks"
	// Wines is the "Wine List" column.
	Wines Category = "wines"
	// Ciders is the "Cider List" column.
	Ciders Category = "ciders"
	// Ales is the "Ale List" column.
	Ales Category = "ales"
	// Spirits is the "Spirit List" column.
	Spirits Category = "spirits"
	// Specials is the "Customers" column of bottled specials.
	Specials Category = "specials"
)

// Categories lists every category in display order.
var Categories = []Category{SoftDrinks, Wines, Ciders, Ales, Spirits, Specials}

// ParseCategory converts a category key into a Category.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown drink category %q", s)
}

// CatalogEntry is the canonical form of a spreadsheet drink description.
type CatalogEntry struct {
	// Name is the short label printed on cards and crates.
	Name string `json:"name" yaml:"name"`
	// Thermal is the serving temperature class.
	Thermal Thermal `json:"thermal" yaml:"thermal"`
}

// Catalog maps raw descriptions to catalog entries, per category.
type Catalog map[Category]map[string]CatalogEntry

// Lookup finds the entry for a raw description within a category.
func (c Catalog) Lookup(cat Category, description string) (CatalogEntry, bool) {
	entries, ok := c[cat]
	if !ok {
		return CatalogEntry{}, false
	}
	entry, ok := entries[description]
	return entry, ok
}
