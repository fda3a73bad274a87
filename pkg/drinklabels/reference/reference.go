// Package reference loads the catalog, zone table and glassware table that
// drive a run. The data is versioned per event and shipped as YAML.
package reference

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ukaji3/drinklabels-go/pkg/drinklabels/models"
	"github.com/ukaji3/drinklabels-go/pkg/drinklabels/zones"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// ErrInvalid indicates the reference document failed validation.
var ErrInvalid = errors.New("invalid reference data")

// Rewrite replaces every occurrence of From with To before a cell is parsed.
type Rewrite struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// InputLayout describes the framing of the spreadsheet export.
type InputLayout struct {
	// SkipLines is the number of banner lines above the header row.
	SkipLines int `yaml:"skip_lines"`
	// SkipRecords is the number of data rows after the header to discard.
	SkipRecords int `yaml:"skip_records"`
}

type categoryDoc struct {
	Rewrite []Rewrite                      `yaml:"rewrite,omitempty"`
	Drinks  map[string]models.CatalogEntry `yaml:"drinks"`
}

type glasswareDoc struct {
	Tables           string `yaml:"tables"`
	models.Glassware `yaml:",inline"`
}

// document mirrors the YAML layout.
type document struct {
	Version      int                             `yaml:"version"`
	Input        InputLayout                     `yaml:"input"`
	Columns      map[models.Field]string         `yaml:"columns"`
	Catalog      map[models.Category]categoryDoc `yaml:"catalog"`
	Zones        []models.Zone                   `yaml:"zones"`
	ExpectTables string                          `yaml:"expect_tables,omitempty"`
	Glassware    []glasswareDoc                  `yaml:"glassware"`
}

// Data is the validated, read-only reference data for a run.
type Data struct {
	// Input is the export framing.
	Input InputLayout
	// Columns maps each logical field to its header text.
	Columns map[models.Field]string
	// Catalog maps raw descriptions to canonical drinks.
	Catalog models.Catalog
	// Rewrites lists text fixes applied to a category cell before parsing.
	Rewrites map[models.Category][]Rewrite
	// Zones is the ordered zone table.
	Zones []models.Zone
	// ExpectTables lists the table numbers zones should cover (may be empty).
	ExpectTables []int
	// Glassware maps table number to its glass requirement.
	Glassware map[int]models.Glassware
}

// RequiredFields lists every logical column the header must provide.
func RequiredFields() []models.Field {
	fields := []models.Field{models.FieldTable, models.FieldContact, models.FieldPax, models.FieldNotes}
	for _, c := range models.Categories {
		fields = append(fields, models.CategoryField(c))
	}
	return fields
}

// Default returns the reference data embedded in the binary.
func Default() (*Data, error) {
	return Parse(defaultYAML)
}

// Load reads a reference document from disk.
func Load(path string) (*Data, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reference: read %s: %w", path, err)
	}
	ref, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("reference: %s: %w", path, err)
	}
	return ref, nil
}

// Parse decodes and validates a reference document.
func Parse(data []byte) (*Data, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: document is empty", ErrInvalid)
	}
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("reference: decode: %w", err)
	}
	return doc.build()
}

func (d document) build() (*Data, error) {
	if d.Version != 1 {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalid, d.Version)
	}
	if d.Input.SkipLines < 0 || d.Input.SkipRecords < 0 {
		return nil, fmt.Errorf("%w: input skips must be non-negative", ErrInvalid)
	}

	out := &Data{
		Input:     d.Input,
		Columns:   make(map[models.Field]string),
		Catalog:   make(models.Catalog),
		Rewrites:  make(map[models.Category][]Rewrite),
		Zones:     append([]models.Zone(nil), d.Zones...),
		Glassware: make(map[int]models.Glassware),
	}

	for _, f := range RequiredFields() {
		header := strings.TrimSpace(d.Columns[f])
		if header == "" {
			return nil, fmt.Errorf("%w: no header configured for column %q", ErrInvalid, f)
		}
		out.Columns[f] = header
	}

	if err := out.buildCatalog(d.Catalog); err != nil {
		return nil, err
	}

	if err := zones.Validate(out.Zones); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	if d.ExpectTables != "" {
		expected, err := ParseTableRange(d.ExpectTables)
		if err != nil {
			return nil, fmt.Errorf("%w: expect_tables: %v", ErrInvalid, err)
		}
		out.ExpectTables = expected
	}

	for i, g := range d.Glassware {
		numbers, err := ParseTableRange(g.Tables)
		if err != nil {
			return nil, fmt.Errorf("%w: glassware entry %d: %v", ErrInvalid, i+1, err)
		}
		if err := g.Glassware.Validate(); err != nil {
			return nil, fmt.Errorf("%w: glassware entry %d: %v", ErrInvalid, i+1, err)
		}
		for _, n := range numbers {
			if _, dup := out.Glassware[n]; dup {
				return nil, fmt.Errorf("%w: glassware for table %d declared twice", ErrInvalid, n)
			}
			out.Glassware[n] = g.Glassware
		}
	}

	return out, nil
}

func (d *Data) buildCatalog(docs map[models.Category]categoryDoc) error {
	// A canonical name must keep one thermal class across categories,
	// otherwise crate tallies would disagree with the cards.
	thermals := make(map[string]models.Thermal)

	for key, cd := range docs {
		if _, err := models.ParseCategory(string(key)); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		entries := make(map[string]models.CatalogEntry, len(cd.Drinks))
		for desc, entry := range cd.Drinks {
			desc = strings.TrimSpace(desc)
			entry.Name = strings.TrimSpace(entry.Name)
			if desc == "" || entry.Name == "" {
				return fmt.Errorf("%w: %s: empty description or name", ErrInvalid, key)
			}
			if !entry.Thermal.Valid() {
				return fmt.Errorf("%w: %s: %q has unknown thermal class %q", ErrInvalid, key, desc, entry.Thermal)
			}
			if prev, ok := thermals[entry.Name]; ok && prev != entry.Thermal {
				return fmt.Errorf("%w: %q is both %s and %s", ErrInvalid, entry.Name, prev, entry.Thermal)
			}
			thermals[entry.Name] = entry.Thermal
			entries[desc] = entry
		}
		for _, rw := range cd.Rewrite {
			if rw.From == "" {
				return fmt.Errorf("%w: %s: rewrite with empty 'from'", ErrInvalid, key)
			}
		}
		d.Catalog[key] = entries
		d.Rewrites[key] = append([]Rewrite(nil), cd.Rewrite...)
	}
	return nil
}

// Rewrite applies the category's text fixes to a raw cell.
func (d *Data) Rewrite(c models.Category, cell string) string {
	for _, rw := range d.Rewrites[c] {
		cell = strings.ReplaceAll(cell, rw.From, rw.To)
	}
	return cell
}

// GlasswareTables returns the numbers of every table with a glassware entry.
func (d *Data) GlasswareTables() []int {
	out := make([]int, 0, len(d.Glassware))
	for n := range d.Glassware {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}
