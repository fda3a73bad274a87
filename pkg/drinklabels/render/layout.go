package render

import (
	"fmt"
	"strings"

	"github.com/ukaji3/drinklabels-go/pkg/drinklabels/models"
)

type rgb struct{ r, g, b int }

var (
	black = rgb{0, 0, 0}
	grey  = rgb{110, 110, 110}
	red   = rgb{200, 0, 0}
	blue  = rgb{0, 60, 200}
)

// run is a span of text in one font and colour.
type run struct {
	text  string
	size  float64
	style string // "", "B" or "I"
	color rgb
}

// line is a sequence of runs that flow together; gap is blank space above
// it, measured in lines of its first run.
type line struct {
	runs []run
	gap  float64
}

// watermark is rotated text along the right edge of a page.
type watermark struct {
	text  string
	size  float64
	color rgb
}

type page struct {
	lines     []line
	watermark *watermark
}

// document is a laid-out file. Pages overflow onto new sheets on their own.
type document struct {
	size  string // "A4" or "A5"
	pages []page
}

// text returns the plain text of a line.
func (l line) text() string {
	var sb strings.Builder
	for _, r := range l.runs {
		sb.WriteString(r.text)
	}
	return sb.String()
}

func single(text string, size float64, style string, color rgb) line {
	return line{runs: []run{{text: text, size: size, style: style, color: color}}}
}

func thermalColor(t models.Thermal) rgb {
	if t == models.Warm {
		return red
	}
	return blue
}

func drinkText(qty int, name string) string {
	return fmt.Sprintf("%d of %s", qty, name)
}

// DisplayContact shortens each contact to first name plus upper-cased
// surname, e.g. "Mary Ann Smith" becomes "Mary SMITH". Single names are
// kept as written.
func DisplayContact(contact string) string {
	parts := strings.Split(contact, ", ")
	for i, p := range parts {
		words := strings.Fields(p)
		if len(words) < 2 {
			continue
		}
		parts[i] = words[0] + " " + strings.ToUpper(words[len(words)-1])
	}
	return strings.Join(parts, ", ")
}

// cardLayout builds one A5 page per table.
func cardLayout(orders []models.TableOrder) document {
	doc := document{size: "A5"}
	for _, o := range orders {
		var p page
		p.lines = append(p.lines, single("Table: "+o.Label, 32, "B", black))

		var info []line
		if len(o.PlusTables) > 0 {
			info = append(info, single("Includes tables: "+strings.Join(o.PlusTables, ","), 20, "", black))
		}
		info = append(info,
			single("Contact: "+DisplayContact(o.Contact), 20, "", black),
			single(fmt.Sprintf("Group size: %d", o.Pax), 20, "", black),
		)
		if o.Notes != "" {
			info = append(info, single("Notes: "+o.Notes, 20, "", black))
		}
		info[0].gap = 1
		p.lines = append(p.lines, info...)

		gap := 1.0
		for _, d := range o.AllDrinks() {
			l := single(drinkText(d.Qty, d.Name), 20, "", thermalColor(d.Thermal))
			l.gap, gap = gap, 0
			p.lines = append(p.lines, l)
		}

		if o.Glassware != nil {
			counts := o.Glassware.Counts()
			if len(counts) > 0 {
				heading := single("Glassware", 20, "B", black)
				heading.gap = 1
				p.lines = append(p.lines, heading)
				for _, c := range counts {
					p.lines = append(p.lines, single(fmt.Sprintf("%d x %s", c.Count, c.Label), 18, "", grey))
				}
			}
		}
		doc.pages = append(doc.pages, p)
	}
	return doc
}

// crateLayout builds a warm page and a cold page for every zone.
func crateLayout(summaries []models.ZoneSummary) document {
	doc := document{size: "A5"}
	for _, s := range summaries {
		for _, t := range []models.Thermal{models.Warm, models.Cold} {
			var p page
			p.lines = append(p.lines,
				single("Coach: "+s.Zone.Coach, 40, "B", black),
				single("("+s.Zone.End+" end)", 40, "B", black),
			)
			items := s.Tally(t).Items()
			if len(items) == 0 {
				p.lines = append(p.lines, single("Nothing to pack", 18, "I", grey))
			}
			for _, it := range items {
				p.lines = append(p.lines, single(drinkText(it.Qty, it.Name), 18, "", black))
			}
			p.watermark = &watermark{
				text:  string(t) + " DRINKS",
				size:  36,
				color: thermalColor(t),
			}
			doc.pages = append(doc.pages, p)
		}
	}
	return doc
}

// summaryLayout builds the flowing A4 backup list.
func summaryLayout(orders []models.TableOrder, totals models.Glassware) document {
	var p page
	for _, o := range orders {
		head := line{runs: []run{
			{text: "Table: ", size: 12, color: black},
			{text: o.Label, size: 20, style: "B", color: black},
			{text: fmt.Sprintf(", Contact: %s, Group size: %d", o.Contact, o.Pax), size: 12, color: black},
		}}
		if len(p.lines) > 0 {
			head.gap = 0.5
		}
		p.lines = append(p.lines, head)
		if len(o.PlusTables) > 0 {
			p.lines = append(p.lines, single("Includes tables: "+strings.Join(o.PlusTables, ","), 12, "I", black))
		}
		if o.Notes != "" {
			p.lines = append(p.lines, single("Notes: "+o.Notes, 12, "I", black))
		}

		var drinks line
		for _, d := range o.AllDrinks() {
			drinks.runs = append(drinks.runs, run{text: drinkText(d.Qty, d.Name) + ", ", size: 12, color: thermalColor(d.Thermal)})
		}
		if o.Glassware != nil {
			for _, c := range o.Glassware.Counts() {
				drinks.runs = append(drinks.runs, run{text: fmt.Sprintf("%d %s, ", c.Count, strings.ToLower(c.Label)), size: 12, color: grey})
			}
		}
		if len(drinks.runs) > 0 {
			p.lines = append(p.lines, drinks)
		}
	}

	heading := single("Glassware totals", 14, "B", black)
	heading.gap = 1
	p.lines = append(p.lines, heading,
		single(fmt.Sprintf("Tumbler: %d, Wine: %d, Pint: %d, Prosecco: %d",
			totals.Tumbler, totals.Wine, totals.Pint, totals.Prosecco), 12, "", black),
	)
	return document{size: "A4", pages: []page{p}}
}
