package render

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/ukaji3/drinklabels-go/pkg/drinklabels/models"
)

const (
	fontFamily = "Helvetica"
	marginMM   = 12.0
)

// TableCards writes one A5 card per table.
func TableCards(w io.Writer, orders []models.TableOrder) error {
	return writePDF(w, cardLayout(orders))
}

// CrateLabels writes a warm and a cold A5 label per zone.
func CrateLabels(w io.Writer, summaries []models.ZoneSummary) error {
	return writePDF(w, crateLayout(summaries))
}

// Summary writes the A4 backup list with glassware totals.
func Summary(w io.Writer, orders []models.TableOrder, totals models.Glassware) error {
	return writePDF(w, summaryLayout(orders, totals))
}

func writePDF(w io.Writer, doc document) error {
	pdf := newPDF(doc.size)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, p := range doc.pages {
		pdf.AddPage()
		for _, l := range p.lines {
			drawLine(pdf, l, tr)
		}
		if p.watermark != nil {
			drawWatermark(pdf, *p.watermark, tr)
		}
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render %s document: %w", doc.size, err)
	}
	return pdf.Output(w)
}

func newPDF(size string) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", size, "")
	pdf.SetMargins(marginMM, marginMM, marginMM)
	pdf.SetAutoPageBreak(true, marginMM)
	pdf.SetCreator("drinklabels", true)
	return pdf
}

// drawLine writes the runs of a line so they flow and wrap together, then
// moves to the next line.
func drawLine(pdf *fpdf.Fpdf, l line, tr func(string) string) {
	if len(l.runs) == 0 {
		return
	}
	tallest := 0.0
	for _, r := range l.runs {
		if r.size > tallest {
			tallest = r.size
		}
	}
	if l.gap > 0 {
		pdf.Ln(lineHeight(l.runs[0].size) * l.gap)
	}
	for _, r := range l.runs {
		pdf.SetFont(fontFamily, r.style, r.size)
		pdf.SetTextColor(r.color.r, r.color.g, r.color.b)
		pdf.Write(lineHeight(tallest), tr(r.text))
	}
	pdf.Ln(lineHeight(tallest))
	pdf.SetTextColor(black.r, black.g, black.b)
}

// drawWatermark prints text rotated a quarter turn along the right edge.
func drawWatermark(pdf *fpdf.Fpdf, wm watermark, tr func(string) string) {
	width, height := pdf.GetPageSize()
	x := width - marginMM
	y := height - marginMM*2

	pdf.TransformBegin()
	pdf.TransformRotate(90, x, y)
	pdf.SetFont(fontFamily, "B", wm.size)
	pdf.SetTextColor(wm.color.r, wm.color.g, wm.color.b)
	pdf.Text(x, y, tr(wm.text))
	pdf.TransformEnd()
	pdf.SetTextColor(black.r, black.g, black.b)
}
