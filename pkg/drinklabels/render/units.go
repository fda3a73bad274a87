// Package render lays out and writes the printable documents: table cards,
// crate labels, the summary sheet and an optional workbook.
package render

// MMPerPoint is the number of millimetres per typographic point.
// 1 inch = 72 points = 25.4 mm
const MMPerPoint = 25.4 / 72

// lineSpacing is the leading applied to a font size.
const lineSpacing = 1.25

// PointsToMM converts a font size in points to millimetres.
func PointsToMM(pt float64) float64 {
	return pt * MMPerPoint
}

// lineHeight returns the advance in millimetres for text of the given size.
func lineHeight(pt float64) float64 {
	return PointsToMM(pt) * lineSpacing
}
