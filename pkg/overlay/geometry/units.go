// Package geometry resolves cell anchors to viewport pixel rectangles.
package geometry

import "math"

// PixelsPerInch is the screen density Excel assumes at 100% zoom.
const PixelsPerInch = 96

// PointsPerInch is the typographic point density.
const PointsPerInch = 72

// MaxDigitWidth is the pixel width of the widest digit of the default font
// (Calibri 11), the base unit of OOXML column widths.
const MaxDigitWidth = 7

// PointsToPixels converts a row height in points to pixels at 96 DPI.
// Excel stores row heights in points; 15pt (the default) renders as 20px.
func PointsToPixels(pt float64) int {
	return int(math.Round(pt * PixelsPerInch / PointsPerInch))
}

// WidthUnitsToPixels converts a stored OOXML column width to pixels using the
// spec's truncation formula. The stored unit already includes cell padding;
// the default stored width 9.140625 renders as 64px.
func WidthUnitsToPixels(w float64) int {
	return int(((256*w + math.Trunc(128/MaxDigitWidth)) / 256) * MaxDigitWidth)
}
