// Package models defines data structures for overlay placement.
package models

// CellRef identifies a single logical cell on a sheet.
type CellRef struct {
	// Row is the row index (0-based).
	Row int `json:"row"`
	// Col is the column index (0-based).
	Col int `json:"col"`
}

// Span is a half-open pixel interval [Start, End) along one axis.
type Span struct {
	// Start is the leading pixel offset, inclusive.
	Start int `json:"start"`
	// End is the trailing pixel offset, exclusive.
	End int `json:"end"`
}

// AxisTable maps a logical row or column index to its pixel span.
// Only indices currently scrolled into view are present; offsets are
// monotonically non-decreasing with index.
type AxisTable map[int]Span
