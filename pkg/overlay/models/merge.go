package models

// MergeRegion is a rectangular block of cells treated as one visual cell.
// It covers rows [Row, Row+RowSpan) and columns [Col, Col+ColSpan).
// Regions within one sheet must not overlap; the invariant is owned by the
// data source and is not validated here.
type MergeRegion struct {
	// Row is the anchor row index (0-based).
	Row int `json:"row"`
	// Col is the anchor column index (0-based).
	Col int `json:"col"`
	// RowSpan is the number of rows covered (>= 1).
	RowSpan int `json:"row_span"`
	// ColSpan is the number of columns covered (>= 1).
	ColSpan int `json:"col_span"`
}

// Contains reports whether the cell lies inside the region.
func (m MergeRegion) Contains(c CellRef) bool {
	return c.Row >= m.Row && c.Row < m.Row+m.RowSpan &&
		c.Col >= m.Col && c.Col < m.Col+m.ColSpan
}
