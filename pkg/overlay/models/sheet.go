package models

// SheetLayout holds the full (unscrolled) geometry of one sheet: per-index
// row heights and column widths in pixels, plus the merge map.
type SheetLayout struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// RowHeights holds per-row pixel heights, indexed from row 0. Rows at
	// or beyond len(RowHeights) use DefaultRowHeight.
	RowHeights []int `json:"row_heights,omitempty"`
	// ColWidths holds per-column pixel widths, indexed from column 0.
	ColWidths []int `json:"col_widths,omitempty"`
	// DefaultRowHeight is the pixel height for rows without an explicit one.
	DefaultRowHeight int `json:"default_row_height"`
	// DefaultColWidth is the pixel width for columns without an explicit one.
	DefaultColWidth int `json:"default_col_width"`
	// Merges is the sheet's merge-region map.
	Merges []MergeRegion `json:"merges,omitempty"`
}

// RowHeight returns the pixel height of a row.
func (s *SheetLayout) RowHeight(row int) int {
	if row >= 0 && row < len(s.RowHeights) {
		return s.RowHeights[row]
	}
	return s.DefaultRowHeight
}

// ColWidth returns the pixel width of a column.
func (s *SheetLayout) ColWidth(col int) int {
	if col >= 0 && col < len(s.ColWidths) {
		return s.ColWidths[col]
	}
	return s.DefaultColWidth
}

// Snapshot is the immutable input tuple for one resolution pass: the active
// sheet, all known sheet layouts, and the visible axis tables supplied by the
// grid engine for the current scroll position.
type Snapshot struct {
	// ActiveSheet is the name of the sheet currently on screen.
	ActiveSheet string `json:"active_sheet"`
	// Sheets maps sheet name to layout.
	Sheets map[string]*SheetLayout `json:"sheets"`
	// Rows is the visible row axis table.
	Rows AxisTable `json:"rows"`
	// Cols is the visible column axis table.
	Cols AxisTable `json:"cols"`
}

// Layout returns the layout for a sheet name, or nil when unknown.
func (s *Snapshot) Layout(name string) *SheetLayout {
	if s == nil || s.Sheets == nil {
		return nil
	}
	return s.Sheets[name]
}
