package geometry

import "celloverlay/pkg/overlay/models"

// sizeAt returns the pixel size of one index given explicit per-index sizes
// and a fallback default.
func sizeAt(sizes []int, def, i int) int {
	if i >= 0 && i < len(sizes) {
		return sizes[i]
	}
	return def
}

// Window derives a visible axis table for indices [first, first+count) from
// full per-index sizes. Offsets are viewport-relative: the first visible index
// starts at pixel 0 and spans accumulate from there, so the table is
// monotonically non-decreasing by construction.
//
// The grid engine normally owns this table; Window exists so the demo tooling
// and tests can stand in for it.
func Window(sizes []int, def, first, count int) models.AxisTable {
	if first < 0 || count <= 0 {
		return models.AxisTable{}
	}
	table := make(models.AxisTable, count)
	offset := 0
	for i := first; i < first+count; i++ {
		size := sizeAt(sizes, def, i)
		if size < 0 {
			size = 0
		}
		table[i] = models.Span{Start: offset, End: offset + size}
		offset += size
	}
	return table
}

// RowWindow derives the visible row table for a sheet layout.
func RowWindow(sheet *models.SheetLayout, first, count int) models.AxisTable {
	return Window(sheet.RowHeights, sheet.DefaultRowHeight, first, count)
}

// ColWindow derives the visible column table for a sheet layout.
func ColWindow(sheet *models.SheetLayout, first, count int) models.AxisTable {
	return Window(sheet.ColWidths, sheet.DefaultColWidth, first, count)
}

// edges looks up the leading edge of index lo and the trailing edge of index
// hi in an axis table. ok is false when either index is scrolled out of view.
func edges(table models.AxisTable, lo, hi int) (start, end int, ok bool) {
	first, ok := table[lo]
	if !ok {
		return 0, 0, false
	}
	last, ok := table[hi]
	if !ok {
		return 0, 0, false
	}
	return first.Start, last.End, true
}
