// Package xlsx builds overlay snapshots from real workbooks. It stands in for
// the grid engine: row heights, column widths, and merge maps are read from an
// xlsx file and converted to the pixel metrics the resolver consumes.
package xlsx

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"celloverlay/pkg/overlay"
	"celloverlay/pkg/overlay/geometry"
	"celloverlay/pkg/overlay/models"
)

// DefaultRowHeightPx is the pixel height of an unset row (15pt at 96 DPI).
const DefaultRowHeightPx = 20

// DefaultColWidthPx is the pixel width of an unset column (8.43 units).
const DefaultColWidthPx = 64

// Workbook wraps an open xlsx file.
type Workbook struct {
	f    *excelize.File
	path string
}

// LoadWorkbook opens an xlsx file for layout extraction.
func LoadWorkbook(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &Workbook{f: f, path: path}, nil
}

// Close releases the underlying file.
func (w *Workbook) Close() error {
	return w.f.Close()
}

// Sheets returns the workbook's sheet names in workbook order.
func (w *Workbook) Sheets() []string {
	return w.f.GetSheetList()
}

// Layout extracts the full geometry of one sheet: per-index pixel sizes within
// the sheet's used range plus the merge map. Indices outside the used range
// fall back to the defaults.
func (w *Workbook) Layout(sheet string) (*models.SheetLayout, error) {
	layout := &models.SheetLayout{
		Name:             sheet,
		DefaultRowHeight: DefaultRowHeightPx,
		DefaultColWidth:  DefaultColWidthPx,
	}

	maxRow, maxCol := w.usedRange(sheet)
	if maxRow == 0 && maxCol == 0 {
		// Unknown sheet names surface here rather than as empty defaults.
		if !w.hasSheet(sheet) {
			return nil, fmt.Errorf("%w: %s", overlay.ErrSheetNotFound, sheet)
		}
	}

	for r := 1; r <= maxRow; r++ {
		pt, err := w.f.GetRowHeight(sheet, r)
		if err != nil {
			layout.RowHeights = append(layout.RowHeights, DefaultRowHeightPx)
			continue
		}
		layout.RowHeights = append(layout.RowHeights, geometry.PointsToPixels(pt))
	}

	for c := 1; c <= maxCol; c++ {
		name, err := excelize.ColumnNumberToName(c)
		if err != nil {
			layout.ColWidths = append(layout.ColWidths, DefaultColWidthPx)
			continue
		}
		units, err := w.f.GetColWidth(sheet, name)
		if err != nil {
			layout.ColWidths = append(layout.ColWidths, DefaultColWidthPx)
			continue
		}
		layout.ColWidths = append(layout.ColWidths, geometry.WidthUnitsToPixels(units))
	}

	merges, err := w.f.GetMergeCells(sheet)
	if err == nil {
		for _, m := range merges {
			if region, ok := mergeToRegion(m); ok {
				layout.Merges = append(layout.Merges, region)
			}
		}
	}

	return layout, nil
}

// Snapshot builds a resolution snapshot for one sheet and viewport window:
// rows [firstRow, firstRow+rowCount) and columns [firstCol, firstCol+colCount)
// scrolled into view, offsets relative to the viewport origin. Layout failures
// on non-active sheets are skipped so one bad sheet cannot sink the pass.
func (w *Workbook) Snapshot(sheet string, firstRow, rowCount, firstCol, colCount int) (*models.Snapshot, error) {
	snap := &models.Snapshot{
		ActiveSheet: sheet,
		Sheets:      make(map[string]*models.SheetLayout),
	}

	for _, name := range w.Sheets() {
		layout, err := w.Layout(name)
		if err != nil {
			continue
		}
		snap.Sheets[name] = layout
	}

	active := snap.Layout(sheet)
	if active == nil {
		return nil, fmt.Errorf("%w: %s", overlay.ErrSheetNotFound, sheet)
	}

	snap.Rows = geometry.RowWindow(active, firstRow, rowCount)
	snap.Cols = geometry.ColWindow(active, firstCol, colCount)
	return snap, nil
}

// usedRange returns the 1-based bottom-right bounds of the sheet's dimension,
// extended to cover any merge regions that reach past it.
func (w *Workbook) usedRange(sheet string) (maxRow, maxCol int) {
	dim, err := w.f.GetSheetDimension(sheet)
	if err == nil && dim != "" {
		ref := dim
		if i := strings.Index(ref, ":"); i >= 0 {
			ref = ref[i+1:]
		}
		if col, row, err := excelize.CellNameToCoordinates(ref); err == nil {
			maxRow, maxCol = row, col
		}
	}

	merges, err := w.f.GetMergeCells(sheet)
	if err == nil {
		for _, m := range merges {
			col, row, err := excelize.CellNameToCoordinates(m.GetEndAxis())
			if err != nil {
				continue
			}
			if row > maxRow {
				maxRow = row
			}
			if col > maxCol {
				maxCol = col
			}
		}
	}

	return maxRow, maxCol
}

func (w *Workbook) hasSheet(sheet string) bool {
	for _, name := range w.Sheets() {
		if name == sheet {
			return true
		}
	}
	return false
}

// mergeToRegion converts an excelize merge range to a 0-based region.
func mergeToRegion(m excelize.MergeCell) (models.MergeRegion, bool) {
	startCol, startRow, err := excelize.CellNameToCoordinates(m.GetStartAxis())
	if err != nil {
		return models.MergeRegion{}, false
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(m.GetEndAxis())
	if err != nil {
		return models.MergeRegion{}, false
	}
	if endRow < startRow || endCol < startCol {
		return models.MergeRegion{}, false
	}
	return models.MergeRegion{
		Row:     startRow - 1,
		Col:     startCol - 1,
		RowSpan: endRow - startRow + 1,
		ColSpan: endCol - startCol + 1,
	}, true
}
