package xlsx

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"celloverlay/pkg/overlay"
	"celloverlay/pkg/overlay/models"
)

// writeTestWorkbook builds a workbook with a custom row, a custom column,
// and a B2:C3 merge.
func writeTestWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	if err := f.SetCellValue(sheet, "A1", "corner"); err != nil {
		t.Fatalf("SetCellValue failed: %v", err)
	}
	if err := f.SetCellValue(sheet, "D4", "extent"); err != nil {
		t.Fatalf("SetCellValue failed: %v", err)
	}
	if err := f.SetSheetDimension(sheet, "A1:D4"); err != nil {
		t.Fatalf("SetSheetDimension failed: %v", err)
	}
	if err := f.SetRowHeight(sheet, 1, 30); err != nil {
		t.Fatalf("SetRowHeight failed: %v", err)
	}
	if err := f.SetColWidth(sheet, "A", "A", 10); err != nil {
		t.Fatalf("SetColWidth failed: %v", err)
	}
	if err := f.MergeCell(sheet, "B2", "C3"); err != nil {
		t.Fatalf("MergeCell failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "layout.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return path
}

func TestLayout(t *testing.T) {
	path := writeTestWorkbook(t)

	wb, err := LoadWorkbook(path)
	if err != nil {
		t.Fatalf("LoadWorkbook failed: %v", err)
	}
	defer wb.Close()

	layout, err := wb.Layout("Sheet1")
	if err != nil {
		t.Fatalf("Layout failed: %v", err)
	}

	if len(layout.RowHeights) != 4 {
		t.Fatalf("expected 4 row heights, got %d", len(layout.RowHeights))
	}
	if layout.RowHeights[0] != 40 {
		t.Errorf("row 0 height = %d, expected 40 (30pt)", layout.RowHeights[0])
	}
	if layout.RowHeights[1] != DefaultRowHeightPx {
		t.Errorf("row 1 height = %d, expected default %d", layout.RowHeights[1], DefaultRowHeightPx)
	}

	if len(layout.ColWidths) != 4 {
		t.Fatalf("expected 4 col widths, got %d", len(layout.ColWidths))
	}
	if layout.ColWidths[0] != 70 {
		t.Errorf("col 0 width = %d, expected 70 (10 units)", layout.ColWidths[0])
	}
	if layout.ColWidths[1] != DefaultColWidthPx {
		t.Errorf("col 1 width = %d, expected default %d", layout.ColWidths[1], DefaultColWidthPx)
	}

	wantMerge := models.MergeRegion{Row: 1, Col: 1, RowSpan: 2, ColSpan: 2}
	if len(layout.Merges) != 1 || layout.Merges[0] != wantMerge {
		t.Errorf("merges = %+v, expected [%+v]", layout.Merges, wantMerge)
	}
}

func TestLayoutUnknownSheet(t *testing.T) {
	path := writeTestWorkbook(t)

	wb, err := LoadWorkbook(path)
	if err != nil {
		t.Fatalf("LoadWorkbook failed: %v", err)
	}
	defer wb.Close()

	if _, err := wb.Layout("Nope"); !errors.Is(err, overlay.ErrSheetNotFound) {
		t.Errorf("expected ErrSheetNotFound, got %v", err)
	}
}

func TestSnapshotEndToEnd(t *testing.T) {
	path := writeTestWorkbook(t)

	wb, err := LoadWorkbook(path)
	if err != nil {
		t.Fatalf("LoadWorkbook failed: %v", err)
	}
	defer wb.Close()

	snap, err := wb.Snapshot("Sheet1", 0, 4, 0, 4)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}

	// Row 0 is 40px tall, the rest default.
	if span := snap.Rows[0]; span != (models.Span{Start: 0, End: 40}) {
		t.Errorf("row 0 span = %+v, expected [0,40)", span)
	}
	if span := snap.Rows[1]; span != (models.Span{Start: 40, End: 40 + DefaultRowHeightPx}) {
		t.Errorf("row 1 span = %+v, expected [40,%d)", span, 40+DefaultRowHeightPx)
	}
	if span := snap.Cols[0]; span != (models.Span{Start: 0, End: 70}) {
		t.Errorf("col 0 span = %+v, expected [0,70)", span)
	}

	// A widget anchored inside the merge resolves to its full bounding box.
	widgets := []models.Widget{{ID: "w", Sheet: "Sheet1", Anchor: models.CellRef{Row: 2, Col: 2}}}
	placements := overlay.ResolveAll(snap, widgets)
	if len(placements) != 1 {
		t.Fatalf("expected 1 placement, got %d", len(placements))
	}

	p := placements[0]
	if p.Left != 70 || p.Top != 40 {
		t.Errorf("placement origin = (%d,%d), expected (70,40)", p.Left, p.Top)
	}
	if p.Width != 2*DefaultColWidthPx-1 || p.Height != 2*DefaultRowHeightPx-1 {
		t.Errorf("placement size = %dx%d, expected %dx%d",
			p.Width, p.Height, 2*DefaultColWidthPx-1, 2*DefaultRowHeightPx-1)
	}
}

func TestSnapshotUnknownSheet(t *testing.T) {
	path := writeTestWorkbook(t)

	wb, err := LoadWorkbook(path)
	if err != nil {
		t.Fatalf("LoadWorkbook failed: %v", err)
	}
	defer wb.Close()

	if _, err := wb.Snapshot("Nope", 0, 10, 0, 10); !errors.Is(err, overlay.ErrSheetNotFound) {
		t.Errorf("expected ErrSheetNotFound, got %v", err)
	}
}
