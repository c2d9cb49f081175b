// Package overlay positions cell widgets above a spreadsheet grid.
//
// The host application supplies a Snapshot (sheet layouts, merge maps, and
// the visible axis tables for the current scroll position) together with an
// immutable widget list; ResolveAll returns a pixel placement for every
// widget that is currently visible. Resolution is a pure recomputation: no
// state is kept between passes, and a new pass simply supersedes a stale one.
package overlay

import (
	"celloverlay/pkg/overlay/geometry"
	"celloverlay/pkg/overlay/models"
)

// ResolveAll resolves a batch of widget descriptors against one snapshot.
//
// Widgets that cannot be placed are omitted, never fatal: a widget on a
// missing or non-active sheet, a widget whose anchor is scrolled out of view,
// or a widget facing a corrupt layout all degrade to omission so one bad
// descriptor cannot suppress placement of the rest. Output order follows
// input order.
func ResolveAll(snap *models.Snapshot, widgets []models.Widget) []models.Placement {
	if snap == nil {
		return nil
	}

	placements := make([]models.Placement, 0, len(widgets))
	for _, w := range widgets {
		sheetName := w.Sheet
		if sheetName == "" {
			sheetName = snap.ActiveSheet
		}
		if sheetName != snap.ActiveSheet {
			continue
		}
		sheet := snap.Layout(sheetName)
		if sheet == nil {
			continue
		}
		if w.Anchor.Row < 0 || w.Anchor.Col < 0 {
			continue
		}
		p, ok := geometry.Resolve(w, sheet.Merges, snap.Rows, snap.Cols)
		if !ok {
			continue
		}
		placements = append(placements, p)
	}
	return placements
}
