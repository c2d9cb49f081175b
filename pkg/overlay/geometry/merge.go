package geometry

import "celloverlay/pkg/overlay/models"

// EffectiveRect returns the rectangle a widget anchored at the cell occupies:
// the merge region containing the cell when one exists, otherwise the single
// cell as a 1x1 region.
//
// The scan returns the first containing region in slice order. Overlapping
// regions violate the sheet invariant; on such input the result is whichever
// region happens to come first, never a failure. A spatial index could replace
// the scan if merge counts ever warrant it.
func EffectiveRect(anchor models.CellRef, merges []models.MergeRegion) models.MergeRegion {
	for _, m := range merges {
		if m.RowSpan < 1 || m.ColSpan < 1 {
			continue
		}
		if m.Contains(anchor) {
			return m
		}
	}
	return models.MergeRegion{Row: anchor.Row, Col: anchor.Col, RowSpan: 1, ColSpan: 1}
}
