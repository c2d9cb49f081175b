package geometry

import "celloverlay/pkg/overlay/models"

// Resolve maps one widget descriptor to its viewport pixel rectangle.
// It is a pure function of (widget, merge map, visible axis tables); ok is
// false when the effective rectangle is not fully addressable in the current
// tables, i.e. the widget is scrolled out of view.
//
// Default sizes subtract one pixel for the border shared between adjacent
// cells. An explicit Width/Height on the descriptor replaces the computed
// value outright. OffsetX/OffsetY translate the position only.
func Resolve(w models.Widget, merges []models.MergeRegion, rows, cols models.AxisTable) (models.Placement, bool) {
	rect := EffectiveRect(w.Anchor, merges)

	top, bottom, ok := edges(rows, rect.Row, rect.Row+rect.RowSpan-1)
	if !ok {
		return models.Placement{}, false
	}
	left, right, ok := edges(cols, rect.Col, rect.Col+rect.ColSpan-1)
	if !ok {
		return models.Placement{}, false
	}

	width := right - left - 1
	height := bottom - top - 1
	if w.Width != nil {
		width = *w.Width
	}
	if w.Height != nil {
		height = *w.Height
	}

	mode := models.EventBlock
	if w.Passthrough {
		mode = models.EventPassthrough
	}

	return models.Placement{
		ID:     w.ID,
		Left:   left + w.OffsetX,
		Top:    top + w.OffsetY,
		Width:  width,
		Height: height,
		Mode:   mode,
	}, true
}
