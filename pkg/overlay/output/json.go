// Package output serializes resolution results.
package output

import (
	"encoding/json"

	"celloverlay/pkg/overlay/models"
)

// Viewport describes the window a report was resolved against.
type Viewport struct {
	// FirstRow is the first visible row index (0-based).
	FirstRow int `json:"first_row"`
	// RowCount is the number of visible rows.
	RowCount int `json:"row_count"`
	// FirstCol is the first visible column index (0-based).
	FirstCol int `json:"first_col"`
	// ColCount is the number of visible columns.
	ColCount int `json:"col_count"`
}

// Report is the CLI output envelope for one resolution pass.
type Report struct {
	// Sheet is the active sheet name.
	Sheet string `json:"sheet"`
	// Viewport is the resolved window.
	Viewport Viewport `json:"viewport"`
	// WidgetCount is the number of descriptors supplied.
	WidgetCount int `json:"widget_count"`
	// Placements lists the visible widgets, in input order.
	Placements []models.Placement `json:"placements"`
}

// ToJSON serializes a value to JSON, optionally pretty-printed.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
