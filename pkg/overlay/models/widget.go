package models

import "encoding/json"

// Widget describes one overlay widget anchored to a cell. Descriptors are
// owned by the host application and supplied as an immutable list each pass;
// the resolver neither stores nor mutates them.
type Widget struct {
	// ID is the unique widget identifier.
	ID string `json:"id"`
	// Sheet is the name of the sheet the widget belongs to.
	Sheet string `json:"sheet"`
	// Anchor is the cell the widget is logically attached to.
	Anchor CellRef `json:"anchor"`
	// Width is an explicit width in pixels. When set it overrides the
	// computed cell span entirely.
	Width *int `json:"width,omitempty"`
	// Height is an explicit height in pixels (same override rule).
	Height *int `json:"height,omitempty"`
	// OffsetX shifts the resolved left edge in pixels.
	OffsetX int `json:"offset_x,omitempty"`
	// OffsetY shifts the resolved top edge in pixels.
	OffsetY int `json:"offset_y,omitempty"`
	// Passthrough lets pointer and keyboard events fall through to the
	// grid instead of being captured by the widget.
	Passthrough bool `json:"passthrough,omitempty"`
	// Payload is the renderable content, opaque to the resolver.
	Payload json.RawMessage `json:"payload,omitempty"`
}
