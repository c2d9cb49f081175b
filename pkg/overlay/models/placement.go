package models

// EventMode selects how a placed widget treats input events.
type EventMode string

const (
	// EventBlock contains pointer/keyboard events so they never reach the
	// grid underneath (no accidental selection or cell edits).
	EventBlock EventMode = "block"
	// EventPassthrough renders the widget non-interactively; all events
	// fall through to the grid.
	EventPassthrough EventMode = "passthrough"
)

// Placement is the resolved on-screen rectangle for one visible widget,
// in pixels relative to the viewport origin.
type Placement struct {
	// ID is the widget identifier the placement belongs to.
	ID string `json:"id"`
	// Left is the left edge in pixels.
	Left int `json:"left"`
	// Top is the top edge in pixels.
	Top int `json:"top"`
	// Width is the width in pixels.
	Width int `json:"width"`
	// Height is the height in pixels.
	Height int `json:"height"`
	// Mode is the event containment mode for the widget surface.
	Mode EventMode `json:"mode"`
}
