package overlay

import (
	"errors"
	"fmt"
)

// ErrSheetNotFound indicates a referenced sheet has no layout data.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrBadManifest indicates the widget manifest failed validation.
var ErrBadManifest = errors.New("invalid widget manifest")

// ResolveError represents a per-widget failure outside the silent-omission
// path, e.g. manifest validation.
type ResolveError struct {
	WidgetID string
	Stage    string // "manifest", "layout"
	Err      error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("widget %q (%s): %v", e.WidgetID, e.Stage, e.Err)
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}

// NewResolveError creates a new ResolveError.
func NewResolveError(widgetID, stage string, err error) *ResolveError {
	return &ResolveError{
		WidgetID: widgetID,
		Stage:    stage,
		Err:      err,
	}
}
