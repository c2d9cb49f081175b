package overlay

import (
	"encoding/json"
	"fmt"
	"os"

	"celloverlay/pkg/overlay/models"
)

// Manifest is the on-disk widget list consumed by the CLI and the viewer.
type Manifest struct {
	// Widgets is the descriptor list, in render order.
	Widgets []models.Widget `json:"widgets"`
}

// LoadManifest reads and validates a widget manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadManifest, err)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks descriptor invariants: unique non-empty IDs, non-negative
// anchors, and non-negative explicit sizes.
func (m *Manifest) Validate() error {
	seen := make(map[string]struct{}, len(m.Widgets))
	for i, w := range m.Widgets {
		if w.ID == "" {
			return NewResolveError(fmt.Sprintf("#%d", i), "manifest", fmt.Errorf("%w: empty id", ErrBadManifest))
		}
		if _, dup := seen[w.ID]; dup {
			return NewResolveError(w.ID, "manifest", fmt.Errorf("%w: duplicate id", ErrBadManifest))
		}
		seen[w.ID] = struct{}{}
		if w.Anchor.Row < 0 || w.Anchor.Col < 0 {
			return NewResolveError(w.ID, "manifest", fmt.Errorf("%w: negative anchor", ErrBadManifest))
		}
		if w.Width != nil && *w.Width < 0 {
			return NewResolveError(w.ID, "manifest", fmt.Errorf("%w: negative width", ErrBadManifest))
		}
		if w.Height != nil && *w.Height < 0 {
			return NewResolveError(w.ID, "manifest", fmt.Errorf("%w: negative height", ErrBadManifest))
		}
	}
	return nil
}
