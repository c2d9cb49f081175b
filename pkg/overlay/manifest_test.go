package overlay

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"celloverlay/pkg/overlay/models"
)

func intPtr(v int) *int { return &v }

func TestLoadManifest(t *testing.T) {
	content := `{
		"widgets": [
			{"id": "note", "sheet": "Sheet1", "anchor": {"row": 2, "col": 3}, "width": 120, "passthrough": true},
			{"id": "chart", "sheet": "Sheet1", "anchor": {"row": 0, "col": 0}, "offset_x": 4}
		]
	}`
	path := filepath.Join(t.TempDir(), "widgets.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}

	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest failed: %v", err)
	}
	if len(m.Widgets) != 2 {
		t.Fatalf("expected 2 widgets, got %d", len(m.Widgets))
	}

	w := m.Widgets[0]
	if w.ID != "note" || w.Anchor != (models.CellRef{Row: 2, Col: 3}) {
		t.Errorf("unexpected first widget: %+v", w)
	}
	if w.Width == nil || *w.Width != 120 {
		t.Errorf("expected width 120, got %v", w.Width)
	}
	if !w.Passthrough {
		t.Error("expected passthrough true")
	}
	if m.Widgets[1].OffsetX != 4 {
		t.Errorf("expected offset_x 4, got %d", m.Widgets[1].OffsetX)
	}
}

func TestLoadManifestBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "widgets.json")
	if err := os.WriteFile(path, []byte("{"), 0644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}

	if _, err := LoadManifest(path); !errors.Is(err, ErrBadManifest) {
		t.Errorf("expected ErrBadManifest, got %v", err)
	}
}

func TestManifestValidate(t *testing.T) {
	tests := []struct {
		name    string
		widgets []models.Widget
		wantErr bool
	}{
		{"valid", []models.Widget{{ID: "a"}, {ID: "b"}}, false},
		{"empty id", []models.Widget{{ID: ""}}, true},
		{"duplicate id", []models.Widget{{ID: "a"}, {ID: "a"}}, true},
		{"negative anchor", []models.Widget{{ID: "a", Anchor: models.CellRef{Row: -1}}}, true},
		{"negative width", []models.Widget{{ID: "a", Width: intPtr(-5)}}, true},
		{"negative height", []models.Widget{{ID: "a", Height: intPtr(-5)}}, true},
	}
	for _, tt := range tests {
		m := &Manifest{Widgets: tt.widgets}
		err := m.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: Validate() = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrBadManifest) {
			t.Errorf("%s: error does not wrap ErrBadManifest: %v", tt.name, err)
		}
	}
}

func TestResolveErrorUnwrap(t *testing.T) {
	err := NewResolveError("w1", "manifest", ErrBadManifest)
	if !errors.Is(err, ErrBadManifest) {
		t.Error("ResolveError must unwrap to its cause")
	}
	if err.Error() == "" {
		t.Error("expected non-empty error string")
	}
}
