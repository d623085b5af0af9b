package scripts

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	data := `scripts:
  - id: pitch
    title: Elevator pitch
    description: Thirty seconds on what you do.
    estimated_time: 30 sec
    content: |
      Hi, I build things.
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	scripts, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(scripts) != 1 {
		t.Fatalf("expected 1 script, got %d", len(scripts))
	}
	sc := scripts[0]
	if sc.ID != "pitch" || sc.EstimatedTime != "30 sec" || sc.Content != "Hi, I build things.\n" {
		t.Fatalf("unexpected script %+v", sc)
	}

	st, err := NewStore(append(Builtins(), scripts...))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if !st.Select("pitch") {
		t.Fatalf("expected catalog script to be selectable")
	}
}

func TestLoadCatalogEmptyPath(t *testing.T) {
	scripts, err := LoadCatalog("")
	if err != nil || scripts != nil {
		t.Fatalf("expected nothing for empty path, got %v, %v", scripts, err)
	}
}

func TestLoadCatalogRejectsMissingID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte("scripts:\n  - title: x\n    content: y\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadCatalog(path); err == nil {
		t.Fatalf("expected missing id error")
	}
}
