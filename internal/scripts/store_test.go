package scripts

import (
	"errors"
	"testing"

	"github.com/verte-zerg/telecue/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := NewStore(Builtins())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return st
}

func TestBuiltinsHaveUniqueIDs(t *testing.T) {
	seen := map[model.ScriptID]struct{}{}
	for _, sc := range Builtins() {
		if _, ok := seen[sc.ID]; ok {
			t.Fatalf("duplicate id %q", sc.ID)
		}
		seen[sc.ID] = struct{}{}
		if sc.Content == "" || sc.Title == "" {
			t.Fatalf("builtin %q is incomplete", sc.ID)
		}
	}
	if len(seen) != 3 {
		t.Fatalf("expected 3 builtins, got %d", len(seen))
	}
}

func TestNewStoreRejectsDuplicates(t *testing.T) {
	_, err := NewStore([]model.Script{{ID: "a", Content: "x"}, {ID: "a", Content: "y"}})
	if err == nil {
		t.Fatalf("expected duplicate id error")
	}
	if _, err := NewStore(nil); err == nil {
		t.Fatalf("expected empty catalog error")
	}
}

func TestSelectUnknownIDKeepsSelection(t *testing.T) {
	st := newTestStore(t)
	if !st.Select("2") {
		t.Fatalf("expected select 2")
	}
	if st.Select("99") {
		t.Fatalf("expected select 99 to fail")
	}
	if st.Selected().ID != "2" {
		t.Fatalf("expected selection 2, got %q", st.Selected().ID)
	}
}

func TestLookupNotFound(t *testing.T) {
	st := newTestStore(t)
	if _, err := st.Lookup("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	sc, err := st.Lookup("3")
	if err != nil || sc.Title != "Closing & Next Steps" {
		t.Fatalf("unexpected lookup result %+v, %v", sc, err)
	}
}

func TestImportFromTextDoesNotSelect(t *testing.T) {
	st := newTestStore(t)
	sc := st.ImportFromText("draft")
	if sc.Title != "Custom Script" || sc.Description != "Your custom script content" || sc.EstimatedTime != "Variable" {
		t.Fatalf("unexpected placeholders %+v", sc)
	}
	if sc.Content != "draft" {
		t.Fatalf("unexpected content %q", sc.Content)
	}
	if st.Selected().ID != "1" {
		t.Fatalf("import changed selection to %q", st.Selected().ID)
	}
	if len(st.Catalog()) != 3 {
		t.Fatalf("import changed catalog")
	}
	if st.Select(sc.ID) {
		t.Fatalf("uncommitted import should not be selectable")
	}
}

func TestCommitCustomReplacesPreviousCustom(t *testing.T) {
	st := newTestStore(t)
	first := st.CommitCustom("one")
	if st.Selected().ID != first.ID {
		t.Fatalf("expected custom selected")
	}
	second := st.CommitCustom("two")
	if first.ID == second.ID {
		t.Fatalf("expected fresh id")
	}
	catalog := st.Catalog()
	if len(catalog) != 4 || catalog[3].ID != second.ID {
		t.Fatalf("expected only the latest custom in catalog, got %d entries", len(catalog))
	}
	if st.Select(first.ID) {
		t.Fatalf("superseded custom should be gone")
	}
}

func TestCommitCustomLeavesBuiltinsIntact(t *testing.T) {
	st := newTestStore(t)
	before, _ := st.Lookup("1")
	st.CommitCustom("hello")
	if !st.Select("1") {
		t.Fatalf("expected builtin select")
	}
	if st.Selected().Content != before.Content {
		t.Fatalf("builtin content changed")
	}
}

func TestFreshIDSkipsCollisions(t *testing.T) {
	st := newTestStore(t)
	ids := []string{"2", "3", "fresh"}
	st.newID = func() (string, error) {
		id := ids[0]
		ids = ids[1:]
		return id, nil
	}
	if sc := st.ImportFromText("x"); sc.ID != "fresh" {
		t.Fatalf("expected colliding ids to be skipped, got %q", sc.ID)
	}
}

func TestGeneratedIDsAreUnique(t *testing.T) {
	st := newTestStore(t)
	seen := map[model.ScriptID]struct{}{}
	for i := 0; i < 500; i++ {
		id := st.ImportFromText("x").ID
		if _, ok := seen[id]; ok {
			t.Fatalf("duplicate generated id %q", id)
		}
		seen[id] = struct{}{}
	}
}
