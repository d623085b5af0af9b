// Package scripts holds the teleprompter script catalog and selection.
package scripts

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/verte-zerg/telecue/internal/model"
)

// ErrNotFound is returned by Lookup for ids outside the catalog.
var ErrNotFound = errors.New("script not found")

const (
	customTitle       = "Custom Script"
	customDescription = "Your custom script content"
	customEstimate    = "Variable"
)

// Store owns the catalog (built-ins plus at most one custom script) and the
// current selection. Built-in scripts are never modified.
type Store struct {
	mu       sync.RWMutex
	builtins map[model.ScriptID]model.Script
	order    []model.ScriptID
	custom   *model.Script
	selected model.ScriptID
	newID    func() (string, error)
}

// NewStore builds a store over builtins and selects the first one.
func NewStore(builtins []model.Script) (*Store, error) {
	if len(builtins) == 0 {
		return nil, fmt.Errorf("script catalog is empty")
	}
	s := &Store{
		builtins: make(map[model.ScriptID]model.Script, len(builtins)),
		order:    make([]model.ScriptID, 0, len(builtins)),
		newID:    newUUIDv7,
	}
	for _, sc := range builtins {
		if strings.TrimSpace(string(sc.ID)) == "" {
			return nil, fmt.Errorf("script %q has an empty id", sc.Title)
		}
		if _, dup := s.builtins[sc.ID]; dup {
			return nil, fmt.Errorf("duplicate script id %q", sc.ID)
		}
		s.builtins[sc.ID] = sc
		s.order = append(s.order, sc.ID)
	}
	s.selected = s.order[0]
	return s, nil
}

// Catalog returns the built-ins in declared order followed by the custom
// script, if one exists.
func (s *Store) Catalog() []model.Script {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Script, 0, len(s.order)+1)
	for _, id := range s.order {
		out = append(out, s.builtins[id])
	}
	if s.custom != nil {
		out = append(out, *s.custom)
	}
	return out
}

// Lookup returns the script with id.
func (s *Store) Lookup(id model.ScriptID) (model.Script, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lookupLocked(id)
}

// Select makes id the current script. Unknown ids leave the selection as is.
func (s *Store) Select(id model.ScriptID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.lookupLocked(id); err != nil {
		return false
	}
	s.selected = id
	return true
}

// Selected returns the current script.
func (s *Store) Selected() model.Script {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sc, err := s.lookupLocked(s.selected)
	if err != nil {
		// selection always points into the catalog
		return s.builtins[s.order[0]]
	}
	return sc
}

// ImportFromText builds a custom script from text without adding it to the
// catalog or touching the selection.
func (s *Store) ImportFromText(text string) model.Script {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.importLocked(text)
}

// CommitCustom imports text and selects the result. Any previous custom
// script leaves the catalog.
func (s *Store) CommitCustom(text string) model.Script {
	s.mu.Lock()
	defer s.mu.Unlock()
	sc := s.importLocked(text)
	s.custom = &sc
	s.selected = sc.ID
	return sc
}

// Custom returns the current custom script, if any.
func (s *Store) Custom() (model.Script, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.custom == nil {
		return model.Script{}, false
	}
	return *s.custom, true
}

func (s *Store) lookupLocked(id model.ScriptID) (model.Script, error) {
	if sc, ok := s.builtins[id]; ok {
		return sc, nil
	}
	if s.custom != nil && s.custom.ID == id {
		return *s.custom, nil
	}
	return model.Script{}, fmt.Errorf("%w: %q", ErrNotFound, id)
}

func (s *Store) importLocked(text string) model.Script {
	return model.Script{
		ID:            s.freshIDLocked(),
		Title:         customTitle,
		Description:   customDescription,
		Content:       text,
		EstimatedTime: customEstimate,
	}
}

func (s *Store) freshIDLocked() model.ScriptID {
	for {
		raw, err := s.newID()
		if err != nil {
			raw = uuid.NewString()
		}
		id := model.ScriptID(raw)
		if _, err := s.lookupLocked(id); err != nil {
			return id
		}
	}
}

func newUUIDv7() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
