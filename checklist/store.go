// Copyright (c) 2026 Yu-Chieh Teng.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package checklist

import (
	"strings"
	"sync"

	"github.com/ycteng/tabiplan/models"
)

// Store owns the packing checklist. On construction it resolves the persisted
// state once — current format wins, else the legacy checked-state map is
// merged onto the defaults, else the defaults are used verbatim — and every
// mutation persists the full resulting list (last writer wins).
type Store struct {
	mu       sync.Mutex
	port     Port
	defaults []models.ChecklistItem
	items    []models.ChecklistItem
}

// NewStore loads the checklist through port. A legacy-only state is migrated
// and persisted immediately so the current-format key exists from first load.
func NewStore(port Port, defaults []models.ChecklistItem) (*Store, error) {
	s := &Store{port: port, defaults: defaults}

	items, ok, err := port.Load()
	if err != nil {
		return nil, err
	}
	if ok {
		s.items = items
		return s, nil
	}

	checked, ok, err := port.LoadLegacy()
	if err != nil {
		return nil, err
	}
	if ok {
		s.items = cloneItems(defaults)
		for i := range s.items {
			s.items[i].Checked = checked[s.items[i].ID]
		}
		if err := port.Save(s.items); err != nil {
			return nil, err
		}
		return s, nil
	}

	s.items = cloneItems(defaults)
	return s, nil
}

// Items returns a copy of the current list.
func (s *Store) Items() []models.ChecklistItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneItems(s.items)
}

// Toggle flips the checked flag of the item with the given id. Unknown ids
// are a no-op; found reports whether the id matched.
func (s *Store) Toggle(id int) (found bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Checked = !s.items[i].Checked
			found = true
		}
	}
	if !found {
		return false, nil
	}
	return true, s.port.Save(s.items)
}

// Add appends a custom item with id = max existing id + 1. Labels blank
// after trimming are rejected silently: ok is false and the list is
// unchanged.
func (s *Store) Add(category, label string) (models.ChecklistItem, bool, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return models.ChecklistItem{}, false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	maxID := 0
	for _, item := range s.items {
		if item.ID > maxID {
			maxID = item.ID
		}
	}
	item := models.ChecklistItem{
		ID:       maxID + 1,
		Category: category,
		Item:     label,
		Checked:  false,
		IsCustom: true,
	}
	s.items = append(s.items, item)
	return item, true, s.port.Save(s.items)
}

// Delete removes the item with the given id. The HTTP surface only offers
// deletion for custom items; the operation itself does not check the flag.
func (s *Store) Delete(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0]
	found := false
	for _, item := range s.items {
		if item.ID == id {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	s.items = kept
	if !found {
		return false, nil
	}
	return true, s.port.Save(s.items)
}

// ResetChecks clears every checked flag, preserving custom entries.
func (s *Store) ResetChecks() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		s.items[i].Checked = false
	}
	return s.port.Save(s.items)
}

// FullReset discards all entries including custom ones, restores the default
// list and removes both storage keys. Callers must confirm with the user
// first.
func (s *Store) FullReset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.port.Clear(); err != nil {
		return err
	}
	s.items = cloneItems(s.defaults)
	return nil
}

// IsCustom reports whether the item with the given id exists and is custom.
func (s *Store) IsCustom(id int) (custom, found bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.ID == id {
			return item.IsCustom, true
		}
	}
	return false, false
}

func cloneItems(items []models.ChecklistItem) []models.ChecklistItem {
	out := make([]models.ChecklistItem, len(items))
	copy(out, items)
	return out
}
