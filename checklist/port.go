// Copyright (c) 2026 Yu-Chieh Teng.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package checklist

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ycteng/tabiplan/models"
)

// Storage keys. The legacy key held only a checked-state map in an earlier
// format; it is read for one-time migration and never written again.
const (
	ItemsKey  = "trip-checklist-items"
	LegacyKey = "trip-checklist-checked"
)

// Port is the persistence boundary for the checklist. The store owns all
// reads and writes through it; tests substitute an in-memory fake.
type Port interface {
	// Load returns the persisted full item list. ok is false when the
	// current-format key is absent.
	Load() ([]models.ChecklistItem, bool, error)
	// LoadLegacy returns the legacy id→checked map. ok is false when the
	// legacy key is absent.
	LoadLegacy() (map[int]bool, bool, error)
	// Save persists the complete list under the current-format key.
	Save(items []models.ChecklistItem) error
	// Clear removes both storage keys.
	Clear() error
}

// SQLPort persists the checklist in the storage key-value table.
type SQLPort struct {
	db *sql.DB
}

func NewSQLPort(db *sql.DB) *SQLPort {
	return &SQLPort{db: db}
}

func (p *SQLPort) Load() ([]models.ChecklistItem, bool, error) {
	var raw string
	err := p.db.QueryRow("SELECT value FROM storage WHERE key = $1", ItemsKey).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load checklist: %w", err)
	}
	var items []models.ChecklistItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, false, fmt.Errorf("failed to decode checklist: %w", err)
	}
	return items, true, nil
}

func (p *SQLPort) LoadLegacy() (map[int]bool, bool, error) {
	var raw string
	err := p.db.QueryRow("SELECT value FROM storage WHERE key = $1", LegacyKey).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load legacy checklist state: %w", err)
	}
	// Legacy payloads key ids as JSON strings.
	var byString map[string]bool
	if err := json.Unmarshal([]byte(raw), &byString); err != nil {
		return nil, false, fmt.Errorf("failed to decode legacy checklist state: %w", err)
	}
	checked := make(map[int]bool, len(byString))
	for k, v := range byString {
		id, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		checked[id] = v
	}
	return checked, true, nil
}

func (p *SQLPort) Save(items []models.ChecklistItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode checklist: %w", err)
	}
	_, err = p.db.Exec(`
		INSERT INTO storage (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`, ItemsKey, string(raw))
	if err != nil {
		return fmt.Errorf("failed to save checklist: %w", err)
	}
	return nil
}

func (p *SQLPort) Clear() error {
	_, err := p.db.Exec("DELETE FROM storage WHERE key IN ($1, $2)", ItemsKey, LegacyKey)
	if err != nil {
		return fmt.Errorf("failed to clear checklist storage: %w", err)
	}
	return nil
}

// MemoryPort is an in-memory Port used by tests.
type MemoryPort struct {
	Items     []models.ChecklistItem
	HasItems  bool
	Legacy    map[int]bool
	HasLegacy bool
	SaveErr   error
}

func (p *MemoryPort) Load() ([]models.ChecklistItem, bool, error) {
	if !p.HasItems {
		return nil, false, nil
	}
	items := make([]models.ChecklistItem, len(p.Items))
	copy(items, p.Items)
	return items, true, nil
}

func (p *MemoryPort) LoadLegacy() (map[int]bool, bool, error) {
	return p.Legacy, p.HasLegacy, nil
}

func (p *MemoryPort) Save(items []models.ChecklistItem) error {
	if p.SaveErr != nil {
		return p.SaveErr
	}
	p.Items = make([]models.ChecklistItem, len(items))
	copy(p.Items, items)
	p.HasItems = true
	return nil
}

func (p *MemoryPort) Clear() error {
	p.Items, p.HasItems = nil, false
	p.Legacy, p.HasLegacy = nil, false
	return nil
}
