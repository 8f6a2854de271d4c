// Copyright (c) 2026 Yu-Chieh Teng.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tripdata

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ycteng/tabiplan/models"
)

//go:embed data.json
var rawData []byte

// TripData is the complete static trip dataset. It is loaded once at startup
// and treated as read-only afterwards.
type TripData struct {
	Trip        models.TripInfo        `json:"trip"`
	Flights     models.Flights         `json:"flights"`
	Hotels      []models.Hotel         `json:"hotels"`
	Days        []models.Day           `json:"days"`
	Checklist   []models.ChecklistItem `json:"checklist"`
	Credentials models.Credentials     `json:"credentials"`
}

// MinDay and MaxDay bound the valid schedule day numbers.
const (
	MinDay = 1
	MaxDay = 6
)

// Load parses and validates the embedded dataset.
func Load() (*TripData, error) {
	var td TripData
	if err := json.Unmarshal(rawData, &td); err != nil {
		return nil, fmt.Errorf("failed to parse trip data: %w", err)
	}
	if err := td.validate(); err != nil {
		return nil, err
	}
	return &td, nil
}

func (td *TripData) validate() error {
	if len(td.Days) != MaxDay {
		return fmt.Errorf("expected %d days, got %d", MaxDay, len(td.Days))
	}
	for i, d := range td.Days {
		if d.Day != i+1 {
			return fmt.Errorf("day %d has number %d", i+1, d.Day)
		}
	}
	if _, err := time.Parse(time.RFC3339, td.Trip.Dates.Start); err != nil {
		return fmt.Errorf("invalid trip start date: %w", err)
	}
	seen := map[int]bool{}
	for _, item := range td.Checklist {
		if seen[item.ID] {
			return fmt.Errorf("duplicate checklist id %d", item.ID)
		}
		seen[item.ID] = true
	}
	return nil
}

// DayByNumber returns the schedule for day n, or nil when n is outside 1..6.
func (td *TripData) DayByNumber(n int) *models.Day {
	if n < MinDay || n > MaxDay {
		return nil
	}
	return &td.Days[n-1]
}

// DepartureTime returns the trip start instant, the countdown target.
func (td *TripData) DepartureTime() time.Time {
	t, _ := time.Parse(time.RFC3339, td.Trip.Dates.Start)
	return t
}

// DefaultChecklist returns a fresh copy of the default packing list with
// IsCustom forced false, safe for callers to mutate.
func (td *TripData) DefaultChecklist() []models.ChecklistItem {
	items := make([]models.ChecklistItem, len(td.Checklist))
	copy(items, td.Checklist)
	for i := range items {
		items[i].IsCustom = false
		items[i].Checked = false
	}
	return items
}
