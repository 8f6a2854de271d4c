// Copyright (c) 2026 Yu-Chieh Teng.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tripdata

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	td, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(td.Days) != MaxDay {
		t.Errorf("got %d days, want %d", len(td.Days), MaxDay)
	}
	for i, d := range td.Days {
		if d.Day != i+1 {
			t.Errorf("day at index %d numbered %d", i, d.Day)
		}
		if len(d.Items) == 0 {
			t.Errorf("day %d has no schedule items", d.Day)
		}
	}

	if td.Trip.Dates.Start == "" {
		t.Error("trip start date is empty")
	}
	if len(td.Hotels) != 3 {
		t.Errorf("got %d hotels, want 3", len(td.Hotels))
	}
	if td.Flights.Departure.FlightNo != "JL098" || td.Flights.Return.FlightNo != "JL097" {
		t.Errorf("flights = %s / %s", td.Flights.Departure.FlightNo, td.Flights.Return.FlightNo)
	}
	if len(td.Checklist) != 13 {
		t.Errorf("got %d default checklist items, want 13", len(td.Checklist))
	}
}

func TestDayByNumber(t *testing.T) {
	td, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	for n := MinDay; n <= MaxDay; n++ {
		d := td.DayByNumber(n)
		if d == nil {
			t.Fatalf("DayByNumber(%d) = nil", n)
		}
		if d.Day != n {
			t.Errorf("DayByNumber(%d).Day = %d", n, d.Day)
		}
	}

	for _, n := range []int{0, -1, 7, 100} {
		if d := td.DayByNumber(n); d != nil {
			t.Errorf("DayByNumber(%d) = %+v, want nil", n, d)
		}
	}
}

func TestDepartureTime(t *testing.T) {
	td, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	dep := td.DepartureTime()
	if dep.IsZero() {
		t.Fatal("DepartureTime() is zero")
	}
	want := time.Date(2026, time.January, 11, 8, 0, 0, 0, dep.Location())
	if !dep.Equal(want) {
		t.Errorf("DepartureTime() = %v, want %v", dep, want)
	}
}

func TestDefaultChecklist(t *testing.T) {
	td, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	items := td.DefaultChecklist()
	if len(items) != len(td.Checklist) {
		t.Fatalf("got %d items, want %d", len(items), len(td.Checklist))
	}
	for _, item := range items {
		if item.IsCustom {
			t.Errorf("item %d marked custom", item.ID)
		}
		if item.Checked {
			t.Errorf("item %d pre-checked", item.ID)
		}
	}

	// Mutating the copy must not touch the dataset.
	items[0].Checked = true
	items[0].Item = "changed"
	if td.Checklist[0].Item == "changed" {
		t.Error("DefaultChecklist shares backing storage with the dataset")
	}
}
