// Copyright (c) 2026 Yu-Chieh Teng.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package mapview

import (
	"errors"
	"testing"

	"github.com/ycteng/tabiplan/models"
)

var testPoints = []models.GeoPoint{
	{Lat: 35.6812, Lng: 139.7671, Name: "東京車站"},
	{Lat: 35.7148, Lng: 139.7967, Name: "淺草寺"},
	{Lat: 35.7101, Lng: 139.8107, Name: "晴空塔"},
}

func TestRenderBeforeReady(t *testing.T) {
	r := NewRenderer()

	if r.Ready() {
		t.Error("new renderer should not be ready")
	}
	if _, err := r.Render(-1); !errors.Is(err, ErrNotReady) {
		t.Errorf("Render before SetPoints: err = %v, want ErrNotReady", err)
	}

	r.SetPoints(testPoints)
	if !r.Ready() {
		t.Error("renderer should be ready after SetPoints")
	}
}

func TestRenderNoSelection(t *testing.T) {
	r := NewRenderer()
	r.SetPoints(testPoints)

	v, err := r.Render(-1)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if len(v.Markers) != 3 {
		t.Fatalf("got %d markers, want 3", len(v.Markers))
	}
	for i, m := range v.Markers {
		if m.Number != i+1 {
			t.Errorf("marker %d numbered %d, want %d", i, m.Number, i+1)
		}
		if m.Selected {
			t.Errorf("marker %d selected with no selection", i)
		}
	}
	if len(v.Path) != 3 {
		t.Errorf("got %d path points, want 3", len(v.Path))
	}
	if v.Recenter != nil {
		t.Error("Recenter set with no selection")
	}
	if v.Bounds == nil {
		t.Fatal("Bounds missing")
	}
	if v.Bounds.MinLat != 35.6812 || v.Bounds.MaxLat != 35.7148 {
		t.Errorf("lat bounds = [%v, %v], want [35.6812, 35.7148]", v.Bounds.MinLat, v.Bounds.MaxLat)
	}
	if v.Bounds.MinLng != 139.7671 || v.Bounds.MaxLng != 139.8107 {
		t.Errorf("lng bounds = [%v, %v], want [139.7671, 139.8107]", v.Bounds.MinLng, v.Bounds.MaxLng)
	}
}

func TestRenderWithSelection(t *testing.T) {
	r := NewRenderer()
	r.SetPoints(testPoints)

	v, err := r.Render(1)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	for i, m := range v.Markers {
		if want := i == 1; m.Selected != want {
			t.Errorf("marker %d selected = %v, want %v", i, m.Selected, want)
		}
	}
	if v.Recenter == nil {
		t.Fatal("Recenter missing for selection")
	}
	if v.Recenter.Label != "淺草寺" {
		t.Errorf("Recenter.Label = %q, want 淺草寺", v.Recenter.Label)
	}
	if v.Recenter.Lat != 35.7148 || v.Recenter.Lng != 139.7967 {
		t.Errorf("Recenter = (%v, %v), want (35.7148, 139.7967)", v.Recenter.Lat, v.Recenter.Lng)
	}
}

func TestRenderEmptyPoints(t *testing.T) {
	r := NewRenderer()
	r.SetPoints(nil)

	v, err := r.Render(-1)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(v.Markers) != 0 || len(v.Path) != 0 {
		t.Errorf("empty surface rendered %d markers, %d path points", len(v.Markers), len(v.Path))
	}
	if v.Bounds != nil {
		t.Error("Bounds set with no points")
	}
}
