// Copyright (c) 2026 Yu-Chieh Teng.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package mapview

import (
	"errors"

	"github.com/ycteng/tabiplan/models"
)

// ErrNotReady is returned by view queries before SetPoints has been called.
var ErrNotReady = errors.New("map surface not initialized")

// Renderer builds map render state from the located points. It starts in a
// not-ready state; every view query is gated until points are supplied,
// mirroring the deferred initialization of the underlying map surface.
type Renderer struct {
	points []models.GeoPoint
	ready  bool
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Ready reports whether the rendering surface has been initialized.
func (r *Renderer) Ready() bool {
	return r.ready
}

// SetPoints initializes the surface with the located subsequence.
func (r *Renderer) SetPoints(points []models.GeoPoint) {
	r.points = points
	r.ready = true
}

// Render produces the view for the given selected located index. selected < 0
// means no selection: all markers de-emphasized, no recenter directive, and
// the viewport fit to contain every marker.
func (r *Renderer) Render(selected int) (models.MapView, error) {
	if !r.ready {
		return models.MapView{}, ErrNotReady
	}

	v := models.MapView{Markers: []models.MapMarker{}, Path: [][2]float64{}}
	for i, p := range r.points {
		v.Markers = append(v.Markers, models.MapMarker{
			Number:   i + 1,
			Lat:      p.Lat,
			Lng:      p.Lng,
			Label:    p.Name,
			Selected: i == selected,
		})
		v.Path = append(v.Path, [2]float64{p.Lat, p.Lng})
	}

	if len(r.points) > 0 {
		b := models.MapBounds{
			MinLat: r.points[0].Lat, MaxLat: r.points[0].Lat,
			MinLng: r.points[0].Lng, MaxLng: r.points[0].Lng,
		}
		for _, p := range r.points[1:] {
			b.MinLat = min(b.MinLat, p.Lat)
			b.MaxLat = max(b.MaxLat, p.Lat)
			b.MinLng = min(b.MinLng, p.Lng)
			b.MaxLng = max(b.MaxLng, p.Lng)
		}
		v.Bounds = &b
	}

	if selected >= 0 && selected < len(r.points) {
		p := r.points[selected]
		v.Recenter = &models.MapRecenter{Lat: p.Lat, Lng: p.Lng, Label: p.Name}
	}

	return v, nil
}
