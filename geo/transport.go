// Copyright (c) 2026 Yu-Chieh Teng.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package geo

import (
	"fmt"

	"github.com/ycteng/tabiplan/models"
)

// directionsURL is the Google Maps directions deep-link template.
const directionsURL = "https://www.google.com/maps/dir/?api=1&origin=%v,%v&destination=%v,%v&travelmode=%s"

var transportModes = []struct {
	mode  string
	icon  string
	label string
}{
	{models.ModeTransit, "🚃", "大眾交通"},
	{models.ModeWalking, "🚶", "步行"},
	{models.ModeDriving, "🚕", "計程車"},
	{models.ModeBicycling, "🚲", "腳踏車"},
}

// TransportOptions builds the directions deep links between two points, one
// per travel mode. Returns nil when the coordinates are identical — no
// affordance is offered for a zero-distance move.
func TransportOptions(from, to models.GeoPoint) []models.TransportOption {
	if from.SameSpot(to) {
		return nil
	}
	km := Haversine(from, to)
	opts := make([]models.TransportOption, 0, len(transportModes))
	for _, m := range transportModes {
		opt := models.TransportOption{
			Mode:  m.mode,
			Icon:  m.icon,
			Label: m.label,
			URL:   DirectionsURL(from, to, m.mode),
		}
		if m.mode == models.ModeWalking {
			opt.WalkMinutes = WalkMinutes(km)
		}
		opts = append(opts, opt)
	}
	return opts
}

// DirectionsURL builds the external maps deep link for one travel mode.
func DirectionsURL(from, to models.GeoPoint, mode string) string {
	return fmt.Sprintf(directionsURL, from.Lat, from.Lng, to.Lat, to.Lng, mode)
}
