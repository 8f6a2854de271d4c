// Copyright (c) 2026 Yu-Chieh Teng.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package geo

import (
	"github.com/ycteng/tabiplan/models"
)

// Route correlates a day's ordered schedule with the compacted subsequence of
// items that carry a geographic point. It is rebuilt wholesale from the input
// slice; there is no incremental mutation.
type Route struct {
	points    []models.GeoPoint
	fullToLoc map[int]int
	locToFull []int
	segments  []models.TransportSegment
}

// NewRoute builds the correlation for items. A day with no located items
// yields an empty route (zero points, empty maps).
func NewRoute(items []models.ScheduleItem) *Route {
	r := &Route{fullToLoc: make(map[int]int)}
	for i, item := range items {
		if item.Location == nil {
			continue
		}
		r.fullToLoc[i] = len(r.points)
		r.locToFull = append(r.locToFull, i)
		r.points = append(r.points, *item.Location)
	}
	r.segments = buildSegments(items, r)
	return r
}

// Points returns the located subsequence in schedule order.
func (r *Route) Points() []models.GeoPoint {
	return r.points
}

// Len returns the number of located items.
func (r *Route) Len() int {
	return len(r.points)
}

// LocatedIndex maps a full-schedule index to its position in the located
// subsequence. ok is false when the item at full index i has no location.
func (r *Route) LocatedIndex(i int) (int, bool) {
	j, ok := r.fullToLoc[i]
	return j, ok
}

// FullIndex maps a located-subsequence index back to the full schedule.
// ok is false when j is out of range.
func (r *Route) FullIndex(j int) (int, bool) {
	if j < 0 || j >= len(r.locToFull) {
		return 0, false
	}
	return r.locToFull[j], true
}

// Segments returns the transport affordances between consecutive located
// items. Consecutive located items sharing identical coordinates produce no
// segment.
func (r *Route) Segments() []models.TransportSegment {
	return r.segments
}

func buildSegments(items []models.ScheduleItem, r *Route) []models.TransportSegment {
	segments := []models.TransportSegment{}
	for i, item := range items {
		if item.Location == nil || i+1 >= len(items) {
			continue
		}
		next := items[i+1]
		if next.Location == nil {
			continue
		}
		if item.Location.SameSpot(*next.Location) {
			// Zero-distance move, no affordance.
			continue
		}
		from, to := *item.Location, *next.Location
		km := Haversine(from, to)
		segments = append(segments, models.TransportSegment{
			AfterFullIndex: i,
			From:           from,
			To:             to,
			DistanceKm:     km,
			Distance:       FormatDistance(km),
			Options:        TransportOptions(from, to),
		})
	}
	return segments
}
