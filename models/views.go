// Copyright (c) 2026 Yu-Chieh Teng.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Map view types

// MapMarker is one numbered map pin. Number is the 1-based position in the
// located subsequence. At most one marker is Selected.
type MapMarker struct {
	Number   int     `json:"number"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Label    string  `json:"label"`
	Selected bool    `json:"selected"`
}

// MapBounds is the rectangle fitting all markers, for the initial viewport.
type MapBounds struct {
	MinLat float64 `json:"min_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLat float64 `json:"max_lat"`
	MaxLng float64 `json:"max_lng"`
}

// MapRecenter directs the viewport to pan to a point without changing zoom
// and open its label callout.
type MapRecenter struct {
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Label string  `json:"label"`
}

// MapView is the complete render state for the trip map. Path connects the
// markers in sequence order.
type MapView struct {
	Markers  []MapMarker  `json:"markers"`
	Path     [][2]float64 `json:"path"`
	Bounds   *MapBounds   `json:"bounds,omitempty"`
	Recenter *MapRecenter `json:"recenter,omitempty"`
}

// Schedule view types

type DaySummary struct {
	Day          int    `json:"day"`
	Date         string `json:"date"`
	Title        string `json:"title"`
	Icon         string `json:"icon"`
	Theme        string `json:"theme"`
	ItemCount    int    `json:"item_count"`
	LocatedCount int    `json:"located_count"`
}

type DayResponse struct {
	Day      Day                `json:"day"`
	PrevDay  *int               `json:"prev_day,omitempty"`
	NextDay  *int               `json:"next_day,omitempty"`
	Map      MapView            `json:"map"`
	Segments []TransportSegment `json:"segments"`
}

// SelectionResponse is the shared selection state rendered for both views.
// ScrollTo asks the list view to center the selected item.
type SelectionResponse struct {
	SelectedIndex *int    `json:"selected_index"`
	LocatedIndex  *int    `json:"located_index"`
	ScrollTo      *int    `json:"scroll_to,omitempty"`
	Map           MapView `json:"map"`
}

type TripResponse struct {
	Trip      TripInfo          `json:"trip"`
	Countdown CountdownResponse `json:"countdown"`
}
