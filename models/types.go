// Copyright (c) 2026 Yu-Chieh Teng.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Day theme constants
const (
	ThemeArrival   = "arrival"
	ThemeSnow      = "snow"
	ThemeNature    = "nature"
	ThemeCity      = "city"
	ThemeFun       = "fun"
	ThemeDeparture = "departure"
)

// Travel modes for directions deep links
const (
	ModeTransit   = "transit"
	ModeWalking   = "walking"
	ModeDriving   = "driving"
	ModeBicycling = "bicycling"
)

// Domain types

// GeoPoint is a geographic coordinate in decimal degrees with a display name.
// Two points refer to the same place only when both Lat and Lng match exactly.
type GeoPoint struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Name string  `json:"name"`
}

// SameSpot reports whether p and q have identical coordinates.
func (p GeoPoint) SameSpot(q GeoPoint) bool {
	return p.Lat == q.Lat && p.Lng == q.Lng
}

type Link struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// ScheduleItem is one entry in a day's ordered schedule. Items have no stable
// id; they are identified by position within the day.
type ScheduleItem struct {
	Time         string    `json:"time"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Details      []string  `json:"details"`
	Type         string    `json:"type,omitempty"`
	Link         *Link     `json:"link,omitempty"`
	Image        string    `json:"image,omitempty"`
	ImageCaption string    `json:"image_caption,omitempty"`
	MapURL       string    `json:"map_url,omitempty"`
	Location     *GeoPoint `json:"location,omitempty"`
}

// Day is one day of the trip, numbered 1..6. Loaded once from the static
// dataset and never mutated at runtime.
type Day struct {
	Day   int            `json:"day"`
	Date  string         `json:"date"`
	Title string         `json:"title"`
	Icon  string         `json:"icon"`
	Theme string         `json:"theme"`
	Items []ScheduleItem `json:"items"`
}

type TripDates struct {
	Start   string `json:"start"`
	End     string `json:"end"`
	Display string `json:"display"`
}

type TripInfo struct {
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle"`
	Travelers string    `json:"travelers"`
	Dates     TripDates `json:"dates"`
}

type FlightLeg struct {
	Date      string `json:"date"`
	FlightNo  string `json:"flight_no"`
	From      string `json:"from"`
	To        string `json:"to"`
	Departure string `json:"departure"`
	Arrival   string `json:"arrival"`
}

type Flights struct {
	Departure FlightLeg `json:"departure"`
	Return    FlightLeg `json:"return"`
}

type Hotel struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Dates     string `json:"dates"`
	Transport string `json:"transport"`
	MapURL    string `json:"map_url"`
}

// Credential images for border control, hotel vouchers and rail bookings.

type CredentialImage struct {
	Src     string `json:"src"`
	Caption string `json:"caption,omitempty"`
}

type CredentialSection struct {
	Title  string            `json:"title"`
	Images []CredentialImage `json:"images"`
}

type HotelVoucher struct {
	Name  string `json:"name"`
	Dates string `json:"dates"`
	Image string `json:"image"`
}

type RailBooking struct {
	Date          string   `json:"date"`
	BookingNumber string   `json:"booking_number"`
	Route         string   `json:"route"`
	Passengers    string   `json:"passengers"`
	Images        []string `json:"images"`
}

type RailBookings struct {
	Outbound RailBooking `json:"outbound"`
	Inbound  RailBooking `json:"inbound"`
}

type Credentials struct {
	VJW        CredentialSection `json:"vjw"`
	Hotels     []HotelVoucher    `json:"hotels"`
	Shinkansen RailBookings      `json:"shinkansen"`
}

// ChecklistItem is one packing-list entry. Default entries come from the
// static dataset; custom entries are user-added and deletable.
type ChecklistItem struct {
	ID       int    `json:"id"`
	Category string `json:"category"`
	Item     string `json:"item"`
	Checked  bool   `json:"checked"`
	IsCustom bool   `json:"isCustom"`
}

// Request types

type AddChecklistItemRequest struct {
	Category string `json:"category"`
	Item     string `json:"item"`
}

type FullResetRequest struct {
	Confirm bool `json:"confirm"`
}

// SelectRequest updates the shared selection for a session. Exactly one of
// the two indexes should be set.
type SelectRequest struct {
	FullIndex   *int `json:"full_index,omitempty"`
	MarkerIndex *int `json:"marker_index,omitempty"`
}

// Response types

type CreateSessionResponse struct {
	SessionID string `json:"session_id"`
}

type CountdownResponse struct {
	Days    int    `json:"days"`
	Hours   int    `json:"hours"`
	Minutes int    `json:"minutes"`
	Seconds int    `json:"seconds"`
	Reached bool   `json:"reached"`
	Human   string `json:"human"`
}

type WeatherReport struct {
	Location    string `json:"location"`
	TempMin     int    `json:"temp_min"`
	TempMax     int    `json:"temp_max"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Estimated   bool   `json:"estimated"`
}

type TransportOption struct {
	Mode        string `json:"mode"`
	Icon        string `json:"icon"`
	Label       string `json:"label"`
	URL         string `json:"url"`
	WalkMinutes int    `json:"walk_minutes,omitempty"`
}

// TransportSegment is the affordance rendered between two consecutive located
// schedule items with differing coordinates.
type TransportSegment struct {
	AfterFullIndex int               `json:"after_full_index"`
	From           GeoPoint          `json:"from"`
	To             GeoPoint          `json:"to"`
	DistanceKm     float64           `json:"distance_km"`
	Distance       string            `json:"distance"`
	Options        []TransportOption `json:"options"`
}

type ChecklistProgress struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
	Percent   int `json:"percent"`
}

type ChecklistResponse struct {
	Items      []ChecklistItem   `json:"items"`
	Categories []string          `json:"categories"`
	Progress   ChecklistProgress `json:"progress"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
