// Copyright (c) 2026 Yu-Chieh Teng.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"time"

	"github.com/ycteng/tabiplan/countdown"
	"github.com/ycteng/tabiplan/middleware"
	"github.com/ycteng/tabiplan/models"
	"github.com/ycteng/tabiplan/tripdata"
)

type TripHandler struct {
	data *tripdata.TripData
	now  func() time.Time
}

func NewTripHandler(data *tripdata.TripData) *TripHandler {
	return &TripHandler{data: data, now: time.Now}
}

// GetTrip handles GET /trip
func (h *TripHandler) GetTrip(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.TripResponse{
		Trip:      h.data.Trip,
		Countdown: h.countdown(),
	})
}

// GetCountdown handles GET /trip/countdown
func (h *TripHandler) GetCountdown(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.countdown())
}

// GetFlights handles GET /trip/flights
func (h *TripHandler) GetFlights(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.data.Flights)
}

// GetHotels handles GET /trip/hotels
func (h *TripHandler) GetHotels(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.data.Hotels)
}

// GetCredentials handles GET /trip/credentials
func (h *TripHandler) GetCredentials(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.data.Credentials)
}

func (h *TripHandler) countdown() models.CountdownResponse {
	target := h.data.DepartureTime()
	now := h.now()
	b := countdown.Remaining(target, now)
	return models.CountdownResponse{
		Days:    b.Days,
		Hours:   b.Hours,
		Minutes: b.Minutes,
		Seconds: b.Seconds,
		Reached: b.Reached,
		Human:   countdown.Humanize(target, now),
	}
}
