// Copyright (c) 2026 Yu-Chieh Teng.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ycteng/tabiplan/models"
	"github.com/ycteng/tabiplan/testutil"
)

func TestGetCountdown(t *testing.T) {
	data := testutil.LoadTestData(t)
	h := NewTripHandler(data)

	// Two days before departure, frozen.
	h.now = func() time.Time {
		return data.DepartureTime().Add(-48 * time.Hour)
	}

	req := testutil.MakeRequest("GET", "/trip/countdown", nil, nil)
	w := httptest.NewRecorder()
	h.GetCountdown(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.CountdownResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Days != 2 || resp.Hours != 0 || resp.Minutes != 0 || resp.Seconds != 0 {
		t.Errorf("countdown = %+v, want exactly 2 days", resp)
	}
	if resp.Reached {
		t.Error("countdown reached before departure")
	}
	if resp.Human == "" {
		t.Error("missing human-readable countdown")
	}
}

func TestGetCountdownReached(t *testing.T) {
	data := testutil.LoadTestData(t)
	h := NewTripHandler(data)
	h.now = func() time.Time {
		return data.DepartureTime().Add(time.Hour)
	}

	req := testutil.MakeRequest("GET", "/trip/countdown", nil, nil)
	w := httptest.NewRecorder()
	h.GetCountdown(w, req)

	var resp models.CountdownResponse
	testutil.AssertJSON(t, w, &resp)

	if !resp.Reached {
		t.Error("countdown not reached after departure")
	}
	if resp.Days != 0 || resp.Hours != 0 || resp.Minutes != 0 || resp.Seconds != 0 {
		t.Errorf("countdown = %+v, want zeroes after departure", resp)
	}
}

func TestGetTrip(t *testing.T) {
	data := testutil.LoadTestData(t)
	h := NewTripHandler(data)

	req := testutil.MakeRequest("GET", "/trip", nil, nil)
	w := httptest.NewRecorder()
	h.GetTrip(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.TripResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Trip.Title == "" {
		t.Error("missing trip title")
	}
	if resp.Trip.Dates.Start != data.Trip.Dates.Start {
		t.Errorf("trip start = %q, want %q", resp.Trip.Dates.Start, data.Trip.Dates.Start)
	}
}

func TestGetFlights(t *testing.T) {
	data := testutil.LoadTestData(t)
	h := NewTripHandler(data)

	req := testutil.MakeRequest("GET", "/trip/flights", nil, nil)
	w := httptest.NewRecorder()
	h.GetFlights(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.Flights
	testutil.AssertJSON(t, w, &resp)

	if resp.Departure.FlightNo == "" || resp.Return.FlightNo == "" {
		t.Errorf("flights = %+v, want both legs populated", resp)
	}
}

func TestGetHotels(t *testing.T) {
	data := testutil.LoadTestData(t)
	h := NewTripHandler(data)

	req := testutil.MakeRequest("GET", "/trip/hotels", nil, nil)
	w := httptest.NewRecorder()
	h.GetHotels(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp []models.Hotel
	testutil.AssertJSON(t, w, &resp)

	if len(resp) != len(data.Hotels) {
		t.Errorf("got %d hotels, want %d", len(resp), len(data.Hotels))
	}
}

func TestGetCredentials(t *testing.T) {
	data := testutil.LoadTestData(t)
	h := NewTripHandler(data)

	req := testutil.MakeRequest("GET", "/trip/credentials", nil, nil)
	w := httptest.NewRecorder()
	h.GetCredentials(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
}
