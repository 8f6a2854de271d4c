// Copyright (c) 2026 Yu-Chieh Teng.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/ycteng/tabiplan/checklist"
	"github.com/ycteng/tabiplan/cliparse"
	"github.com/ycteng/tabiplan/handlers"
	"github.com/ycteng/tabiplan/middleware"
	"github.com/ycteng/tabiplan/tripdata"
	"github.com/ycteng/tabiplan/weather"
)

func NewRouter(data *tripdata.TripData, store *checklist.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	tripHandler := handlers.NewTripHandler(data)
	scheduleHandler := handlers.NewScheduleHandler(data)
	checklistHandler := handlers.NewChecklistHandler(store)
	weatherHandler := handlers.NewWeatherHandler(weather.NewClient(cfg.WeatherBaseURL))

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Trip metadata
	mux.HandleFunc("GET /trip", middleware.WithLogging(tripHandler.GetTrip))
	mux.HandleFunc("GET /trip/countdown", middleware.WithLogging(tripHandler.GetCountdown))
	mux.HandleFunc("GET /trip/flights", middleware.WithLogging(tripHandler.GetFlights))
	mux.HandleFunc("GET /trip/hotels", middleware.WithLogging(tripHandler.GetHotels))
	mux.HandleFunc("GET /trip/credentials", middleware.WithLogging(tripHandler.GetCredentials))

	// Daily schedule and route map
	mux.HandleFunc("GET /days", middleware.WithLogging(scheduleHandler.ListDays))
	mux.HandleFunc("GET /days/{day}", middleware.WithLogging(scheduleHandler.GetDay))
	mux.HandleFunc("POST /days/{day}/sessions", middleware.WithLogging(scheduleHandler.CreateSession))
	mux.HandleFunc("GET /days/{day}/selection", middleware.WithLogging(scheduleHandler.GetSelection))
	mux.HandleFunc("POST /days/{day}/selection", middleware.WithLogging(scheduleHandler.Select))

	// Packing checklist
	mux.HandleFunc("GET /checklist", middleware.WithLogging(checklistHandler.GetChecklist))
	mux.HandleFunc("POST /checklist", middleware.WithLogging(checklistHandler.AddItem))
	mux.HandleFunc("POST /checklist/{id}/toggle", middleware.WithLogging(checklistHandler.Toggle))
	mux.HandleFunc("DELETE /checklist/{id}", middleware.WithLogging(checklistHandler.DeleteItem))
	mux.HandleFunc("POST /checklist/reset-checks", middleware.WithLogging(checklistHandler.ResetChecks))
	mux.HandleFunc("POST /checklist/reset", middleware.WithLogging(checklistHandler.FullReset))

	// Weather
	mux.HandleFunc("GET /weather", middleware.WithLogging(weatherHandler.GetWeather))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("tabiplan API v1"))
	})

	return mux
}
