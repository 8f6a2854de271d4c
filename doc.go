// Copyright (c) 2026 Yu-Chieh Teng.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Tabiplan API server.

Tabiplan is a personal travel-itinerary service for a 6-day Tokyo/Karuizawa
family trip: daily schedules with an interactive route map, a persisted
packing checklist, a departure countdown and live weather with static
fallbacks.

# Starting the Server

The server runs on a local sqlite file by default:

	go run .

Or against postgres:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

# Configuration

Optional settings (flags or environment, see cliparse):

  - PORT (-p): server port (default: 3323)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - DATABASE_URL (-d): connection string (default: file:tabiplan.db)
  - WEATHER_BASE_URL (-weather-url): forecast API base URL override

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (trip, schedule, checklist, weather)
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: domain and request/response types
  - tripdata: embedded static trip dataset
  - geo: schedule/location correlation, haversine, directions links
  - selection: shared list/map selection coordinator
  - mapview: route map render state
  - checklist: persisted packing list with legacy migration
  - countdown, weather: departure countdown and forecast client
  - db, cliparse: schema creation and configuration parsing

See package documentation for each component.
*/
package main
