// Copyright (c) 2026 Yu-Chieh Teng.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Tabiplan API.

# Handler Types

Each handler is a struct with its dependencies injected via a constructor:

  - TripHandler: trip summary, countdown, flights, hotels, credentials
  - ScheduleHandler: day schedules, route maps, selection sessions
  - ChecklistHandler: packing-list reads and mutations
  - WeatherHandler: forecast with static-estimate fallback

# Schedule Sessions

The schedule list and the route map share one selection per browsing
context. A client creates a session for a day and sends its id on
selection calls:

	POST /days/{day}/sessions          → session_id
	POST /days/{day}/selection         → select by full_index or marker_index
	GET  /days/{day}/selection         → current state for both views

Selection calls require the X-Session-ID header. Selecting a marker index
with no mapping is a silent no-op; the previous selection stays. Day numbers
outside 1..6 return 404 on every schedule route.

# Checklist

Mutations persist the complete list on every call and return the refreshed
list with per-category grouping and progress. A full reset is destructive
and demands {"confirm": true}.
*/
package handlers
