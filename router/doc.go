// Copyright (c) 2026 Yu-Chieh Teng.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes for the Tabiplan API.

NewRouter wires every handler onto a stdlib ServeMux using Go 1.22+ method
and wildcard routing:

	GET  /trip, /trip/countdown, /trip/flights, /trip/hotels, /trip/credentials
	GET  /days, /days/{day}
	POST /days/{day}/sessions
	GET/POST /days/{day}/selection
	GET/POST /checklist, POST /checklist/{id}/toggle, DELETE /checklist/{id}
	POST /checklist/reset-checks, /checklist/reset
	GET  /weather, /health

All routes are wrapped with request logging middleware.
*/
package router
