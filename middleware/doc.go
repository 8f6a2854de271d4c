// Copyright (c) 2026 Yu-Chieh Teng.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

# Request Logging

WithLogging wraps a handler with structured start/completion log lines,
tagging each request with a generated uuid:

	mux.HandleFunc("GET /trip", middleware.WithLogging(h.GetTrip))

# JSON Helpers

JSONResponse and ErrorResponse write JSON bodies with the right headers;
ParseJSONBody decodes request bodies. ErrorResponse always produces the
models.ErrorResponse shape.

# CORS

CORS reflects the request origin and handles OPTIONS preflight, allowing the
static frontend to be served from a different origin in development.
*/
package middleware
