// Copyright (c) 2026 Yu-Chieh Teng.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ycteng/tabiplan/models"
)

func TestJSONResponse(t *testing.T) {
	w := httptest.NewRecorder()
	JSONResponse(w, http.StatusCreated, map[string]string{"hello": "world"})

	if w.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d", w.Code, http.StatusCreated)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["hello"] != "world" {
		t.Errorf("body = %v", body)
	}
}

func TestErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()
	ErrorResponse(w, http.StatusNotFound, "Day not found")

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}

	var body models.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.Error != "Not Found" || body.Message != "Day not found" {
		t.Errorf("body = %+v", body)
	}
}

func TestParseJSONBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"confirm":true}`))

	var parsed models.FullResetRequest
	if err := ParseJSONBody(req, &parsed); err != nil {
		t.Fatalf("ParseJSONBody error = %v", err)
	}
	if !parsed.Confirm {
		t.Error("confirm flag not parsed")
	}

	req = httptest.NewRequest("POST", "/", strings.NewReader("not json"))
	if err := ParseJSONBody(req, &parsed); err == nil {
		t.Error("ParseJSONBody accepted invalid JSON")
	}
}

func TestWithLogging(t *testing.T) {
	called := false
	handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest("GET", "/trip", nil))

	if !called {
		t.Error("wrapped handler not invoked")
	}
	if w.Code != http.StatusTeapot {
		t.Errorf("status = %d, want passthrough", w.Code)
	}
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/trip", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	CORS(next).ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Allow-Origin = %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Headers"); !strings.Contains(got, "X-Session-ID") {
		t.Errorf("Allow-Headers = %q, want X-Session-ID allowed", got)
	}

	// Preflight stops at the middleware.
	handled := false
	preflight := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { handled = true })
	req = httptest.NewRequest("OPTIONS", "/trip", nil)
	w = httptest.NewRecorder()
	CORS(preflight).ServeHTTP(w, req)

	if handled {
		t.Error("preflight request reached the wrapped handler")
	}
	if w.Code != http.StatusOK {
		t.Errorf("preflight status = %d", w.Code)
	}
}
