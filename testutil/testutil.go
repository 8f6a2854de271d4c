// Copyright (c) 2026 Yu-Chieh Teng.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/ycteng/tabiplan/cliparse"
	"github.com/ycteng/tabiplan/db"
	"github.com/ycteng/tabiplan/models"
	"github.com/ycteng/tabiplan/tripdata"
)

// SetupTestDB creates a fresh in-memory sqlite database with the schema.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// The pool must stay on one connection or :memory: databases diverge.
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })
	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3323,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
	}
}

// LoadTestData loads the embedded trip dataset, failing the test on error.
func LoadTestData(t *testing.T) *tripdata.TripData {
	t.Helper()

	data, err := tripdata.Load()
	if err != nil {
		t.Fatalf("Failed to load trip data: %v", err)
	}
	return data
}

// GeoPoint is shorthand for building test coordinates.
func GeoPoint(lat, lng float64, name string) *models.GeoPoint {
	return &models.GeoPoint{Lat: lat, Lng: lng, Name: name}
}

// LocatedItem builds a schedule item carrying a geographic point.
func LocatedItem(title string, lat, lng float64) models.ScheduleItem {
	return models.ScheduleItem{
		Title:    title,
		Location: GeoPoint(lat, lng, title),
	}
}

// PlainItem builds a schedule item with no geographic point.
func PlainItem(title string) models.ScheduleItem {
	return models.ScheduleItem{Title: title}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
