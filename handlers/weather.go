// Copyright (c) 2026 Yu-Chieh Teng.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/ycteng/tabiplan/middleware"
	"github.com/ycteng/tabiplan/weather"
)

type WeatherHandler struct {
	client *weather.Client
}

func NewWeatherHandler(client *weather.Client) *WeatherHandler {
	return &WeatherHandler{client: client}
}

// GetWeather handles GET /weather
// Always responds 200: unreachable forecasts degrade to the static
// estimates, never to an error.
func (h *WeatherHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	reports := h.client.Reports(r.Context())
	middleware.JSONResponse(w, http.StatusOK, reports)
}
