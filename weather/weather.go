// Copyright (c) 2026 Yu-Chieh Teng.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/ycteng/tabiplan/models"
)

// DefaultBaseURL is the Open-Meteo forecast endpoint.
const DefaultBaseURL = "https://api.open-meteo.com"

// Location is one of the fixed forecast targets.
type Location struct {
	Name     string
	Lat      float64
	Lon      float64
	Fallback models.WeatherReport
}

// Locations are the two places the trip visits. The fallback values are the
// static estimates shown when the forecast service is unreachable.
var Locations = []Location{
	{
		Name: "東京", Lat: 35.6762, Lon: 139.6503,
		Fallback: models.WeatherReport{
			Location: "東京", TempMin: 3, TempMax: 10,
			Icon: "🌡️", Description: "預估", Estimated: true,
		},
	},
	{
		Name: "輕井澤", Lat: 36.3482, Lon: 138.597,
		Fallback: models.WeatherReport{
			Location: "輕井澤", TempMin: -6, TempMax: 2,
			Icon: "❄️", Description: "預估", Estimated: true,
		},
	},
}

type forecastResponse struct {
	Daily struct {
		TemperatureMax []float64 `json:"temperature_2m_max"`
		TemperatureMin []float64 `json:"temperature_2m_min"`
		WeatherCode    []int     `json:"weather_code"`
	} `json:"daily"`
}

// Client fetches one-day forecasts from Open-Meteo.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Reports returns one report per fixed location. Fetch failures never
// surface as errors: the affected location falls back to its static
// estimate, flagged Estimated. There is no retry.
func (c *Client) Reports(ctx context.Context) []models.WeatherReport {
	reports := make([]models.WeatherReport, 0, len(Locations))
	for _, loc := range Locations {
		report, err := c.fetch(ctx, loc)
		if err != nil {
			slog.Error("weather fetch failed", "location", loc.Name, "error", err)
			report = loc.Fallback
		}
		reports = append(reports, report)
	}
	return reports
}

func (c *Client) fetch(ctx context.Context, loc Location) (models.WeatherReport, error) {
	url := fmt.Sprintf(
		"%s/v1/forecast?latitude=%v&longitude=%v&daily=temperature_2m_max,temperature_2m_min,weather_code&timezone=Asia/Tokyo&forecast_days=1",
		c.baseURL, loc.Lat, loc.Lon,
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.WeatherReport{}, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return models.WeatherReport{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return models.WeatherReport{}, fmt.Errorf("forecast API returned %d", resp.StatusCode)
	}

	var data forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return models.WeatherReport{}, fmt.Errorf("failed to decode forecast: %w", err)
	}
	if len(data.Daily.TemperatureMax) == 0 || len(data.Daily.TemperatureMin) == 0 || len(data.Daily.WeatherCode) == 0 {
		return models.WeatherReport{}, fmt.Errorf("forecast response missing daily values")
	}

	cond := Condition(data.Daily.WeatherCode[0])
	return models.WeatherReport{
		Location:    loc.Name,
		TempMin:     int(math.Round(data.Daily.TemperatureMin[0])),
		TempMax:     int(math.Round(data.Daily.TemperatureMax[0])),
		Icon:        cond.Icon,
		Description: cond.Description,
	}, nil
}
