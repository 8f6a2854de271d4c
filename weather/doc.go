// Copyright (c) 2026 Yu-Chieh Teng.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package weather fetches one-day forecasts for the trip's two locations.

The client queries the Open-Meteo forecast API once per location (Tokyo and
Karuizawa), requesting daily max/min temperature and a WMO weather code,
which is mapped through a fixed table to an emoji + label pair with an
unknown fallback.

Failures are absorbed, not surfaced: any fetch or decode error produces the
location's static estimate flagged Estimated, with a diagnostic log line.
There is no retry. The base URL is injectable for tests.
*/
package weather
