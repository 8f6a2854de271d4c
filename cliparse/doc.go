// Copyright (c) 2026 Yu-Chieh Teng.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line and environment configuration.

# Usage

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Settings

Every flag falls back to an environment variable:

  - -p / PORT: server port (default 3323)
  - -t / DATABASE_TYPE: sqlite (default) or postgres
  - -d / DATABASE_URL: database connection string; defaults to a local
    sqlite file for the sqlite type, required for postgres
  - -weather-url / WEATHER_BASE_URL: forecast API base URL override,
    used by tests to point at a stub server
*/
package cliparse
