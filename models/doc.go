// Copyright (c) 2026 Yu-Chieh Teng.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain and API types for the Tabiplan server.

# Domain Types

The static trip dataset maps onto:

  - TripInfo: trip title, travelers, date range
  - Flights: departure and return legs
  - Day / ScheduleItem: the daily schedule, days numbered 1..6
  - GeoPoint: decimal-degree coordinate with a display name
  - Hotel, Credentials: booking metadata and credential image references
  - ChecklistItem: packing-list entries, default or custom

# Identity Rules

Schedule items carry no stable id; they are identified by position within
their day. Two GeoPoints refer to the same place only when both latitude
and longitude match exactly.

# Request/Response Types

Each endpoint has a dedicated request or response struct with snake_case
JSON tags; ChecklistItem keeps the historical camelCase "isCustom" tag for
compatibility with previously persisted lists.
*/
package models
