// Copyright (c) 2026 Yu-Chieh Teng.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package geo correlates schedule items with their geographic points and builds
external navigation links.

# Route Correlation

A Route is built from a day's ordered items:

	route := geo.NewRoute(day.Items)

It exposes the located subsequence (items carrying a GeoPoint, relative order
preserved) and a bidirectional index mapping:

  - LocatedIndex(fullIdx) — defined only where the item has a location
  - FullIndex(locatedIdx) — total over the subsequence

The mapping is a partial bijection: FullIndex(LocatedIndex(i)) == i for every
located item, and LocatedIndex(FullIndex(j)) == j for every j in range.

# Distance and Transport

Haversine computes great-circle distance on a 6371 km sphere. Between
consecutive located items with differing coordinates, Route.Segments offers
one transport affordance with deep links for four travel modes (transit,
walking, driving, bicycling); walking carries an estimated duration at
5 km/h. Identical coordinates produce no segment.
*/
package geo
