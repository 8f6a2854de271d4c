// Copyright (c) 2026 Yu-Chieh Teng.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package selection keeps the schedule list and the trip map in sync.

A Coordinator is the single source of truth for "which schedule item is
selected". The list view selects by full index; the map view selects by
marker (located) index, resolved through the route's inverse mapping.
Selection only ever moves to geo-bearing items: a click on an item without
a location, or on a marker index with no mapping, leaves the previous
selection untouched.

Views observe changes via Subscribe rather than knowing about each other:

	coord := selection.NewCoordinator(route)
	coord.Subscribe(func(i int) { ... re-render ... })
	coord.SelectFull(3)

All methods are safe for concurrent use.
*/
package selection
