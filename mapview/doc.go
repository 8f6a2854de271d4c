// Copyright (c) 2026 Yu-Chieh Teng.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package mapview builds the render state for the trip route map.

The Renderer turns the located-point subsequence into numbered markers, a
dashed connecting path in sequence order, a fit-bounds rectangle for the
initial viewport, and a recenter directive when a marker is selected.

The Renderer has an explicit two-state lifecycle: it is created not-ready and
rejects view queries with ErrNotReady until SetPoints is called. Marker
clicks report the located index back to the selection coordinator; this
package never mutates selection state itself.
*/
package mapview
