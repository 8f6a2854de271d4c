// Copyright (c) 2026 Yu-Chieh Teng.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package selection

import (
	"sync"

	"github.com/ycteng/tabiplan/geo"
)

// Coordinator holds the single selected full-schedule index shared by the
// list view and the map view. Both views read the same value; a click in
// either view goes through one of the two mutators.
type Coordinator struct {
	mu        sync.Mutex
	route     *geo.Route
	selected  int
	hasSelect bool
	subs      []func(int)
}

// NewCoordinator creates a coordinator with no selection.
func NewCoordinator(route *geo.Route) *Coordinator {
	return &Coordinator{route: route}
}

// SelectFull sets the selection to full-schedule index i (a list-view
// click). Clicks on items without a geographic point do not clear or alter
// the previous selection; changed reports whether the selection was taken.
func (c *Coordinator) SelectFull(i int) (changed bool) {
	if _, ok := c.route.LocatedIndex(i); !ok {
		return false
	}
	c.mu.Lock()
	c.selected = i
	c.hasSelect = true
	subs := make([]func(int), len(c.subs))
	copy(subs, c.subs)
	c.mu.Unlock()
	for _, fn := range subs {
		fn(i)
	}
	return true
}

// SelectLocated resolves a map-marker index j to its full-schedule index and
// selects it. A j with no inverse mapping is a no-op: the previous selection
// stays in place.
func (c *Coordinator) SelectLocated(j int) (changed bool) {
	i, ok := c.route.FullIndex(j)
	if !ok {
		return false
	}
	return c.SelectFull(i)
}

// Selected returns the current full-schedule selection.
func (c *Coordinator) Selected() (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected, c.hasSelect
}

// LocatedSelected derives the map-view selection through the forward map.
// ok is false when nothing is selected.
func (c *Coordinator) LocatedSelected() (int, bool) {
	c.mu.Lock()
	i, has := c.selected, c.hasSelect
	c.mu.Unlock()
	if !has {
		return 0, false
	}
	return c.route.LocatedIndex(i)
}

// Subscribe registers fn to be called with the new full index after every
// selection change. Notifications run in subscription order.
func (c *Coordinator) Subscribe(fn func(fullIndex int)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = append(c.subs, fn)
}
