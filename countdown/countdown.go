// Copyright (c) 2026 Yu-Chieh Teng.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package countdown

import (
	"context"
	"time"

	"github.com/dustin/go-humanize"
)

// Breakdown is the time left until departure, decomposed into whole days and
// the remainders within day, hour and minute.
type Breakdown struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
	Reached bool
}

// Remaining computes the breakdown of target - now. At or past the target
// every field clamps to zero; there is no count-up.
func Remaining(target, now time.Time) Breakdown {
	diff := target.Sub(now).Milliseconds()
	if diff <= 0 {
		return Breakdown{Reached: true}
	}
	return Breakdown{
		Days:    int(diff / (1000 * 60 * 60 * 24)),
		Hours:   int(diff / (1000 * 60 * 60) % 24),
		Minutes: int(diff / 1000 / 60 % 60),
		Seconds: int(diff / 1000 % 60),
	}
}

// Humanize renders a rough human label for the time to target, e.g.
// "2 days from now".
func Humanize(target, now time.Time) string {
	return humanize.RelTime(target, now, "ago", "from now")
}

// Ticker invokes fn with a fresh breakdown once per second until ctx is
// cancelled. The underlying timer is released deterministically on
// cancellation.
func Ticker(ctx context.Context, target time.Time, fn func(Breakdown)) {
	t := time.NewTicker(time.Second)
	defer t.Stop()
	fn(Remaining(target, time.Now()))
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			fn(Remaining(target, now))
		}
	}
}
