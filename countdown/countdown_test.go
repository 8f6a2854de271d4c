// Copyright (c) 2026 Yu-Chieh Teng.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package countdown

import (
	"context"
	"testing"
	"time"
)

func TestRemaining(t *testing.T) {
	target := time.Date(2026, 1, 11, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want Breakdown
	}{
		{
			name: "two days out",
			now:  time.Date(2026, 1, 9, 8, 0, 0, 0, time.UTC),
			want: Breakdown{Days: 2},
		},
		{
			name: "mixed remainders",
			now:  time.Date(2026, 1, 9, 6, 58, 30, 0, time.UTC),
			want: Breakdown{Days: 2, Hours: 1, Minutes: 1, Seconds: 30},
		},
		{
			name: "under a minute",
			now:  time.Date(2026, 1, 11, 7, 59, 15, 0, time.UTC),
			want: Breakdown{Seconds: 45},
		},
		{
			name: "at the target",
			now:  target,
			want: Breakdown{Reached: true},
		},
		{
			name: "past the target stays zero",
			now:  target.Add(90 * time.Hour),
			want: Breakdown{Reached: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Remaining(target, tt.now); got != tt.want {
				t.Errorf("Remaining = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRemainingNeverNegative(t *testing.T) {
	target := time.Date(2026, 1, 11, 8, 0, 0, 0, time.UTC)

	// Repeated ticks after the target keep reporting zeros.
	for i := 0; i < 5; i++ {
		now := target.Add(time.Duration(i) * time.Second)
		got := Remaining(target, now)
		if got.Days != 0 || got.Hours != 0 || got.Minutes != 0 || got.Seconds != 0 {
			t.Errorf("tick %d: Remaining = %+v, want zeros", i, got)
		}
		if !got.Reached {
			t.Errorf("tick %d: Reached = false", i)
		}
	}
}

func TestTickerStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := make(chan Breakdown, 8)
	done := make(chan struct{})
	go func() {
		Ticker(ctx, time.Now().Add(time.Hour), func(b Breakdown) {
			select {
			case calls <- b:
			default:
			}
		})
		close(done)
	}()

	// The first callback fires immediately, before any tick.
	select {
	case <-calls:
	case <-time.After(time.Second):
		t.Fatal("no initial callback")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Ticker did not stop after cancellation")
	}
}
