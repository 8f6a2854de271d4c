// Copyright (c) 2026 Yu-Chieh Teng.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package countdown computes the time left until the trip departs.

Remaining decomposes the delta to the target instant into days, hours,
minutes and seconds via integer division and modulo on milliseconds,
clamping everything to zero once the target has passed. Ticker drives a
1-second refresh cadence and stops cleanly when its context is cancelled.
*/
package countdown
