// Package ticker pairs a countdown timer with a time.Ticker so callers can
// redraw remaining time at a fixed interval and pause both together.
package ticker

import (
	"math"
	"time"

	"go.sudomsg.com/counters"
)

// RenderTicker wraps a time.Ticker and a CountdownTimer. Pausing stops the
// tick stream and freezes the countdown; resuming restarts both.
// If the interval is 0, the ticker is created in a stopped state.
type RenderTicker struct {
	*time.Ticker
	countdown *counters.CountdownTimer
	interval  time.Duration
}

// New creates a RenderTicker over cd that fires every interval once started.
// The tick stream stays stopped until Start.
func New(cd *counters.CountdownTimer, interval time.Duration) *RenderTicker {
	ret := &RenderTicker{countdown: cd, interval: interval}
	ret.Ticker = time.NewTicker(math.MaxInt64)
	ret.Ticker.Stop()

	return ret
}

// Start starts the countdown and the tick stream. No-op on the countdown if
// it is already started.
func (t *RenderTicker) Start() {
	t.countdown.Start()
	t.Reset(t.interval)
}

// Reset sets the tick interval and restarts the tick stream.
// If the interval is 0, the tick stream is stopped.
func (t *RenderTicker) Reset(interval time.Duration) {
	t.interval = interval
	if t.interval == 0 {
		t.Stop()
	} else {
		t.Ticker.Reset(interval)
	}
}

// Pause freezes the countdown and stops the tick stream.
func (t *RenderTicker) Pause() {
	t.countdown.Pause()
	t.Stop()
}

// Resume resumes the countdown and restarts the tick stream with its last
// set interval.
func (t *RenderTicker) Resume() {
	t.countdown.Resume()
	t.Reset(t.GetInterval())
}

// GetInterval returns the current tick interval.
func (t *RenderTicker) GetInterval() time.Duration {
	return t.interval
}

// Remaining reports the countdown's remaining time.
func (t *RenderTicker) Remaining() time.Duration {
	return t.countdown.Remaining()
}

// Expired reports whether the countdown has expired.
func (t *RenderTicker) Expired() bool {
	return t.countdown.Expired()
}
