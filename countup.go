// Package counters provides pause-aware countup and countdown timers built
// on wall-clock instants.
package counters

import "time"

type timerState int

const (
	stateUnstarted timerState = iota
	stateRunning
	statePaused
)

// CountupTimer measures wall-clock time elapsed since Start, excluding any
// intervals spent paused. Elapsed grows without bound once started; the
// configured duration only marks the expiry threshold.
//
// A timer is owned by one logical caller at a time and does no locking of
// its own.
type CountupTimer struct {
	clock     Clock
	duration  time.Duration
	state     timerState
	startedAt time.Time
	pausedAt  time.Time
}

// Option configures a timer at construction.
type Option func(*CountupTimer)

// WithClock substitutes the timer's time source. Defaults to SystemClock.
func WithClock(c Clock) Option {
	return func(t *CountupTimer) {
		t.clock = c
	}
}

// NewCountup returns an unstarted countup timer that expires once d has
// elapsed. d is not validated; a zero or negative d makes the timer expired
// from the outset.
func NewCountup(d time.Duration, opts ...Option) *CountupTimer {
	t := &CountupTimer{clock: SystemClock}
	t.reinit(d)
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *CountupTimer) reinit(d time.Duration) {
	t.duration = d
	t.state = stateUnstarted
	t.startedAt = time.Time{}
	t.pausedAt = time.Time{}
}

// Reset returns the timer to the unstarted state with a new duration,
// discarding all start and pause history. The configured clock is kept.
func (t *CountupTimer) Reset(d time.Duration) {
	t.reinit(d)
}

// Start begins accumulating elapsed time. Calling Start on a timer that has
// already started is a no-op: it neither restarts the clock nor resumes a
// paused timer.
func (t *CountupTimer) Start() {
	if t.state != stateUnstarted {
		return
	}
	t.startedAt = t.clock.Now()
	t.state = stateRunning
}

// Pause freezes the elapsed value at the current instant. No-op unless the
// timer is running.
func (t *CountupTimer) Pause() {
	if t.state != stateRunning {
		return
	}
	t.pausedAt = t.clock.Now()
	t.state = statePaused
}

// Resume continues a paused timer. The start instant is shifted forward by
// exactly the span spent paused, so Elapsed stays now minus startedAt with
// no separate pause accumulator. No-op unless the timer is paused.
func (t *CountupTimer) Resume() {
	if t.state != statePaused {
		return
	}
	t.startedAt = t.startedAt.Add(t.clock.Now().Sub(t.pausedAt))
	t.pausedAt = time.Time{}
	t.state = stateRunning
}

// Elapsed reports the time accumulated since Start, excluding paused
// intervals. Zero if the timer was never started.
func (t *CountupTimer) Elapsed() time.Duration {
	switch t.state {
	case stateRunning:
		return t.clock.Now().Sub(t.startedAt)
	case statePaused:
		return t.pausedAt.Sub(t.startedAt)
	default:
		return 0
	}
}

// Paused reports whether the timer is not accumulating time. A timer that
// was never started counts as paused.
func (t *CountupTimer) Paused() bool {
	return t.state != stateRunning
}

// Running reports the negation of Paused.
func (t *CountupTimer) Running() bool {
	return !t.Paused()
}

// Duration returns the configured expiry threshold.
func (t *CountupTimer) Duration() time.Duration {
	return t.duration
}

// Expired reports whether Elapsed has reached the configured duration.
func (t *CountupTimer) Expired() bool {
	return t.Elapsed() >= t.duration
}

// Remaining returns the time left until expiry. Values above the configured
// duration collapse to zero; the low side is unclamped, so an expired
// countup timer reports a negative remainder. Use CountdownTimer for a
// remainder that floors at zero.
func (t *CountupTimer) Remaining() time.Duration {
	left := t.duration - t.Elapsed()
	if left > t.duration {
		return 0
	}
	return left
}
