package counters

import "time"

// CountdownTimer counts down from its configured duration. It shares the
// countup mechanics and differs only in Remaining, which floors at zero
// instead of going negative once the timer expires.
type CountdownTimer struct {
	CountupTimer
}

// NewCountdown returns an unstarted countdown timer over d.
func NewCountdown(d time.Duration, opts ...Option) *CountdownTimer {
	t := &CountdownTimer{}
	t.CountupTimer = *NewCountup(d, opts...)
	return t
}

// Remaining returns the time left until expiry, never negative.
func (t *CountdownTimer) Remaining() time.Duration {
	return max(t.duration-t.Elapsed(), 0)
}
