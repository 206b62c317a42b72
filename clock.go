package counters

import "time"

// Clock supplies the current instant. It exists so tests can substitute a
// manual time source and drive timers deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock is the default Clock, backed by the wall clock.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}
