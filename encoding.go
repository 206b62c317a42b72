package counters

import (
	"time"

	"github.com/vmihailenco/msgpack"
)

// timerSnapshot is the wire form of a timer's observable state. Instants are
// not serialized; elapsed time travels as a span and is re-based against the
// destination clock on restore, so snapshots survive wall-clock skew between
// processes.
type timerSnapshot struct {
	Duration time.Duration
	Elapsed  time.Duration
	Started  bool
	Paused   bool
}

// MarshalBinary encodes the timer's duration, accumulated elapsed time and
// run state with msgpack. The timer itself writes nothing anywhere; storage
// is the caller's concern.
func (t *CountupTimer) MarshalBinary() ([]byte, error) {
	return msgpack.Marshal(timerSnapshot{
		Duration: t.duration,
		Elapsed:  t.Elapsed(),
		Started:  t.state != stateUnstarted,
		Paused:   t.state == statePaused,
	})
}

// UnmarshalBinary restores state captured by MarshalBinary, replacing the
// timer's current state. A snapshot of a running timer continues
// accumulating from its recorded elapsed value. The timer's clock is kept;
// a zero-value timer falls back to SystemClock.
func (t *CountupTimer) UnmarshalBinary(data []byte) error {
	var snap timerSnapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return err
	}

	if t.clock == nil {
		t.clock = SystemClock
	}

	t.reinit(snap.Duration)
	if !snap.Started {
		return nil
	}

	now := t.clock.Now()
	t.startedAt = now.Add(-snap.Elapsed)
	if snap.Paused {
		t.pausedAt = now
		t.state = statePaused
	} else {
		t.state = stateRunning
	}
	return nil
}
