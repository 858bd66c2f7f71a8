// Package clock supplies monotonic time to the effect.
package clock

import "time"

// Clock reports the current instant.
type Clock interface {
	Now() time.Time
}

// Real reads the system clock. time.Now carries a monotonic reading, so
// differences between two Now calls are immune to wall-clock jumps.
type Real struct{}

func (Real) Now() time.Time { return time.Now() }

// Manual only moves when told to.
type Manual struct {
	now time.Time
}

// NewManual starts a manual clock at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() time.Time { return m.now }

// Advance moves the clock forward by d. Negative d is ignored.
func (m *Manual) Advance(d time.Duration) {
	if d > 0 {
		m.now = m.now.Add(d)
	}
}

// Set jumps to t if t is not before the current instant.
func (m *Manual) Set(t time.Time) {
	if !t.Before(m.now) {
		m.now = t
	}
}

// Since returns the time elapsed on c since start, never negative.
func Since(c Clock, start time.Time) time.Duration {
	d := c.Now().Sub(start)
	if d < 0 {
		return 0
	}
	return d
}
