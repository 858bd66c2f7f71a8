package scroll

import "time"

// Debouncer holds at most one pending deadline. Rescheduling replaces the
// pending deadline instead of adding a second one, so a stale deadline can
// never fire after a newer event.
type Debouncer struct {
	quiet    time.Duration
	deadline time.Time
	pending  bool
}

func NewDebouncer(quiet time.Duration) *Debouncer {
	return &Debouncer{quiet: quiet}
}

// Reset schedules the deadline quiet after now, replacing any pending one.
func (d *Debouncer) Reset(now time.Time) {
	d.deadline = now.Add(d.quiet)
	d.pending = true
}

// Cancel drops the pending deadline, if any.
func (d *Debouncer) Cancel() {
	d.pending = false
	d.deadline = time.Time{}
}

func (d *Debouncer) Pending() bool { return d.pending }

// Due reports whether the pending deadline has been reached at now. It
// returns true at most once per Reset.
func (d *Debouncer) Due(now time.Time) bool {
	if !d.pending || now.Before(d.deadline) {
		return false
	}
	d.Cancel()
	return true
}
