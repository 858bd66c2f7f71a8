// Package scroll tracks scroll progress and whether the user is actively
// scrolling.
package scroll

import (
	"time"

	"github.com/san-kum/bubblescroll/internal/effect"
)

// DefaultQuiet is how long scrolling must pause before activity clears.
const DefaultQuiet = 100 * time.Millisecond

// Update is what subscribers receive.
type Update struct {
	Progress  float64
	Scrolling bool
	At        time.Time
}

// Tracker turns scroll samples into progress and a debounced activity flag.
// It is not safe for concurrent use; the owner calls it from one goroutine.
type Tracker struct {
	progress  float64
	scrolling bool
	debounce  *Debouncer
	subs      map[int]func(Update)
	order     []int
	nextID    int
	torn      bool
}

func NewTracker(quiet time.Duration) *Tracker {
	if quiet <= 0 {
		quiet = DefaultQuiet
	}
	return &Tracker{
		debounce: NewDebouncer(quiet),
		subs:     make(map[int]func(Update)),
	}
}

func (t *Tracker) Progress() float64 { return t.progress }
func (t *Tracker) Scrolling() bool   { return t.scrolling }

// Pending reports whether an activity reset is scheduled.
func (t *Tracker) Pending() bool { return t.debounce.Pending() }

// Handle processes one scroll notification. Progress is recomputed from the
// sample every time, activity is set and the quiet period restarts.
func (t *Tracker) Handle(s effect.ScrollSample, now time.Time) Update {
	if t.torn {
		return t.current(now)
	}
	t.progress = s.Progress()
	t.scrolling = true
	t.debounce.Reset(now)
	u := t.current(now)
	t.emit(u)
	return u
}

// Poll clears activity once the quiet period has elapsed since the last
// scroll. It reports whether activity changed.
func (t *Tracker) Poll(now time.Time) (Update, bool) {
	if t.torn || !t.debounce.Due(now) {
		return t.current(now), false
	}
	t.scrolling = false
	u := t.current(now)
	t.emit(u)
	return u, true
}

// Subscribe registers fn for every update. The returned func removes it.
func (t *Tracker) Subscribe(fn func(Update)) (unsubscribe func()) {
	id := t.nextID
	t.nextID++
	t.subs[id] = fn
	t.order = append(t.order, id)
	return func() {
		delete(t.subs, id)
		for i, v := range t.order {
			if v == id {
				t.order = append(t.order[:i], t.order[i+1:]...)
				break
			}
		}
	}
}

// Teardown cancels the pending reset and drops all subscribers. The tracker
// ignores further input.
func (t *Tracker) Teardown() {
	t.debounce.Cancel()
	t.subs = make(map[int]func(Update))
	t.order = nil
	t.torn = true
}

func (t *Tracker) current(now time.Time) Update {
	return Update{Progress: t.progress, Scrolling: t.scrolling, At: now}
}

func (t *Tracker) emit(u Update) {
	ids := append([]int(nil), t.order...)
	for _, id := range ids {
		if fn, ok := t.subs[id]; ok {
			fn(u)
		}
	}
}
