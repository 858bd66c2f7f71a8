// Package gate implements the burst hysteresis gate.
//
// The bubble bursts once progress reaches the enter threshold and re-forms
// only after progress drops below the lower exit threshold. Between the two
// the gate keeps whatever state it had, so scrolling around the boundary
// cannot make the bubble flicker.
package gate

import (
	"fmt"

	"github.com/san-kum/bubblescroll/internal/effect"
)

type State int

const (
	Intact State = iota
	Burst
)

func (s State) String() string {
	switch s {
	case Intact:
		return "INTACT"
	case Burst:
		return "BURST"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

const (
	DefaultEnter = 0.95
	DefaultExit  = 0.9
)

// Thresholds are the progress values that switch the gate.
type Thresholds struct {
	Enter float64 `yaml:"enter"`
	Exit  float64 `yaml:"exit"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{Enter: DefaultEnter, Exit: DefaultExit}
}

// Validate requires 0 <= Exit <= Enter <= 1.
func (th Thresholds) Validate() error {
	if th.Exit < 0 || th.Enter > 1 || th.Exit > th.Enter {
		return fmt.Errorf("%w: enter=%.3f exit=%.3f", effect.ErrInvalidThresholds, th.Enter, th.Exit)
	}
	return nil
}

// Next is the transition function. It is pure: the same state and progress
// always yield the same result, and Next(Next(s, p), p) == Next(s, p).
func Next(s State, progress float64, th Thresholds) State {
	switch {
	case progress >= th.Enter:
		return Burst
	case progress < th.Exit:
		return Intact
	}
	return s
}

// Gate holds the current state.
type Gate struct {
	th    Thresholds
	state State
}

func New(th Thresholds) *Gate {
	return &Gate{th: th}
}

func (g *Gate) State() State           { return g.state }
func (g *Gate) Thresholds() Thresholds { return g.th }

// Apply evaluates the gate for progress and reports whether the state changed.
func (g *Gate) Apply(progress float64) (State, bool) {
	next := Next(g.state, progress, g.th)
	changed := next != g.state
	g.state = next
	return next, changed
}
