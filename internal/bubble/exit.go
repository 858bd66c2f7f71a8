package bubble

import (
	"time"

	"github.com/san-kum/bubblescroll/internal/effect"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultExitDuration is the length of the burst transition.
const DefaultExitDuration = 500 * time.Millisecond

// Exit plays the burst transition of the last visible bubble: it swells to
// 1.2x and collapses to nothing while fading out in the second half. The
// factors multiply the frozen transform. Once started it runs to completion.
type Exit struct {
	from    effect.Visual
	scale   *gween.Sequence
	opacity *gween.Sequence
	current effect.Visual
	done    bool
}

// NewExit starts a transition of length d from the bubble as last seen.
func NewExit(from effect.Visual, d time.Duration) *Exit {
	if d <= 0 {
		d = DefaultExitDuration
	}
	half := float32(d.Seconds() / 2)
	e := &Exit{
		from: from,
		scale: gween.NewSequence(
			gween.New(1, 1.2, half, ease.Linear),
			gween.New(1.2, 0, half, ease.Linear),
		),
		opacity: gween.NewSequence(
			gween.New(1, 1, half, ease.Linear),
			gween.New(1, 0, half, ease.Linear),
		),
	}
	e.current = e.compose(1, 1)
	return e
}

// Step advances the transition by dt and returns the bubble to draw. After
// the transition finishes the returned Visual is hidden.
func (e *Exit) Step(dt time.Duration) effect.Visual {
	if e.done {
		return effect.Visual{}
	}
	s := float32(dt.Seconds())
	scale, _, scaleDone := e.scale.Update(s)
	opacity, _, opacityDone := e.opacity.Update(s)
	if scaleDone && opacityDone {
		e.done = true
		e.current = effect.Visual{}
		return e.current
	}
	e.current = e.compose(float64(scale), float64(opacity))
	return e.current
}

func (e *Exit) Current() effect.Visual { return e.current }
func (e *Exit) Done() bool             { return e.done }

func (e *Exit) compose(scale, opacity float64) effect.Visual {
	v := e.from
	v.Scale *= scale
	v.Opacity *= opacity
	v.Visible = true
	return v
}
