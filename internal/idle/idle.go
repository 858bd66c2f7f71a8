// Package idle generates the ambient drift of the bubble.
package idle

import (
	"math"
	"time"

	"github.com/san-kum/bubblescroll/internal/effect"
	"github.com/san-kum/bubblescroll/internal/gate"
)

// DefaultAmplitude is the drift radius in pixel-equivalent units.
const DefaultAmplitude = 100.0

// Generator maps elapsed time to a circular drift. It keeps no state of its
// own, so a pause in the drift resumes in phase with the clock.
type Generator struct {
	Amplitude float64
}

func New(amplitude float64) Generator {
	return Generator{Amplitude: amplitude}
}

// Offset returns the drift at elapsed. It is exactly zero while the user
// scrolls or after the bubble has burst.
func (g Generator) Offset(elapsed time.Duration, scrolling bool, st gate.State) effect.Vec {
	if scrolling || st != gate.Intact {
		return effect.Vec{}
	}
	t := elapsed.Seconds()
	return effect.Vec{
		X: g.Amplitude * math.Sin(t),
		Y: g.Amplitude * math.Cos(t),
	}
}

// Period is one full revolution of the drift.
func (g Generator) Period() time.Duration {
	return time.Duration(math.Round(2 * math.Pi * float64(time.Second)))
}
