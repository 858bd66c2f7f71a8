// Package bubble projects scroll progress onto the bubble's render transform.
package bubble

import (
	"github.com/san-kum/bubblescroll/internal/curve"
	"github.com/san-kum/bubblescroll/internal/effect"
	"github.com/san-kum/bubblescroll/internal/gate"
)

// Curves holds one keypoint table per animated property, keyed by progress.
type Curves struct {
	Size    curve.Curve
	Scale   curve.Curve
	Opacity curve.Curve
}

// DefaultCurves grows the bubble from 16 to 48 rem until 0.9 progress, then
// collapses it while it fades out.
func DefaultCurves() Curves {
	return Curves{
		Size:    curve.New(0, 16, 0.9, 48),
		Scale:   curve.New(0, 1, 0.9, 1.2, 1, 0),
		Opacity: curve.New(0, 0.8, 0.9, 0.8, 0.95, 0.4, 1, 0),
	}
}

// Projector is a pure mapping; it keeps nothing between frames.
type Projector struct {
	Curves Curves
}

func NewProjector(c Curves) Projector {
	return Projector{Curves: c}
}

// Project computes the bubble for one frame. Once burst, the bubble is not
// rendered at all and only the zero Visual is returned.
func (p Projector) Project(progress float64, st gate.State, offset effect.Vec) effect.Visual {
	if st == gate.Burst {
		return effect.Visual{}
	}
	progress = curve.Clamp(progress, 0, 1)
	return effect.Visual{
		SizeRem: p.Curves.Size.At(progress),
		Scale:   p.Curves.Scale.At(progress),
		Opacity: p.Curves.Opacity.At(progress),
		X:       offset.X,
		Y:       offset.Y,
		Visible: true,
	}
}
