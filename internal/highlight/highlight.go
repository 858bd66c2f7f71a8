// Package highlight enlarges text blocks when the bubble comes close to them.
package highlight

import "github.com/san-kum/bubblescroll/internal/effect"

const (
	DefaultRadius = 100.0
	DefaultScale  = 1.5
)

// Highlighter toggles a block's scale when the bubble is strictly within
// Radius of the block's anchor.
type Highlighter struct {
	Radius float64
	Scale  float64
}

func New(radius, scale float64) Highlighter {
	return Highlighter{Radius: radius, Scale: scale}
}

// Enlarged reports whether pos is near enough to anchor. A distance equal
// to the radius does not count.
func (h Highlighter) Enlarged(pos, anchor effect.Vec) bool {
	return pos.Dist(anchor) < h.Radius
}

// Evaluate returns one state per block. A hidden bubble has no position and
// is treated as far from every anchor.
func (h Highlighter) Evaluate(v effect.Visual, blocks []effect.TextBlock) []effect.BlockState {
	out := make([]effect.BlockState, len(blocks))
	for i, b := range blocks {
		out[i] = effect.BlockState{Scale: 1}
		if v.Visible && h.Enlarged(v.Pos(), b.Anchor) {
			out[i] = effect.BlockState{Enlarged: true, Scale: h.Scale}
		}
	}
	return out
}

// Count returns how many blocks are enlarged.
func Count(states []effect.BlockState) int {
	n := 0
	for _, s := range states {
		if s.Enlarged {
			n++
		}
	}
	return n
}
