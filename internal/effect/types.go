package effect

import (
	"fmt"
	"math"
)

// Vec is a 2D offset in pixel-equivalent units.
type Vec struct {
	X, Y float64
}

func (v Vec) Dist(o Vec) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

func (v Vec) IsZero() bool { return v.X == 0 && v.Y == 0 }

// ScrollSample is one reading of the scroll geometry.
type ScrollSample struct {
	PositionPx       float64
	ViewportHeightPx float64
	DocumentHeightPx float64
}

// Progress normalizes the sample to [0,1]. A document that does not scroll,
// or a sample carrying NaN/Inf, yields 0.
func (s ScrollSample) Progress() float64 {
	scrollable := s.DocumentHeightPx - s.ViewportHeightPx
	if !(scrollable > 0) || math.IsInf(scrollable, 0) {
		return 0
	}
	p := s.PositionPx / scrollable
	if math.IsNaN(p) {
		return 0
	}
	return math.Max(0, math.Min(1, p))
}

// Visual is the render transform of the bubble for one frame.
type Visual struct {
	SizeRem float64
	Scale   float64
	Opacity float64
	X, Y    float64
	Visible bool
}

func (v Visual) Pos() Vec { return Vec{X: v.X, Y: v.Y} }

// Radius returns the rendered radius in rem.
func (v Visual) Radius() float64 { return v.SizeRem * v.Scale / 2 }

func (v Visual) String() string {
	if !v.Visible {
		return "hidden"
	}
	return fmt.Sprintf("size=%.1frem scale=%.2f opacity=%.2f at (%.1f, %.1f)", v.SizeRem, v.Scale, v.Opacity, v.X, v.Y)
}

// Variant is the background style of a section.
type Variant int

const (
	VariantA Variant = iota
	VariantB
)

func (v Variant) String() string {
	if v == VariantB {
		return "B"
	}
	return "A"
}

// ParseVariant accepts "a"/"A"/"b"/"B"; anything else is an error.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "a", "A":
		return VariantA, nil
	case "b", "B":
		return VariantB, nil
	}
	return VariantA, fmt.Errorf("unknown variant %q", s)
}

// TextBlock is one full-height section of the page.
type TextBlock struct {
	Content string
	Anchor  Vec
	Variant Variant
}

// BlockState is the per-frame highlight of a text block.
type BlockState struct {
	Enlarged bool
	Scale    float64
}

// DefaultTexts are the section headlines of the page, top to bottom.
var DefaultTexts = []string{
	"Not sorry to interrupt.",
	"Rouser's activism makes people think.",
	"Change only happens when everyone is paying attention.",
	"Get noisy as hell, our lives depend on it.",
}

// DefaultBlocks returns the page sections with alternating variants and
// anchors at the origin.
func DefaultBlocks() []TextBlock {
	return BlocksFromTexts(DefaultTexts)
}

// BlocksFromTexts builds blocks from texts, alternating A/B starting with A.
func BlocksFromTexts(texts []string) []TextBlock {
	blocks := make([]TextBlock, len(texts))
	for i, t := range texts {
		blocks[i] = TextBlock{Content: t, Variant: Variant(i % 2)}
	}
	return blocks
}
