// Package curve evaluates keypoint tables.
//
// Each animated property of the bubble is a [Curve]: a list of keypoints
// sorted by input, evaluated piecewise-linearly by [Curve.At].
package curve

import "math"

// Keypoint maps an input (usually scroll progress or normalized time) to a value.
type Keypoint struct {
	At    float64
	Value float64
}

// Curve is a keypoint table. Keypoints must be sorted by At.
type Curve []Keypoint

// New builds a curve from alternating (at, value) pairs. A trailing odd
// element is ignored.
func New(pairs ...float64) Curve {
	c := make(Curve, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		c = append(c, Keypoint{At: pairs[i], Value: pairs[i+1]})
	}
	return c
}

// At interpolates the curve at x. Inputs before the first keypoint hold the
// first value and inputs after the last keypoint hold the last value.
func (c Curve) At(x float64) float64 {
	switch len(c) {
	case 0:
		return 0
	case 1:
		return c[0].Value
	}
	if math.IsNaN(x) || x <= c[0].At {
		return c[0].Value
	}
	for i := 0; i < len(c)-1; i++ {
		k0, k1 := c[i], c[i+1]
		if x > k1.At {
			continue
		}
		span := k1.At - k0.At
		if span <= 0 {
			return k1.Value
		}
		return Lerp(k0.Value, k1.Value, (x-k0.At)/span)
	}
	return c[len(c)-1].Value
}

// Range returns the smallest and largest values of the curve.
func (c Curve) Range() (lo, hi float64) {
	if len(c) == 0 {
		return 0, 0
	}
	lo, hi = c[0].Value, c[0].Value
	for _, k := range c[1:] {
		lo = math.Min(lo, k.Value)
		hi = math.Max(hi, k.Value)
	}
	return lo, hi
}

// Sample evaluates the curve at n evenly spaced inputs over [from, to].
func (c Curve) Sample(from, to float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = c.At(from)
		return out
	}
	step := (to - from) / float64(n-1)
	for i := range out {
		out[i] = c.At(from + float64(i)*step)
	}
	return out
}

// Lerp interpolates between a and b; t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp limits v to [lo, hi]. NaN clamps to lo.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
