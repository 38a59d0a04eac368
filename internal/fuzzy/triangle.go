// Package fuzzy implements the bot's decision layer: triangular membership
// functions, a three-input Sugeno rule base producing the bot's target
// height, and the bearing heuristic used for lateral steering.
package fuzzy

// Triangle evaluates the triangular membership function (a, b, c) at x.
// It is 0 outside [a, c], ramps up on [a, b] and down on (b, c].
// A degenerate ramp (a == b or b == c) is constant 1.
func Triangle(a, b, c, x float64) float64 {
	switch {
	case x >= a && x <= b:
		if a == b {
			return 1
		}
		return (x - a) / (b - a)
	case x > b && x <= c:
		if b == c {
			return 1
		}
		return (c - x) / (c - b)
	default:
		return 0
	}
}

// Set is a named triangular fuzzy set.
type Set struct {
	Name  string
	Left  float64
	Peak  float64
	Right float64
}

// Degree returns the membership of x in s.
func (s Set) Degree(x float64) float64 {
	return Triangle(s.Left, s.Peak, s.Right, x)
}

// Span returns the width of the set's support.
func (s Set) Span() float64 {
	return s.Right - s.Left
}
