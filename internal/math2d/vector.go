// Package math2d provides the 2D vector, affine matrix and overlap
// predicates shared by the simulation, the pilot and the renderers.
// All types are plain values; nothing here allocates.
package math2d

import "math"

// Vector is a 2D vector or point in world units.
type Vector struct {
	X, Y float64
}

// Vec is shorthand for Vector{X: x, Y: y}.
func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// FromAngle returns the unit vector pointing along angle (radians).
func FromAngle(angle float64) Vector {
	return Vector{X: math.Cos(angle), Y: math.Sin(angle)}
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s.
func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// ScaleAdd returns v*s + o. Used for position integration (p += v*dt).
func (v Vector) ScaleAdd(s float64, o Vector) Vector {
	return Vector{X: v.X*s + o.X, Y: v.Y*s + o.Y}
}

// Neg returns -v.
func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of v and o.
func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Perp returns v rotated 90 degrees counter-clockwise.
func (v Vector) Perp() Vector {
	return Vector{X: -v.Y, Y: v.X}
}

// Len returns the length of v.
func (v Vector) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LenSq returns the squared length of v.
func (v Vector) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns v scaled to unit length. The zero vector is returned unchanged.
func (v Vector) Normalize() Vector {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vector{X: v.X / l, Y: v.Y / l}
}

// Dist returns the distance between two points.
func Dist(a, b Vector) float64 {
	return a.Sub(b).Len()
}

// DistSq returns the squared distance between two points.
func DistSq(a, b Vector) float64 {
	return a.Sub(b).LenSq()
}
