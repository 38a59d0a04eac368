package math2d

import "math"

// Matrix is a 3x3 row-major affine transform acting on column vectors:
// p' = M * (x, y, 1).
type Matrix struct {
	M [3][3]float64
}

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{M: [3][3]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}}
}

// Translate returns a translation by (x, y).
func Translate(x, y float64) Matrix {
	m := Identity()
	m.M[0][2] = x
	m.M[1][2] = y
	return m
}

// ScaleXY returns a non-uniform scale.
func ScaleXY(x, y float64) Matrix {
	m := Identity()
	m.M[0][0] = x
	m.M[1][1] = y
	return m
}

// Rotate returns a counter-clockwise rotation by angle radians.
func Rotate(angle float64) Matrix {
	s, c := math.Sincos(angle)
	m := Identity()
	m.M[0][0] = c
	m.M[0][1] = -s
	m.M[1][0] = s
	m.M[1][1] = c
	return m
}

// RotateDeg returns a counter-clockwise rotation by angle degrees.
func RotateDeg(angle float64) Matrix {
	return Rotate(angle * math.Pi / 180)
}

// Mul returns m * o, so o is applied first.
func (m Matrix) Mul(o Matrix) Matrix {
	var r Matrix
	for i := range 3 {
		for j := range 3 {
			var sum float64
			for k := range 3 {
				sum += m.M[i][k] * o.M[k][j]
			}
			r.M[i][j] = sum
		}
	}
	return r
}

// Transpose returns the transpose of m.
func (m Matrix) Transpose() Matrix {
	var r Matrix
	for i := range 3 {
		for j := range 3 {
			r.M[i][j] = m.M[j][i]
		}
	}
	return r
}

// Apply transforms the point v.
func (m Matrix) Apply(v Vector) Vector {
	return Vector{
		X: m.M[0][0]*v.X + m.M[0][1]*v.Y + m.M[0][2],
		Y: m.M[1][0]*v.X + m.M[1][1]*v.Y + m.M[1][2],
	}
}

// Translation returns the translation column of m.
func (m Matrix) Translation() Vector {
	return Vector{X: m.M[0][2], Y: m.M[1][2]}
}

// Compose builds translate * rotate * scale: scale is applied first,
// then rotation, then translation.
func Compose(pos Vector, angle, scaleX, scaleY float64) Matrix {
	return Translate(pos.X, pos.Y).Mul(Rotate(angle).Mul(ScaleXY(scaleX, scaleY)))
}
