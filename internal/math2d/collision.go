package math2d

// Boxes are center + full width/height; the half-extents are derived here.
// All comparisons are inclusive, so touching counts as contact.

// PointInRect reports whether p lies in the closed box of the given width
// and height centered at center.
func PointInRect(p, center Vector, width, height float64) bool {
	hw := width / 2
	hh := height / 2
	if p.X < center.X-hw || p.X > center.X+hw {
		return false
	}
	if p.Y < center.Y-hh || p.Y > center.Y+hh {
		return false
	}
	return true
}

// RectOverlap reports whether two axis-aligned boxes overlap on both axes.
func RectOverlap(centerA Vector, wA, hA float64, centerB Vector, wB, hB float64) bool {
	// No overlap if one box is completely left, right, above or below the other
	if centerA.X+wA/2 < centerB.X-wB/2 || centerA.X-wA/2 > centerB.X+wB/2 {
		return false
	}
	if centerA.Y+hA/2 < centerB.Y-hB/2 || centerA.Y-hA/2 > centerB.Y+hB/2 {
		return false
	}
	return true
}

// CircleContains reports whether p lies inside or on the circle.
func CircleContains(p, center Vector, radius float64) bool {
	return DistSq(p, center) <= radius*radius
}

// CircleOverlap reports whether two circles touch or overlap.
func CircleOverlap(c0 Vector, r0 float64, c1 Vector, r1 float64) bool {
	total := r0 + r1
	return DistSq(c0, c1) <= total*total
}

// Bounds is an axis-aligned world rectangle given by its corners.
type Bounds struct {
	Min, Max Vector
}

// CenteredBounds returns bounds of the given size centered on the origin.
func CenteredBounds(width, height float64) Bounds {
	return Bounds{
		Min: Vector{X: -width / 2, Y: -height / 2},
		Max: Vector{X: width / 2, Y: height / 2},
	}
}

// Contains reports whether p lies inside the closed bounds.
func (b Bounds) Contains(p Vector) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Shrink moves every edge inward by dx horizontally and dy vertically.
func (b Bounds) Shrink(dx, dy float64) Bounds {
	return Bounds{
		Min: Vector{X: b.Min.X + dx, Y: b.Min.Y + dy},
		Max: Vector{X: b.Max.X - dx, Y: b.Max.Y - dy},
	}
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 {
	return b.Max.X - b.Min.X
}

// Height returns the vertical extent.
func (b Bounds) Height() float64 {
	return b.Max.Y - b.Min.Y
}

// Clamp restricts p to the bounds.
func (b Bounds) Clamp(p Vector) Vector {
	return Vector{X: Clamp(p.X, b.Min.X, b.Max.X), Y: Clamp(p.Y, b.Min.Y, b.Max.Y)}
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
