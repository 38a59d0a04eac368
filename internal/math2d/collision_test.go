package math2d

import "testing"

func TestPointInRect(t *testing.T) {
	center := Vec(10, -20)
	tests := []struct {
		name     string
		p        Vector
		expected bool
	}{
		{"center", Vec(10, -20), true},
		{"right edge", Vec(40, -20), true},
		{"top-left corner", Vec(-20, 10), true},
		{"one beyond right", Vec(41, -20), false},
		{"one beyond left", Vec(-21, -20), false},
		{"one beyond top", Vec(10, 11), false},
		{"one beyond bottom", Vec(10, -51), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := PointInRect(tc.p, center, 60, 60)
			if result != tc.expected {
				t.Errorf("PointInRect(%v) = %v, expected %v", tc.p, result, tc.expected)
			}
		})
	}
}

func TestRectOverlap(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vector
		expected bool
	}{
		{"same center", Vec(0, 0), Vec(0, 0), true},
		{"partial overlap", Vec(0, 0), Vec(5, 5), true},
		{"touching edges", Vec(0, 0), Vec(10, 0), true},
		{"separated horizontally", Vec(0, 0), Vec(11, 0), false},
		{"separated vertically", Vec(0, 0), Vec(0, -11), false},
		{"diagonal apart", Vec(0, 0), Vec(11, 11), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := RectOverlap(tc.a, 10, 10, tc.b, 10, 10)
			if result != tc.expected {
				t.Errorf("RectOverlap() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			if RectOverlap(tc.b, 10, 10, tc.a, 10, 10) != tc.expected {
				t.Errorf("RectOverlap() (reversed) = %v, expected %v", !tc.expected, tc.expected)
			}
		})
	}
}

func TestCircles(t *testing.T) {
	if !CircleContains(Vec(3, 4), Vec(0, 0), 5) {
		t.Error("point on the circle should be contained")
	}
	if CircleContains(Vec(3, 4.01), Vec(0, 0), 5) {
		t.Error("point just outside the circle should not be contained")
	}
	if !CircleOverlap(Vec(0, 0), 2, Vec(5, 0), 3) {
		t.Error("touching circles should overlap")
	}
	if CircleOverlap(Vec(0, 0), 2, Vec(5.5, 0), 3) {
		t.Error("separated circles should not overlap")
	}
}

func TestBounds(t *testing.T) {
	b := CenteredBounds(800, 600)
	if b.Min != Vec(-400, -300) || b.Max != Vec(400, 300) {
		t.Fatalf("CenteredBounds = %+v", b)
	}
	if !b.Contains(Vec(400, 300)) {
		t.Error("corner should be inside closed bounds")
	}
	if b.Contains(Vec(400.5, 0)) {
		t.Error("point past the right edge should be outside")
	}

	s := b.Shrink(30, 30)
	if s.Width() != 740 || s.Height() != 540 {
		t.Errorf("Shrink size = %vx%v, expected 740x540", s.Width(), s.Height())
	}
	if got := s.Clamp(Vec(-1000, 1000)); got != Vec(-370, 270) {
		t.Errorf("Clamp = %v, expected (-370, 270)", got)
	}
}
