package fuzzy

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/duel-arcade/internal/math2d"
)

const eps = 1e-9

func TestTriangle(t *testing.T) {
	tests := []struct {
		name       string
		a, b, c, x float64
		expected   float64
	}{
		{"below support", 25, 50, 75, 10, 0},
		{"above support", 25, 50, 75, 80, 0},
		{"left edge", 25, 50, 75, 25, 0},
		{"peak", 25, 50, 75, 50, 1},
		{"left ramp", 25, 50, 75, 37.5, 0.5},
		{"right ramp", 25, 50, 75, 62.5, 0.5},
		{"right edge", 25, 50, 75, 75, 0},
		{"flat left at a", 0, 0, 50, 0, 1},
		{"flat left ramp down", 0, 0, 50, 25, 0.5},
		{"flat right at c", 50, 100, 100, 100, 1},
		{"flat right ramp up", 50, 100, 100, 75, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Triangle(tt.a, tt.b, tt.c, tt.x)
			if math.Abs(got-tt.expected) > eps {
				t.Errorf("Triangle(%v, %v, %v, %v) = %v, expected %v", tt.a, tt.b, tt.c, tt.x, got, tt.expected)
			}
		})
	}
}

func TestTriangleMonotonic(t *testing.T) {
	sets := append(append(HealthSets[:], AmmoSets[:]...), PositionSets[:]...)
	for _, s := range sets {
		prev := s.Degree(s.Left)
		for x := s.Left; x <= s.Peak; x += s.Span() / 200 {
			d := s.Degree(x)
			if d < prev-eps {
				t.Fatalf("%s: not increasing on left ramp at %v", s.Name, x)
			}
			prev = d
		}
		prev = s.Degree(s.Peak)
		for x := s.Peak; x <= s.Right; x += s.Span() / 200 {
			d := s.Degree(x)
			if d > prev+eps {
				t.Fatalf("%s: not decreasing on right ramp at %v", s.Name, x)
			}
			prev = d
		}
	}
}

func TestRuleTable(t *testing.T) {
	defensive := map[int]bool{0: true, 3: true, 6: true, 7: true}
	offensive := map[int]bool{11: true, 14: true, 15: true, 17: true}

	for i, out := range Rules {
		expected := Neutral
		switch {
		case defensive[i]:
			expected = Defensive
		case offensive[i]:
			expected = Offensive
		}
		if out != expected {
			t.Errorf("rule %d = %s, expected %s", i, out, expected)
		}
	}
	if RuleIndex(2, 1, 2) != 17 || RuleIndex(1, 0, 1) != 7 {
		t.Error("RuleIndex layout should be h*6 + a*3 + p")
	}
}

func TestTargetY(t *testing.T) {
	tests := []struct {
		name              string
		health, ammo, pos float64
		expected          float64
	}{
		// only rule 17 fires, its value 0 clamps up to the ship size
		{"full health far player", 100, 5, 300, 60},
		// only rule 6 fires with value 300, clamped down
		{"medium health dry near", 50, 0, 0, 240},
		// rules 9, 10 and 11 fire with 0.125, 1 and 1/6
		{"medium health mid player", 50, 5, 175, 148.99193548387095},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(60, 240, 150)
			got, err := c.TargetY(tt.health, tt.ammo, tt.pos)
			if err != nil {
				t.Fatalf("TargetY: %v", err)
			}
			if math.Abs(got-tt.expected) > 1e-6 {
				t.Errorf("TargetY(%v, %v, %v) = %v, expected %v", tt.health, tt.ammo, tt.pos, got, tt.expected)
			}
			if c.Last() != got {
				t.Error("Last should track the output")
			}
		})
	}
}

func TestTargetYClamped(t *testing.T) {
	c := NewController(60, 240, 150)
	for h := 0.0; h <= 100; h += 2.5 {
		for a := 0; a <= 5; a++ {
			for p := 0.0; p <= 300; p += 7.5 {
				got, err := c.TargetY(h, float64(a), p)
				if err != nil {
					t.Fatalf("TargetY(%v, %v, %v): %v", h, a, p, err)
				}
				if got < 60 || got > 240 || math.IsNaN(got) {
					t.Fatalf("TargetY(%v, %v, %v) = %v outside [60, 240]", h, a, p, got)
				}
			}
		}
	}
}

func TestTargetYNoRuleFired(t *testing.T) {
	c := NewController(60, 240, 150)

	got, err := c.TargetY(-10, 3, 100)
	if !errors.Is(err, ErrNoRuleFired) {
		t.Fatalf("expected ErrNoRuleFired, got %v", err)
	}
	if got != 150 {
		t.Errorf("expected held initial value 150, got %v", got)
	}

	first, err := c.TargetY(50, 5, 175)
	if err != nil {
		t.Fatalf("TargetY: %v", err)
	}
	got, err = c.TargetY(math.NaN(), 5, 175)
	if !errors.Is(err, ErrNoRuleFired) || got != first {
		t.Errorf("NaN input should hold %v, got %v (%v)", first, got, err)
	}

	c.Reset(200)
	if c.Last() != 200 {
		t.Errorf("Reset should hold 200, got %v", c.Last())
	}
}

func TestFindPlayer(t *testing.T) {
	down := math2d.FromAngle(-math.Pi / 2)
	tests := []struct {
		name     string
		dir      math2d.Vector
		facing   math2d.Vector
		expected float64
	}{
		{"dead ahead", math2d.Vec(0, -300), down, 0},
		{"player to the right", math2d.Vec(100, -300), down, 100},
		{"player to the left", math2d.Vec(-100, -300), down, -100},
		{"player behind", math2d.Vec(0, 300), down, 0},
		{"zero direction", math2d.Vector{}, down, 0},
		{"zero facing", math2d.Vec(100, -300), math2d.Vector{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindPlayer(tt.dir, tt.facing)
			if math.Abs(got-tt.expected) > 1e-6 {
				t.Errorf("FindPlayer(%v, %v) = %v, expected %v", tt.dir, tt.facing, got, tt.expected)
			}
		})
	}
}
