package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, want 80x24", s.Width(), s.Height())
	}
	for y := range s.Height() {
		for x := range s.Width() {
			if s.GetCell(x, y) != blank {
				t.Fatalf("new screen not blank at (%d, %d)", x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorRed)
	if cell := s.GetCell(5, 5); cell.Rune != 'X' || cell.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, want red 'X'", cell)
	}

	// Out of bounds is silent in both directions.
	for _, p := range [][2]int{{-1, 0}, {10, 0}, {0, -1}, {0, 10}} {
		s.SetColored(p[0], p[1], 'A', ColorRed)
		if s.Get(p[0], p[1]) != ' ' {
			t.Errorf("Get(%d, %d) outside the screen should be a space", p[0], p[1])
		}
	}
	if s.Get(9, 0) != ' ' || s.Get(0, 1) != ' ' {
		t.Error("out-of-bounds writes must not wrap into neighbouring rows")
	}
}

func TestScreenDrawRectClipped(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawRect(NewRect(-2, 2, 4, 5), '#', ColorYellow)

	want := "      \n      \n##    \n##    "
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if s.GetCell(1, 3).Color != ColorYellow {
		t.Error("DrawRect should set the color")
	}

	s.Clear()
	if strings.TrimSpace(s.String()) != "" {
		t.Error("Clear should blank the buffer")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(3, 2)
	s.SetColored(0, 0, 'a', ColorDefault)

	s.Resize(5, 4)
	if s.Width() != 5 || s.Height() != 4 {
		t.Fatalf("Resize: got %dx%d", s.Width(), s.Height())
	}
	if strings.TrimSpace(s.String()) != "" {
		t.Error("Resize should clear the buffer")
	}

	s.Resize(-1, 3)
	if s.Width() != 0 || s.String() != "\n\n" {
		t.Errorf("negative width should give an empty screen, got %q", s.String())
	}
}
