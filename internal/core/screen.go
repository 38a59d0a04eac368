package core

import "strings"

// Rect is an integer cell rectangle on the terminal screen.
type Rect struct {
	X, Y int // top-left cell
	W, H int
}

// NewRect creates a rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the column one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the row one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Cell is one character position on the screen.
type Cell struct {
	Rune  rune
	Color Color
}

var blank = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a row-major character buffer the terminal canvas rasterizes
// into. The simulation never sees it.
type Screen struct {
	width, height int
	cells         []Cell
}

// NewScreen creates a blank screen.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the dimensions and clears the buffer. Negative sizes
// count as zero.
func (s *Screen) Resize(width, height int) {
	width, height = max(0, width), max(0, height)
	if width == s.width && height == s.height && s.cells != nil {
		return
	}
	s.width, s.height = width, height
	s.cells = make([]Cell, width*height)
	s.Clear()
}

// Clear fills the screen with uncolored spaces.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blank
	}
}

func (s *Screen) inside(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// SetColored places r at (x, y). Out-of-bounds writes are dropped.
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if s.inside(x, y) {
		s.cells[y*s.width+x] = Cell{Rune: r, Color: c}
	}
}

// Get returns the rune at (x, y), or a space outside the screen.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at (x, y), or a blank cell outside the screen.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inside(x, y) {
		return blank
	}
	return s.cells[y*s.width+x]
}

// DrawRect fills r, clipped to the screen.
func (s *Screen) DrawRect(r Rect, fill rune, c Color) {
	x0, y0 := max(0, r.X), max(0, r.Y)
	x1, y1 := min(s.width, r.Right()), min(s.height, r.Bottom())
	for y := y0; y < y1; y++ {
		row := s.cells[y*s.width : (y+1)*s.width]
		for x := x0; x < x1; x++ {
			row[x] = Cell{Rune: fill, Color: c}
		}
	}
}

// String returns the runes without color, rows joined by newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)
	for y := range s.height {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range s.cells[y*s.width : (y+1)*s.width] {
			sb.WriteRune(c.Rune)
		}
	}
	return sb.String()
}
