package tui

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/duel-arcade/internal/core"
	"github.com/vovakirdan/duel-arcade/internal/math2d"
)

// ErrUnknownMesh is returned by CreateMesh for a name with no glyph.
var ErrUnknownMesh = errors.New("tui: unknown mesh")

// glyph is how a mesh looks on the terminal.
type glyph struct {
	fill  rune
	color core.Color
}

// glyphs maps mesh names (entity kinds and HUD icons) to cells.
var glyphs = map[string]glyph{
	"ship":          {'█', core.ColorBrightCyan},
	"bot":           {'█', core.ColorBrightRed},
	"player_bullet": {'│', core.ColorBrightYellow},
	"bot_bullet":    {'│', core.ColorMagenta},
	"lives":         {'♥', core.ColorRed},
	"ammo":          {'•', core.ColorYellow},
}

// Canvas is the terminal backend for the simulation: it creates meshes as
// glyphs and rasterizes draw calls into a Screen. World coordinates are
// projected onto the whole screen with Y pointing up.
type Canvas struct {
	screen *core.Screen
	world  math2d.Bounds
	meshes map[core.MeshHandle]glyph
	next   core.MeshHandle
}

var (
	_ core.MeshLoader = (*Canvas)(nil)
	_ core.Renderer   = (*Canvas)(nil)
)

// NewCanvas creates a canvas drawing world into screen.
func NewCanvas(screen *core.Screen, world math2d.Bounds) *Canvas {
	return &Canvas{
		screen: screen,
		world:  world,
		meshes: make(map[core.MeshHandle]glyph),
	}
}

// CreateMesh allocates a handle for a known mesh name.
func (c *Canvas) CreateMesh(name string) (core.MeshHandle, error) {
	g, ok := glyphs[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownMesh, name)
	}
	c.next++
	c.meshes[c.next] = g
	return c.next, nil
}

// FreeMesh releases h. Unknown handles are ignored.
func (c *Canvas) FreeMesh(h core.MeshHandle) {
	delete(c.meshes, h)
}

// Meshes returns the number of live meshes.
func (c *Canvas) Meshes() int {
	return len(c.meshes)
}

// Screen returns the target buffer.
func (c *Canvas) Screen() *core.Screen {
	return c.screen
}

// Begin clears the screen for a new frame.
func (c *Canvas) Begin() {
	c.screen.Clear()
}

// project maps a world point to fractional cell coordinates.
func (c *Canvas) project(p math2d.Vector) (fx, fy float64) {
	w, h := float64(c.screen.Width()), float64(c.screen.Height())
	fx = (p.X - c.world.Min.X) / c.world.Width() * w
	fy = (c.world.Max.Y - p.Y) / c.world.Height() * h
	return fx, fy
}

// Cell returns the screen cell containing p.
func (c *Canvas) Cell(p math2d.Vector) (x, y int) {
	fx, fy := c.project(p)
	return int(math.Floor(fx)), int(math.Floor(fy))
}

// DrawMesh fills the cells covered by the bounding box of the unit square
// transformed by m. At least one cell is drawn.
func (c *Canvas) DrawMesh(m math2d.Matrix, mesh core.MeshHandle) {
	g, ok := c.meshes[mesh]
	if !ok {
		return
	}

	lo, hi := bounds(m)
	x0, y0 := c.Cell(math2d.Vec(lo.X, hi.Y))
	fx1, fy1 := c.project(math2d.Vec(hi.X, lo.Y))
	x1 := max(x0, int(math.Ceil(fx1))-1)
	y1 := max(y0, int(math.Ceil(fy1))-1)

	c.screen.DrawRect(core.NewRect(x0, y0, x1-x0+1, y1-y0+1), g.fill, g.color)
}

// DrawIcon draws a single cell at pos.
func (c *Canvas) DrawIcon(pos math2d.Vector, mesh core.MeshHandle) {
	g, ok := c.meshes[mesh]
	if !ok {
		return
	}
	x, y := c.Cell(pos)
	c.screen.SetColored(x, y, g.fill, g.color)
}

// bounds returns the axis-aligned box around the transformed unit square.
func bounds(m math2d.Matrix) (lo, hi math2d.Vector) {
	corners := [4]math2d.Vector{
		m.Apply(math2d.Vec(-0.5, -0.5)),
		m.Apply(math2d.Vec(0.5, -0.5)),
		m.Apply(math2d.Vec(0.5, 0.5)),
		m.Apply(math2d.Vec(-0.5, 0.5)),
	}
	lo, hi = corners[0], corners[0]
	for _, p := range corners[1:] {
		lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
		hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
	}
	return lo, hi
}
