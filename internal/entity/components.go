package entity

import "github.com/vovakirdan/duel-arcade/internal/math2d"

// Component is a bit identifying one component type in a slot's mask.
type Component uint8

const (
	CompTransform Component = 1 << iota
	CompSprite
	CompPhysics
	CompTarget

	compAll = CompTransform | CompSprite | CompPhysics | CompTarget
)

// String returns the component name.
func (c Component) String() string {
	switch c {
	case CompTransform:
		return "transform"
	case CompSprite:
		return "sprite"
	case CompPhysics:
		return "physics"
	case CompTarget:
		return "target"
	default:
		return "components"
	}
}

// Transform places an entity in the world. Matrix caches
// translate*rotate*scale and is rebuilt once per frame.
type Transform struct {
	Position math2d.Vector
	Angle    float64 // radians
	ScaleX   float64
	ScaleY   float64
	Matrix   math2d.Matrix

	Owner Handle
}

// Rebuild recomputes Matrix from position, angle and scale.
func (t *Transform) Rebuild() {
	t.Matrix = math2d.Compose(t.Position, t.Angle, t.ScaleX, t.ScaleY)
}

// Sprite references the shape template drawn for an entity.
type Sprite struct {
	Shape *Shape

	Owner Handle
}

// Physics holds an entity's velocity in world units per second.
type Physics struct {
	Velocity math2d.Vector

	Owner Handle
}

// Target points at another entity (homing). The handle may go stale;
// resolve it through the pool before use.
type Target struct {
	Target Handle

	Owner Handle
}
