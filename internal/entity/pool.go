package entity

import (
	"fmt"
	"iter"

	"github.com/vovakirdan/duel-arcade/internal/math2d"
)

// DefaultCapacity is the pool size used when none is configured.
const DefaultCapacity = 2048

// Handle identifies a pool slot at a given generation. A handle outlives
// its entity safely: once the slot is destroyed or reused, every lookup
// through the old handle reports nothing.
type Handle struct {
	Index uint32
	Gen   uint32
}

// Nil is the zero handle; generations start at 1 so it never resolves.
var Nil Handle

// IsNil reports whether h is the zero handle.
func (h Handle) IsNil() bool {
	return h.Gen == 0
}

func (h Handle) String() string {
	if h.IsNil() {
		return "entity(nil)"
	}
	return fmt.Sprintf("entity(%d@%d)", h.Index, h.Gen)
}

// slot is the per-entity metadata. mask is empty whenever active is false.
type slot struct {
	active bool
	gen    uint32
	mask   Component
}

// Pool is a fixed-capacity entity store with one dense array per
// component type, indexed by slot. Slots are found by linear scan;
// there is no free list.
type Pool struct {
	shapes *ShapeRegistry

	slots      []slot
	transforms []Transform
	sprites    []Sprite
	physics    []Physics
	targets    []Target

	live int
}

// NewPool allocates a pool of the given capacity. Sprites are resolved
// against shapes.
func NewPool(capacity int, shapes *ShapeRegistry) *Pool {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Pool{
		shapes:     shapes,
		slots:      make([]slot, capacity),
		transforms: make([]Transform, capacity),
		sprites:    make([]Sprite, capacity),
		physics:    make([]Physics, capacity),
		targets:    make([]Target, capacity),
	}
}

// Cap returns the pool capacity.
func (p *Pool) Cap() int {
	return len(p.slots)
}

// Len returns the number of active entities.
func (p *Pool) Len() int {
	return p.live
}

// Create activates the first free slot and attaches the components
// for kind. It fails without touching the pool when kind is unknown,
// its shape is not loaded, or every slot is active.
func (p *Pool) Create(kind Kind) (Handle, error) {
	shape, err := p.shapes.Lookup(kind)
	if err != nil {
		return Nil, err
	}

	for i := range p.slots {
		s := &p.slots[i]
		if s.active {
			continue
		}

		s.gen++
		if s.gen == 0 { // wrapped, skip the nil generation
			s.gen = 1
		}
		s.active = true
		s.mask = 0
		h := Handle{Index: uint32(i), Gen: s.gen} //nolint:gosec // i < capacity

		switch kind {
		case KindShip, KindBot, KindPlayerBullet, KindBotBullet:
			p.attachSprite(h, shape)
			p.AttachTransform(h, math2d.Vector{}, 0, 1, 1)
			p.AttachPhysics(h, math2d.Vector{})
		}

		p.live++
		return h, nil
	}

	return Nil, ErrPoolFull
}

// Destroy releases every component of h and deactivates its slot.
// Destroying a stale or already destroyed handle is a no-op and
// returns false.
func (p *Pool) Destroy(h Handle) bool {
	s := p.slot(h)
	if s == nil {
		return false
	}

	p.Detach(h, compAll)
	s.active = false
	p.live--
	return true
}

// Clear destroys every active entity.
func (p *Pool) Clear() {
	for h := range p.All() {
		p.Destroy(h)
	}
}

// Alive reports whether h refers to an active entity.
func (p *Pool) Alive(h Handle) bool {
	return p.slot(h) != nil
}

// Has reports whether every component in c is attached to h.
func (p *Pool) Has(h Handle, c Component) bool {
	s := p.slot(h)
	return s != nil && s.mask&c == c
}

// Kind returns the kind of h's sprite shape.
func (p *Pool) Kind(h Handle) (Kind, bool) {
	sp := p.Sprite(h)
	if sp == nil || sp.Shape == nil {
		return 0, false
	}
	return sp.Shape.Kind, true
}

// All iterates over the handles of active entities in slot order.
// Destroying entities while iterating is allowed.
func (p *Pool) All() iter.Seq[Handle] {
	return func(yield func(Handle) bool) {
		for i := range p.slots {
			s := &p.slots[i]
			if !s.active {
				continue
			}
			if !yield(Handle{Index: uint32(i), Gen: s.gen}) { //nolint:gosec // i < capacity
				return
			}
		}
	}
}

// Transform returns h's transform, or nil if absent or h is stale.
func (p *Pool) Transform(h Handle) *Transform {
	if !p.Has(h, CompTransform) {
		return nil
	}
	return &p.transforms[h.Index]
}

// Sprite returns h's sprite, or nil if absent or h is stale.
func (p *Pool) Sprite(h Handle) *Sprite {
	if !p.Has(h, CompSprite) {
		return nil
	}
	return &p.sprites[h.Index]
}

// Physics returns h's physics, or nil if absent or h is stale.
func (p *Pool) Physics(h Handle) *Physics {
	if !p.Has(h, CompPhysics) {
		return nil
	}
	return &p.physics[h.Index]
}

// Target returns h's target, or nil if absent or h is stale.
func (p *Pool) Target(h Handle) *Target {
	if !p.Has(h, CompTarget) {
		return nil
	}
	return &p.targets[h.Index]
}

// AttachTransform attaches (or overwrites) h's transform.
func (p *Pool) AttachTransform(h Handle, pos math2d.Vector, angle, scaleX, scaleY float64) bool {
	s := p.slot(h)
	if s == nil {
		return false
	}
	t := &p.transforms[h.Index]
	*t = Transform{Position: pos, Angle: angle, ScaleX: scaleX, ScaleY: scaleY, Owner: h}
	t.Rebuild()
	s.mask |= CompTransform
	return true
}

// AttachSprite attaches (or overwrites) h's sprite with the shape for kind.
func (p *Pool) AttachSprite(h Handle, kind Kind) error {
	shape, err := p.shapes.Lookup(kind)
	if err != nil {
		return err
	}
	if !p.attachSprite(h, shape) {
		return fmt.Errorf("entity: attach sprite to %s: not alive", h)
	}
	return nil
}

func (p *Pool) attachSprite(h Handle, shape *Shape) bool {
	s := p.slot(h)
	if s == nil {
		return false
	}
	p.sprites[h.Index] = Sprite{Shape: shape, Owner: h}
	s.mask |= CompSprite
	return true
}

// AttachPhysics attaches (or overwrites) h's physics.
func (p *Pool) AttachPhysics(h Handle, velocity math2d.Vector) bool {
	s := p.slot(h)
	if s == nil {
		return false
	}
	p.physics[h.Index] = Physics{Velocity: velocity, Owner: h}
	s.mask |= CompPhysics
	return true
}

// AttachTarget attaches (or overwrites) h's target.
func (p *Pool) AttachTarget(h, target Handle) bool {
	s := p.slot(h)
	if s == nil {
		return false
	}
	p.targets[h.Index] = Target{Target: target, Owner: h}
	s.mask |= CompTarget
	return true
}

// Detach removes the components in c from h and zeroes their storage.
func (p *Pool) Detach(h Handle, c Component) {
	s := p.slot(h)
	if s == nil {
		return
	}
	i := h.Index
	if c&CompTransform != 0 {
		p.transforms[i] = Transform{}
	}
	if c&CompSprite != 0 {
		p.sprites[i] = Sprite{}
	}
	if c&CompPhysics != 0 {
		p.physics[i] = Physics{}
	}
	if c&CompTarget != 0 {
		p.targets[i] = Target{}
	}
	s.mask &^= c
}

// slot resolves h to its active slot, or nil for stale/inactive handles.
func (p *Pool) slot(h Handle) *slot {
	if h.IsNil() || int(h.Index) >= len(p.slots) {
		return nil
	}
	s := &p.slots[h.Index]
	if !s.active || s.gen != h.Gen {
		return nil
	}
	return s
}
