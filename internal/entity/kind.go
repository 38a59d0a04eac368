// Package entity implements the fixed-capacity entity pool: slots with an
// active flag and a generation, arena storage for the Transform, Sprite,
// Physics and Target components, and the shape templates sprites refer to.
package entity

import (
	"errors"
	"fmt"
)

// Kind is the object-type tag of a shape template.
type Kind int

const (
	KindShip Kind = iota
	KindBot
	KindPlayerBullet
	KindBotBullet

	kindCount
)

// Kinds lists every valid kind in declaration order.
var Kinds = []Kind{KindShip, KindBot, KindPlayerBullet, KindBotBullet}

var (
	// ErrUnknownKind is returned for a kind outside the enum.
	ErrUnknownKind = errors.New("entity: unknown kind")

	// ErrPoolFull is returned by Create when every slot is active.
	ErrPoolFull = errors.New("entity: pool capacity exhausted")
)

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k >= 0 && k < kindCount
}

// IsBullet reports whether k is a projectile kind.
func (k Kind) IsBullet() bool {
	return k == KindPlayerBullet || k == KindBotBullet
}

// String returns the mesh/template name of the kind.
func (k Kind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindBot:
		return "bot"
	case KindPlayerBullet:
		return "player_bullet"
	case KindBotBullet:
		return "bot_bullet"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind is the inverse of String.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}
