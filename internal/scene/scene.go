// Package scene sequences the lifecycle of game scenes: a Scene is loaded,
// initialized, updated and drawn once per frame, then freed and unloaded.
// Scenes are selected by ID from a Registry; the Manager drives the
// transitions, including restarts that re-initialize without reloading.
package scene

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/duel-arcade/internal/core"
)

// Scene is one game state with a six-step lifecycle.
// Load and Unload bracket resources (meshes, pools); Init and Free
// bracket a single play-through and may repeat in between.
type Scene interface {
	Load() error
	Init()
	Update(f core.Frame)
	Draw(r core.Renderer)
	Free()
	Unload()
}

// ID selects a scene. Restart and Quit are control values, never registered.
type ID int

const (
	Duel ID = iota
	Restart
	Quit
)

// ErrUnknownScene is returned when an ID has no registered factory.
var ErrUnknownScene = errors.New("scene: unknown scene")

// String returns the scene name.
func (id ID) String() string {
	switch id {
	case Duel:
		return "duel"
	case Restart:
		return "restart"
	case Quit:
		return "quit"
	default:
		return fmt.Sprintf("scene(%d)", int(id))
	}
}

// IsControl reports whether id is a control value rather than a scene.
func (id ID) IsControl() bool {
	return id == Restart || id == Quit
}

// ParseID is the inverse of String for registrable scenes.
func ParseID(s string) (ID, error) {
	if s == Duel.String() {
		return Duel, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownScene, s)
}
