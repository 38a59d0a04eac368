// Package headless runs duels without a terminal: a seeded autopilot
// plays the ship, the bot flies itself, and the runner aggregates each
// frame's report. Runs with the same seed and configuration are
// identical.
package headless

import (
	"math/rand"

	"github.com/vovakirdan/duel-arcade/internal/core"
)

// Autopilot defaults.
const (
	DefaultFireChance = 0.05 // per frame
	minHold           = 10   // frames a chosen direction is held
	maxHold           = 40
)

var moves = []core.Action{
	core.ActionNone,
	core.ActionLeft,
	core.ActionRight,
	core.ActionUp,
	core.ActionDown,
}

// Autopilot produces Player1 input from a seeded RNG. It wanders by
// holding a random direction for a random number of frames and fires
// with a fixed per-frame chance.
type Autopilot struct {
	rng        *rand.Rand
	fireChance float64
	move       core.Action
	hold       int
}

// NewAutopilot creates an autopilot seeded with seed.
func NewAutopilot(seed int64, fireChance float64) *Autopilot {
	a := &Autopilot{fireChance: fireChance}
	a.Reset(seed)
	return a
}

// Reset reseeds the RNG and forgets the current direction.
func (a *Autopilot) Reset(seed int64) {
	a.rng = rand.New(rand.NewSource(seed))
	a.move = core.ActionNone
	a.hold = 0
}

// Next returns the input for one frame.
func (a *Autopilot) Next() core.InputFrame {
	if a.hold <= 0 {
		a.move = moves[a.rng.Intn(len(moves))]
		a.hold = minHold + a.rng.Intn(maxHold-minHold+1)
	}
	a.hold--

	in := core.NewInputFrame()
	if a.move != core.ActionNone {
		in.Set(a.move)
	}
	if a.rng.Float64() < a.fireChance {
		in.Set(core.ActionFire)
	}
	return in
}
