package duel

import (
	"math"

	"github.com/vovakirdan/duel-arcade/internal/config"
	"github.com/vovakirdan/duel-arcade/internal/fuzzy"
	"github.com/vovakirdan/duel-arcade/internal/math2d"
)

// Pilot steers the bot: the bearing heuristic drives it sideways, the
// fuzzy controller picks its height, and an optional trigger fires when
// the player is lined up.
type Pilot struct {
	controller *fuzzy.Controller
	deadband   float64

	autoFire     bool
	aimTolerance float64
	cooldown     float64

	offset  float64 // last lateral offset
	targetY float64 // last fuzzy target
}

// NewPilot builds a pilot whose target height is clamped to
// [ship size, field top - ship size].
func NewPilot(cfg config.DuelConfig) *Pilot {
	top := cfg.Field.Height / 2
	return &Pilot{
		controller:   fuzzy.NewController(cfg.Ship.Size, top-cfg.Ship.Size, cfg.Ship.BotStart),
		deadband:     cfg.Bot.Deadband,
		autoFire:     cfg.Bot.AutoFire,
		aimTolerance: cfg.Bot.AimTolerance,
		targetY:      cfg.Ship.BotStart,
	}
}

// Reset forgets the previous target and holds y.
func (p *Pilot) Reset(y float64) {
	p.controller.Reset(y)
	p.cooldown = 0
	p.offset = 0
	p.targetY = y
}

// Offset returns the lateral offset computed by the last Steer.
func (p *Pilot) Offset() float64 {
	return p.offset
}

// TargetY returns the height chosen by the last Steer.
func (p *Pilot) TargetY() float64 {
	return p.targetY
}

// Steer returns the bot's position after one frame of pursuit. The error
// is fuzzy.ErrNoRuleFired when the controller fell back to its held value;
// the returned position is valid either way.
func (p *Pilot) Steer(bot, ship math2d.Vector, angle float64, bs Side, step float64) (math2d.Vector, error) {
	p.offset = fuzzy.FindPlayer(ship.Sub(bot), math2d.FromAngle(angle))
	y, err := p.controller.TargetY(bs.Health, float64(bs.Ammo), math.Abs(ship.Y))
	p.targetY = y
	return Pursue(bot, p.offset, y, step, p.deadband), err
}

// Pursue moves pos at most step per axis toward the target. Horizontally
// it moves only when the offset exceeds a full step; vertically it steps
// while farther than the snap band and snaps once within it. The band is
// never narrower than half a step, so a step cannot jump across it.
func Pursue(pos math2d.Vector, offset, targetY, step, deadband float64) math2d.Vector {
	switch {
	case offset > step:
		pos.X += step
	case offset < -step:
		pos.X -= step
	}

	band := max(deadband, step/2)
	switch diff := targetY - pos.Y; {
	case diff > band:
		pos.Y += step
	case diff < -band:
		pos.Y -= step
	default:
		pos.Y = targetY
	}
	return pos
}

// Trigger advances the autopilot cooldown by dt and reports whether the
// bot should fire this frame.
func (p *Pilot) Trigger(dt, offset, interval float64, loaded bool) bool {
	p.cooldown -= dt
	if !p.autoFire || !loaded || p.cooldown > 0 {
		return false
	}
	if math.Abs(offset) > p.aimTolerance {
		return false
	}
	p.cooldown = interval
	return true
}
