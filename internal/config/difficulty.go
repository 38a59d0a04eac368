package config

import "math"

// minFireInterval keeps the autopilot from firing every frame.
const minFireInterval = 0.1

// DifficultyManager calculates dynamic bot parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager. The initial level
// is clamped to [0, 1].
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
// A disabled manager reports level 0.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.cfg.Enabled {
		return 0
	}
	if d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// BotStep returns the bot's per-frame step for the current level. The step
// ramps from baseStep*(1-speedMultiplier) at level 0 up to baseStep at
// level 1 and never exceeds baseStep. A disabled manager returns baseStep.
func (d *DifficultyManager) BotStep(baseStep float64, score int, ticks int) float64 {
	if !d.cfg.Enabled {
		return baseStep
	}
	level := d.Level(score, ticks)
	slow := clampF(d.cfg.Scaling.SpeedMultiplier, 0.0, 1.0)
	return baseStep * (1.0 - (1.0-level)*slow)
}

// FireInterval returns the autopilot's seconds between shots for the current level.
func (d *DifficultyManager) FireInterval(baseInterval float64, score int, ticks int) float64 {
	level := d.Level(score, ticks)
	// Fire rate grows from 1/base to (1 + fireRateMultiplier)/base
	interval := baseInterval / (1.0 + level*d.cfg.Scaling.FireRateMultiplier)
	if interval < minFireInterval {
		interval = minFireInterval
	}
	return interval
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
