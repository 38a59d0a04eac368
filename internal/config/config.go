// Package config provides YAML-based configuration loading and
// difficulty management for the duel.
package config

import (
	"errors"
	"fmt"
)

// DuelConfig contains all configuration for the duel.
type DuelConfig struct {
	Field      DuelField        `yaml:"field"`
	Pool       DuelPool         `yaml:"pool"`
	Ship       DuelShip         `yaml:"ship"`
	Player     DuelPlayer       `yaml:"player"`
	Bullets    DuelBullets      `yaml:"bullets"`
	Combat     DuelCombat       `yaml:"combat"`
	Bot        DuelBot          `yaml:"bot"`
	Gameplay   DuelGameplay     `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// DuelField defines the world viewport, centered on the origin.
type DuelField struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// DuelPool defines entity pool sizing.
type DuelPool struct {
	Capacity int `yaml:"capacity"`
}

// DuelShip defines both ships' size and start positions.
type DuelShip struct {
	Size        float64 `yaml:"size"`
	PlayerStart float64 `yaml:"player_start_y"`
	BotStart    float64 `yaml:"bot_start_y"`
}

// DuelPlayer defines the human ship's movement.
type DuelPlayer struct {
	Step float64 `yaml:"step"` // units per frame per held direction
}

// DuelBullets defines projectile parameters.
type DuelBullets struct {
	Speed float64 `yaml:"speed"`
	Scale float64 `yaml:"scale"`
}

// DuelCombat defines health, damage and ammunition rules shared by both sides.
type DuelCombat struct {
	MaxHealth     float64 `yaml:"max_health"`
	Damage        float64 `yaml:"damage"`
	HealthPerLife float64 `yaml:"health_per_life"`
	MaxLives      int     `yaml:"max_lives"`
	MaxAmmo       int     `yaml:"max_ammo"`
	ReloadSecs    float64 `yaml:"reload_secs"`
}

// DuelBot defines the bot's pursuit and its optional autopilot trigger.
type DuelBot struct {
	Step         float64 `yaml:"step"`     // max units per axis per frame
	Deadband     float64 `yaml:"deadband"` // vertical snap distance
	AutoFire     bool    `yaml:"auto_fire"`
	FireInterval float64 `yaml:"fire_interval"` // seconds between autopilot shots
	AimTolerance float64 `yaml:"aim_tolerance"` // max |lateral offset| to fire
}

// DuelGameplay defines match rules.
type DuelGameplay struct {
	WinScore int `yaml:"win_score"` // 0 = endless
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier    float64 `yaml:"speed_multiplier"`     // Fraction of bot step taken away at level 0
	FireRateMultiplier float64 `yaml:"fire_rate_multiplier"` // Added to autopilot fire rate at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid duel config")

// Validate rejects configurations the simulation cannot run with.
func (c DuelConfig) Validate() error {
	checks := []struct {
		ok   bool
		what string
	}{
		{c.Field.Width > 0 && c.Field.Height > 0, "field size must be positive"},
		{c.Pool.Capacity >= 2, "pool.capacity must hold both ships"},
		{c.Ship.Size > 0, "ship.size must be positive"},
		{c.Ship.Size < c.Field.Height/2, "ship.size must fit in half the field"},
		{c.Player.Step > 0, "player.step must be positive"},
		{c.Bullets.Speed > 0 && c.Bullets.Scale > 0, "bullets need a positive speed and scale"},
		{c.Combat.MaxHealth > 0 && c.Combat.Damage > 0, "combat health and damage must be positive"},
		{c.Combat.HealthPerLife > 0 && c.Combat.MaxLives > 0, "combat lives settings must be positive"},
		{c.Combat.MaxAmmo > 0, "combat.max_ammo must be positive"},
		{c.Combat.ReloadSecs >= 0, "combat.reload_secs must not be negative"},
		{c.Bot.Step > 0 && c.Bot.Deadband >= 0, "bot step must be positive and deadband not negative"},
		{!c.Bot.AutoFire || c.Bot.FireInterval > 0, "bot.fire_interval must be positive with auto_fire"},
		{c.Gameplay.WinScore >= 0, "gameplay.win_score must not be negative"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, chk.what)
		}
	}
	return nil
}
