package config

import (
	_ "embed"
)

//go:embed defaults/duel.yaml
var defaultDuelYAML []byte

// DefaultDuelConfig returns the default duel configuration.
func DefaultDuelConfig() DuelConfig {
	return DuelConfig{
		Field: DuelField{
			Width:  800,
			Height: 600,
		},
		Pool: DuelPool{
			Capacity: 2048,
		},
		Ship: DuelShip{
			Size:        60,
			PlayerStart: -150,
			BotStart:    150,
		},
		Player: DuelPlayer{
			Step: 5,
		},
		Bullets: DuelBullets{
			Speed: 700,
			Scale: 10,
		},
		Combat: DuelCombat{
			MaxHealth:     100,
			Damage:        8,
			HealthPerLife: 25,
			MaxLives:      4,
			MaxAmmo:       5,
			ReloadSecs:    2.5,
		},
		Bot: DuelBot{
			Step:         3.5,
			Deadband:     1.75,
			AutoFire:     false,
			FireInterval: 0.75,
			AimTolerance: 20,
		},
		Gameplay: DuelGameplay{
			WinScore: 3,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 3, // opponent KOs
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:    0.5,
				FireRateMultiplier: 1.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "duel":
		return defaultDuelYAML
	default:
		return nil
	}
}
