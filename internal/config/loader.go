package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDuel loads the duel configuration.
// Search order: customPath -> ~/.arcade/configs/duel.yaml -> ./configs/duel.yaml -> embedded default
// Files overlay DefaultDuelConfig, so a partial file only changes what it names.
func LoadDuel(customPath string) (DuelConfig, error) {
	cfg := DefaultDuelConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("duel.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, loaded.Validate()
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", "duel.yaml")); ok {
		return loaded, loaded.Validate()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultDuelYAML, &cfg); err != nil {
		return DefaultDuelConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// tryLoad reads an optional config file; missing or malformed files are skipped.
func tryLoad(path string) (DuelConfig, bool) {
	cfg := DefaultDuelConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyDuelPreset modifies the config based on a difficulty preset.
func ApplyDuelPreset(cfg *DuelConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Presets also decide whether the bot pulls its own trigger
	switch preset {
	case DifficultyEasy:
		cfg.Bot.AutoFire = false
	case DifficultyNormal:
		cfg.Bot.AutoFire = true
		cfg.Bot.FireInterval = 1.0
	case DifficultyHard:
		cfg.Bot.AutoFire = true
		cfg.Bot.FireInterval = 0.5
		cfg.Bot.AimTolerance = 35
	}
}

// MarshalDuel renders cfg as YAML.
func MarshalDuel(cfg DuelConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
