// duel is a terminal shoot-out between a player ship and a fuzzy-logic bot.
//
// Usage:
//
//	duel play                - Play in the terminal
//	duel sim                 - Run headless matches with an autopilot
//	duel scores              - Print match history and high scores
//	duel board               - Browse match history interactively
//	duel config              - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set the autopilot RNG seed
//	--db <path>            - Set database path (default: ~/.arcade/scores.db)
//	--config <path>        - Custom duel.yaml
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--log-level <level>    - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/duel-arcade/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "duel",
	Short: "Fuzzy Duel - outshoot a fuzzy-logic bot in your terminal",
	Long: `Fuzzy Duel pits your ship against a bot that steers with a
Sugeno fuzzy controller driven by its health, its ammo and your distance.

Available commands:
  play     - Play in the terminal
  sim      - Run headless matches with an autopilot
  scores   - Print match history and high scores
  board    - Browse match history interactively
  config   - Print the effective configuration

Examples:
  duel play
  duel play --difficulty hard
  duel sim --runs 10 --seed 42
  duel scores`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Autopilot RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom duel config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves --config and --difficulty into a validated config.
func loadConfig() (config.DuelConfig, error) {
	cfg, err := config.LoadDuel(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty == "" {
		return cfg, nil
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyDuelPreset(&cfg, preset)
	return cfg, cfg.Validate()
}

// newLogger creates a logger at --log-level writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "duel",
		Level:           level,
	}), nil
}

// openLogFile opens ~/.arcade/duel.log for appending, so logging does not
// corrupt the alternate screen.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".arcade")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "duel.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}
