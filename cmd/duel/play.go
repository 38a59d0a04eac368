package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/duel-arcade/internal/core"
	"github.com/vovakirdan/duel-arcade/internal/platform/tui"
	"github.com/vovakirdan/duel-arcade/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a duel in the terminal",
	Long: `Start a duel against the fuzzy bot.

Controls:
  Arrows/WASD  - Move (your own half only)
  Space        - Fire
  B            - Make the bot fire
  P/Esc        - Pause
  R            - Restart
  Ctrl+S       - Screenshot to ~/.arcade/screenshots
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Bot fires only on B, mild progression
  normal - Bot fires on its own once a second
  hard   - Bot fires twice a second with a wider aim
  fixed  - No progression, configuration as written

Logs go to ~/.arcade/duel.log.

Examples:
  duel play
  duel play --difficulty hard
  duel play --config ./my-duel.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if f, err := openLogFile(); err == nil {
		defer f.Close()
		logOut = f
	} else {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
	}
	logger, err := newLogger(logOut)
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without match history", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting", "fps", flagFPS, "difficulty", flagDifficulty, "size", fmt.Sprintf("%dx%d", width, height))
	return tui.Run(tui.Options{
		Duel: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Store:  store,
		Logger: logger,
	})
}
