package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/duel-arcade/internal/core"
	"github.com/vovakirdan/duel-arcade/internal/games/duel"
	"github.com/vovakirdan/duel-arcade/internal/headless"
	"github.com/vovakirdan/duel-arcade/internal/storage"
)

var (
	flagRuns       int
	flagFrames     int
	flagFireChance float64
	flagSave       bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless matches with an autopilot",
	Long: `Run duels without a terminal. A seeded autopilot plays the ship; the
bot flies and (with auto_fire or a difficulty preset) shoots on its own.
Each run uses seed+i, so the same flags reproduce the same matches.

Examples:
  duel sim
  duel sim --runs 20 --seed 7 --difficulty hard
  duel sim --frames 3600 --save`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagRuns, "runs", 1, "Number of matches to simulate")
	simCmd.Flags().IntVar(&flagFrames, "frames", headless.DefaultMaxFrames, "Frame limit per match")
	simCmd.Flags().Float64Var(&flagFireChance, "fire-chance", headless.DefaultFireChance, "Autopilot trigger probability per frame")
	simCmd.Flags().BoolVar(&flagSave, "save", false, "Record results in the scores database")
}

func runSim(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	var store *storage.Store
	if flagSave {
		if store, err = storage.Open(flagDBPath); err != nil {
			return err
		}
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var total duel.Report
	wins := map[core.PlayerID]int{}
	fmt.Printf("  %-4s  %-6s  %-7s  %-7s  %-5s  %s\n", "Run", "Score", "Winner", "Frames", "Hits", "Fallbacks")
	for i := range max(1, flagRuns) {
		rc := core.DefaultConfig()
		rc.TickRate = flagFPS
		rc.Seed = seed + int64(i)

		game := duel.New(duel.WithConfig(cfg), duel.WithLogger(logger))
		res, err := headless.New(game, rc,
			headless.WithMaxFrames(flagFrames),
			headless.WithFireChance(flagFireChance),
			headless.WithLogger(logger),
		).Run(ctx)
		if err != nil {
			if ctx.Err() != nil {
				fmt.Println("interrupted")
				break
			}
			return err
		}

		total.Add(res.Report)
		winner := winnerName(res.State)
		if res.State.GameOver {
			wins[res.State.Winner]++
		}
		fmt.Printf("  %-4d  %-6s  %-7s  %-7d  %-5d  %d\n", i+1,
			fmt.Sprintf("%d-%d", res.State.Score, res.State.OpponentScore),
			winner, res.Frames, res.Report.Hits, res.Report.FuzzyFallbacks)

		if store != nil {
			if _, err := store.SaveMatch(storage.MatchResult{
				PlayerScore: res.State.Score,
				BotScore:    res.State.OpponentScore,
				Winner:      winner,
				Frames:      res.Frames,
				Duration:    time.Duration(res.Elapsed * float64(time.Second)),
			}); err != nil {
				return err
			}
		}
	}

	fmt.Println()
	fmt.Printf("Seed %d: player %d, bot %d\n", seed, wins[core.Player1], wins[core.Player2])
	fmt.Printf("Shots %d, hits %d, knockouts %d, dropped spawns %d\n",
		total.Spawns, total.Hits, len(total.KOs), total.DroppedSpawns)
	return nil
}

// winnerName maps a final state to the stored winner value.
func winnerName(s core.GameState) string {
	switch {
	case !s.GameOver:
		return storage.WinnerNone
	case s.Winner == core.Player1:
		return storage.WinnerPlayer
	default:
		return storage.WinnerBot
	}
}
