package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/duel-arcade/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Print match history and high scores",
	Long: `Display aggregate results, the most recent matches and the best
scores recorded by 'duel play' and 'duel sim --save'.

Examples:
  duel scores
  duel scores --limit 25
  duel scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Rows per section")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all duel history")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(storage.GameID); err != nil {
			return err
		}
		fmt.Println("Duel history cleared.")
		return nil
	}

	stats, err := store.MatchStats()
	if err != nil {
		return err
	}
	if stats.Matches == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'duel play' to record the first one!")
		return nil
	}

	fmt.Println("Fuzzy Duel")
	fmt.Println()
	fmt.Printf("Matches: %d  Won: %d  Lost: %d  Unfinished: %d  Win rate: %.0f%%\n",
		stats.Matches, stats.PlayerWins, stats.BotWins, stats.Unfinished, stats.WinRate()*100)
	fmt.Printf("Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))

	high, err := store.HighScore(storage.GameID)
	if err != nil {
		return err
	}
	fmt.Printf("High score: %d KOs\n", high)

	matches, err := store.RecentMatches(flagLimit)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println("Recent matches")
	fmt.Printf("  %-5s  %-6s  %-7s  %-8s  %s\n", "ID", "Score", "Winner", "Time", "Date")
	fmt.Printf("  %-5s  %-6s  %-7s  %-8s  %s\n", "--", "-----", "------", "----", "----")
	for _, m := range matches {
		fmt.Printf("  %-5d  %-6s  %-7s  %-8s  %s\n", m.ID,
			fmt.Sprintf("%d-%d", m.PlayerScore, m.BotScore), m.Winner,
			m.Duration.Round(time.Second), m.CreatedAt.Format("2006-01-02 15:04"))
	}

	scores, err := store.TopScores(storage.GameID, flagLimit)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println("Most knockouts in a match")
	fmt.Printf("  %-4s  %-5s  %s\n", "Rank", "KOs", "Date")
	fmt.Printf("  %-4s  %-5s  %s\n", "----", "---", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-5d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
