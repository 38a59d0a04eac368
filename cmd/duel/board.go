package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/duel-arcade/internal/platform/tui"
	"github.com/vovakirdan/duel-arcade/internal/storage"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse match history interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	},
}
