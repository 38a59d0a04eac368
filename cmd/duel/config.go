package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/duel-arcade/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration 'duel play' would use after applying
--config and --difficulty, as YAML. Redirect it to a file to start a
custom config:

  duel config --difficulty hard > ~/.arcade/configs/duel.yaml

With --defaults it prints the built-in default file, comments included.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagDefaults {
			fmt.Print(string(config.GetDefaultYAML("duel")))
			return nil
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		data, err := config.MarshalDuel(cfg)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	},
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default config")
}
