package main

import (
	"github.com/spf13/cobra"
)

var configPath string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bingodeck",
		Short: "Build and simulate music bingo decks",
		Long: "bingodeck drives the music-bingo core: a deterministic card constructor " +
			"and game simulator that lands 1st/2nd/3rd place on operator-chosen call rounds.",
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file (optional)")

	root.AddCommand(newValidateCmd())
	root.AddCommand(newGenerateCmd())
	root.AddCommand(newSimulateCmd())

	return root
}
