package main

import (
	"fmt"

	"github.com/cardcaller/musicbingo/targets"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	var (
		playlistPath string
		size         int
		first        int
		second       int
		blackout     int
		freeSpace    bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a target round triple for feasibility against a playlist",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			if size == 0 {
				size = config.CardSize
			}
			if first == 0 {
				first = config.FirstRound
			}
			if second == 0 {
				second = config.SecondRound
			}
			if blackout == 0 {
				blackout = config.Blackout
			}
			if !cmd.Flags().Changed("free-space") {
				freeSpace = config.FreeSpace
			}

			playlist, err := readPlaylist(playlistPath)
			if err != nil {
				return err
			}

			r1, r2, full := optionalRound(first), optionalRound(second), optionalRound(blackout)
			if err := targets.Validate(size, len(playlist), r1, r2, full, freeSpace); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "OK: target rounds are feasible")
			return nil
		},
	}

	cmd.Flags().StringVar(&playlistPath, "playlist", "", "path to the ordered playlist file (required)")
	cmd.Flags().IntVar(&size, "size", 0, "card dimension N (defaults to config)")
	cmd.Flags().IntVar(&first, "first", 0, "1st place round r1 (0 = unset)")
	cmd.Flags().IntVar(&second, "second", 0, "2nd place round r2 (0 = unset)")
	cmd.Flags().IntVar(&blackout, "blackout", 0, "3rd place round R (0 = unset)")
	cmd.Flags().BoolVar(&freeSpace, "free-space", true, "use a free center cell on odd-sized cards")
	cmd.MarkFlagRequired("playlist")

	return cmd
}

// optionalRound turns a 0-as-unset CLI int flag into the *int the core
// expects, where nil means "let the assembler infer this round."
func optionalRound(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}
