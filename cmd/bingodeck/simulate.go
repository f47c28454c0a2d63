package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cardcaller/musicbingo"
	"github.com/cardcaller/musicbingo/simulate"
	"github.com/spf13/cobra"
)

func newSimulateCmd() *cobra.Command {
	var (
		playlistPath string
		deckPath     string
		outPath      string
		first        int
		second       int
		blackout     int
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Replay a playlist over a previously generated deck",
		RunE: func(cmd *cobra.Command, args []string) error {
			playlist, err := readPlaylist(playlistPath)
			if err != nil {
				return err
			}

			d, err := readDeck(deckPath)
			if err != nil {
				return err
			}

			r1, r2, full := optionalRound(first), optionalRound(second), optionalRound(blackout)
			report := simulate.Run(d, playlist, r1, r2, full)

			logger.Info().
				Int("cards", len(report.Records)).
				Int("places_assigned", len(report.Places)).
				Msg("simulation complete")

			out, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding report: %w", err)
			}

			return writeOutput(outPath, out)
		},
	}

	cmd.Flags().StringVar(&playlistPath, "playlist", "", "path to the ordered playlist file (required)")
	cmd.Flags().StringVar(&deckPath, "deck", "", "path to a deck JSON file produced by generate (required)")
	cmd.Flags().StringVar(&outPath, "out", "", "path to write the simulation report JSON (default: stdout)")
	cmd.Flags().IntVar(&first, "first", 0, "1st place eligibility floor r1 (0 = unset)")
	cmd.Flags().IntVar(&second, "second", 0, "2nd place eligibility floor r2 (0 = unset)")
	cmd.Flags().IntVar(&blackout, "blackout", 0, "3rd place eligibility floor R (0 = unset)")
	cmd.MarkFlagRequired("playlist")
	cmd.MarkFlagRequired("deck")

	return cmd
}

func readDeck(path string) (*bingo.Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading deck file: %w", err)
	}
	var d bingo.Deck
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing deck file: %w", err)
	}
	return &d, nil
}
