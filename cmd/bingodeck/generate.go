package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cardcaller/musicbingo/buildlog"
	"github.com/cardcaller/musicbingo/deck"
	"github.com/cardcaller/musicbingo/rng"
	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	var (
		playlistPath string
		outPath      string
		size         int
		count        int
		first        int
		second       int
		blackout     int
		freeSpace    bool
		seed         int64
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build a deck of bingo cards over an ordered playlist",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			if size == 0 {
				size = config.CardSize
			}
			if count == 0 {
				count = config.DeckSize
			}
			if seed == 0 {
				seed = config.RandomSeed
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
			log := buildlog.New()

			d, err := deck.Assemble(playlist, count, size, r1, r2, full, freeSpace, rng.New(seed), log)
			if err != nil {
				return err
			}

			for _, event := range log.Events() {
				logger.Warn().
					Str("type", string(event.Type)).
					Int("card", event.CardIndex).
					Msg(event.Message)
			}
			logger.Info().
				Int("cards", len(d.Cards)).
				Str("deck_id", d.ID.String()).
				Msg("deck generated")

			out, err := json.MarshalIndent(d, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding deck: %w", err)
			}

			return writeOutput(outPath, out)
		},
	}

	cmd.Flags().StringVar(&playlistPath, "playlist", "", "path to the ordered playlist file (required)")
	cmd.Flags().StringVar(&outPath, "out", "", "path to write the deck JSON (default: stdout)")
	cmd.Flags().IntVar(&size, "size", 0, "card dimension N (defaults to config)")
	cmd.Flags().IntVar(&count, "count", 0, "number of cards K (defaults to config)")
	cmd.Flags().IntVar(&first, "first", 0, "1st place round r1 (0 = infer)")
	cmd.Flags().IntVar(&second, "second", 0, "2nd place round r2 (0 = infer)")
	cmd.Flags().IntVar(&blackout, "blackout", 0, "3rd place round R (0 = no targets at all)")
	cmd.Flags().BoolVar(&freeSpace, "free-space", true, "use a free center cell on odd-sized cards")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed (defaults to config; determinism requires a fixed seed)")
	cmd.MarkFlagRequired("playlist")

	return cmd
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		fmt.Println(string(data))
		return nil
	}
	return os.WriteFile(path, data, 0644)
}
