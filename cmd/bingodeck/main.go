// Command bingodeck is a thin CLI host over the music-bingo core: it
// reads an ordered playlist from disk, loads optional TOML defaults, and
// exposes the core's three public operations (validate, generate,
// simulate) as cobra subcommands. It owns logging, config, and playlist
// ingestion; the core packages stay pure and never touch the filesystem
// or a logger themselves.
package main

import (
	"os"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func main() {
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := newRootCmd().Execute(); err != nil {
		logger.Error().Err(err).Msg("bingodeck failed")
		os.Exit(1)
	}
}
