package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the CLI's tunable defaults for generate/validate: card
// size, deck size, the free-space flag, the RNG seed, and the three target
// rounds. The first and second rounds may be left unset (zero) to let the
// deck assembler infer them; leaving the blackout round unset builds a
// deck with no targets at all.
type Config struct {
	CardSize    int   `toml:"card_size"`
	DeckSize    int   `toml:"deck_size"`
	FreeSpace   bool  `toml:"free_space"`
	FirstRound  int   `toml:"first_round"`
	SecondRound int   `toml:"second_round"`
	Blackout    int   `toml:"blackout_round"`
	RandomSeed  int64 `toml:"random_seed"`
}

// DefaultConfig returns the CLI's built-in defaults, used whenever no
// config file is supplied or the file is missing.
func DefaultConfig() Config {
	return Config{
		CardSize:   5,
		DeckSize:   10,
		FreeSpace:  true,
		RandomSeed: 1,
	}
}

// LoadConfig reads a TOML config file. A missing file is not an error;
// it yields DefaultConfig() so the CLI works without any setup.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), fmt.Errorf("reading config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, &config); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config file %s: %w", path, err)
	}

	return config, nil
}
