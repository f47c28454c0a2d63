package deck

import (
	"fmt"

	"github.com/cardcaller/musicbingo"
	"github.com/cardcaller/musicbingo/simulate"
)

// EstimateWinProbability repeatedly builds a deck with assembleFn and
// simulates it, reporting the fraction of trials in which the card at
// slot targetCardIdx (1-based, matching MilestoneRecord.CardIndex) wins
// 1st place (§9.7, grounded on original_source/app.py's
// calculate_win_probability). assembleFn is expected to draw from its own
// rng.Source so each trial sees a fresh deck; this helper does not own an
// RNG itself.
func EstimateWinProbability(assembleFn func() (*bingo.Deck, error), playlist []bingo.Song, targetCardIdx int, trials int) (float64, error) {
	if trials <= 0 {
		return 0, fmt.Errorf("deck: trials must be positive, got %d", trials)
	}

	wins := 0
	for i := 0; i < trials; i++ {
		d, err := assembleFn()
		if err != nil {
			return 0, fmt.Errorf("deck: trial %d: %w", i, err)
		}
		if targetCardIdx < 1 || targetCardIdx > len(d.Cards) {
			return 0, fmt.Errorf("deck: target card index %d out of range for a %d-card deck", targetCardIdx, len(d.Cards))
		}

		report := simulate.Run(d, playlist, nil, nil, nil)
		if winner, ok := report.Places[1]; ok && winner == targetCardIdx {
			wins++
		}
	}

	return float64(wins) / float64(trials), nil
}
