package deck

import (
	"testing"

	"github.com/cardcaller/musicbingo"
	"github.com/cardcaller/musicbingo/buildlog"
	"github.com/cardcaller/musicbingo/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateWinProbabilityReturnsFractionInRange(t *testing.T) {
	playlist := playlistOf(100)
	seed := int64(0)
	assembleFn := func() (*bingo.Deck, error) {
		seed++
		return Assemble(playlist, 10, 5, ptr(10), ptr(20), ptr(30), true, rng.New(seed), buildlog.New())
	}

	prob, err := EstimateWinProbability(assembleFn, playlist, 1, 20)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, prob, 0.0)
	assert.LessOrEqual(t, prob, 1.0)
}

func TestEstimateWinProbabilityRejectsNonPositiveTrials(t *testing.T) {
	playlist := playlistOf(10)
	_, err := EstimateWinProbability(func() (*bingo.Deck, error) {
		return Assemble(playlist, 3, 3, nil, nil, nil, true, rng.New(1), buildlog.New())
	}, playlist, 1, 0)
	assert.Error(t, err)
}
