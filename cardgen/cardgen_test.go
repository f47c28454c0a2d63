package cardgen

import (
	"fmt"
	"testing"

	"github.com/cardcaller/musicbingo"
	"github.com/cardcaller/musicbingo/buildlog"
	"github.com/cardcaller/musicbingo/milestone"
	"github.com/cardcaller/musicbingo/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playlistOf(n int) []bingo.Song {
	out := make([]bingo.Song, n)
	for i := 0; i < n; i++ {
		out[i] = bingo.Song(fmt.Sprintf("S_%03d", i+1))
	}
	return out
}

func TestBuildCardAHitsBlackoutAtFull(t *testing.T) {
	playlist := playlistOf(100)
	full := 30
	card, err := BuildCardA(playlist, 5, true, full, rng.New(11), buildlog.New(), 1)
	require.NoError(t, err)

	rec := milestone.Evaluate(card, playlist)
	require.NotNil(t, rec.Full)
	assert.Equal(t, full, *rec.Full)
}

func TestBuildCardAFreeSpacePlacement(t *testing.T) {
	playlist := playlistOf(100)
	card, err := BuildCardA(playlist, 5, true, 30, rng.New(5), buildlog.New(), 1)
	require.NoError(t, err)

	assert.Equal(t, bingo.FreeSpace, card.Cells[2][2])
}

func TestBuildCardBHitsOneLineAtR1(t *testing.T) {
	playlist := playlistOf(100)
	r1, full := 10, 30
	card, err := BuildCardB(playlist, 5, true, r1, full, rng.New(9), buildlog.New(), 2)
	require.NoError(t, err)

	rec := milestone.Evaluate(card, playlist)
	require.NotNil(t, rec.OneLine)
	assert.Equal(t, r1, *rec.OneLine)
}

func TestBuildCardBBlockedFromBlackoutByFull(t *testing.T) {
	playlist := playlistOf(100)
	full := 30
	card, err := BuildCardB(playlist, 5, true, 10, full, rng.New(9), buildlog.New(), 2)
	require.NoError(t, err)

	rec := milestone.Evaluate(card, playlist)
	if rec.Full != nil {
		assert.Greater(t, *rec.Full, full)
	}
}

func TestBuildCardBFailsOnBlockerStarvation(t *testing.T) {
	// full == len(playlist): LATE is empty, no blocker available.
	playlist := playlistOf(30)
	_, err := BuildCardB(playlist, 5, true, 10, 30, rng.New(1), buildlog.New(), 2)
	require.Error(t, err)
	var starved *bingo.ErrBlockerStarvation
	assert.ErrorAs(t, err, &starved)
}

func TestBuildCardCHitsTwoLinesAtR2(t *testing.T) {
	playlist := playlistOf(100)
	r2, full := 20, 30
	card, err := BuildCardC(playlist, 5, true, r2, full, rng.New(17), buildlog.New(), 3)
	require.NoError(t, err)

	rec := milestone.Evaluate(card, playlist)
	require.NotNil(t, rec.TwoLines)
	assert.Equal(t, r2, *rec.TwoLines)
}

func TestBuildCardCBlockedFromBlackoutByFull(t *testing.T) {
	playlist := playlistOf(100)
	full := 30
	card, err := BuildCardC(playlist, 5, true, 20, full, rng.New(17), buildlog.New(), 3)
	require.NoError(t, err)

	rec := milestone.Evaluate(card, playlist)
	if rec.Full != nil {
		assert.Greater(t, *rec.Full, full)
	}
}

func TestBuildCardONeverBlacksOutEarly(t *testing.T) {
	playlist := playlistOf(100)
	full := 30
	card, err := BuildCardO(playlist, 5, true, 20, full, rng.New(23), buildlog.New(), 4)
	require.NoError(t, err)

	rec := milestone.Evaluate(card, playlist)
	if rec.Full != nil {
		assert.Greater(t, *rec.Full, full)
	}
}

func TestBuildCardRandomFillsEverySongCell(t *testing.T) {
	playlist := playlistOf(50)
	card, err := BuildCardRandom(playlist, 3, true, rng.New(2))
	require.NoError(t, err)

	count := 0
	for _, row := range card.Cells {
		for _, cell := range row {
			if cell != bingo.FreeSpace {
				require.NotEmpty(t, string(cell))
				count++
			}
		}
	}
	assert.Equal(t, bingo.RequiredCells(3, true), count)
}

func TestBuildCardRandomErrorsOnShortPlaylist(t *testing.T) {
	playlist := playlistOf(3)
	_, err := BuildCardRandom(playlist, 5, true, rng.New(2))
	var insufficient *bingo.ErrInsufficientPlaylist
	assert.ErrorAs(t, err, &insufficient)
}

func TestDeterminismAcrossIdenticalSeeds(t *testing.T) {
	playlist := playlistOf(100)
	full := 30

	cardOne, err := BuildCardA(playlist, 5, true, full, rng.New(99), buildlog.New(), 1)
	require.NoError(t, err)
	cardTwo, err := BuildCardA(playlist, 5, true, full, rng.New(99), buildlog.New(), 1)
	require.NoError(t, err)

	assert.Equal(t, cardOne.Cells, cardTwo.Cells)
}
