package milestone

import (
	"testing"

	"github.com/cardcaller/musicbingo"
	"github.com/cardcaller/musicbingo/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func card3x3(cells [][]bingo.Song) *bingo.Card {
	return &bingo.Card{Cells: cells, FreeSpaceUse: false}
}

func TestCountCompleteLinesRowsAndColumns(t *testing.T) {
	c := card3x3([][]bingo.Song{
		{"A", "B", "C"},
		{"D", "E", "F"},
		{"G", "H", "I"},
	})
	called := grid.NewCalledSet()
	for _, s := range []bingo.Song{"A", "B", "C"} {
		called.Call(s)
	}

	count, lines := CountCompleteLines(c, called)
	assert.Equal(t, 1, count)
	require.Len(t, lines, 1)
	assert.Equal(t, "row 1", lines[0])
}

func TestCountCompleteLinesIgnoresDiagonals(t *testing.T) {
	c := card3x3([][]bingo.Song{
		{"A", "B", "C"},
		{"D", "E", "F"},
		{"G", "H", "I"},
	})
	called := grid.NewCalledSet()
	for _, s := range []bingo.Song{"A", "E", "I"} {
		called.Call(s)
	}

	count, _ := CountCompleteLines(c, called)
	assert.Equal(t, 0, count, "diagonals never contribute (spec §4.2, §8 property 3)")
}

func TestIsFullCardWithFreeSpace(t *testing.T) {
	c := &bingo.Card{
		Cells: [][]bingo.Song{
			{"A", "B", "C"},
			{"D", bingo.FreeSpace, "F"},
			{"G", "H", "I"},
		},
		FreeSpaceUse: true,
	}
	called := grid.NewCalledSet()

	assert.False(t, IsFullCard(c, called), "FREE alone is not a full card")

	for _, s := range []bingo.Song{"A", "B", "C", "D", "F", "G", "H", "I"} {
		called.Call(s)
	}
	assert.True(t, IsFullCard(c, called))
}

func TestEvaluateMonotoneMilestoneRounds(t *testing.T) {
	c := card3x3([][]bingo.Song{
		{"A", "B", "C"},
		{"D", "E", "F"},
		{"G", "H", "I"},
	})
	playlist := []bingo.Song{"A", "B", "C", "D", "E", "F", "G", "H", "I", "Z"}

	rec := Evaluate(c, playlist)
	require.NotNil(t, rec.OneLine)
	require.NotNil(t, rec.TwoLines)
	require.NotNil(t, rec.Full)
	assert.Equal(t, 3, *rec.OneLine)
	assert.LessOrEqual(t, *rec.OneLine, *rec.TwoLines)
	assert.LessOrEqual(t, *rec.TwoLines, *rec.Full)
	assert.Equal(t, 9, *rec.Full)
}
