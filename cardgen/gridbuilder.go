package cardgen

import (
	"github.com/cardcaller/musicbingo"
	"github.com/cardcaller/musicbingo/buildlog"
	"github.com/cardcaller/musicbingo/rng"
	"github.com/google/uuid"
)

// builder assembles one card's N×N grid. It tracks which cells are still
// unfilled (the zero value of bingo.Song, which ParseSong never produces)
// and places the free space up front when applicable, the way
// game/cellsgenerator.go special-cases the center cell before handing the
// grid back.
type builder struct {
	n         int
	freeSpace bool
	cells     [][]bingo.Song
	rng       *rng.Source
}

func newBuilder(n int, freeSpace bool, rngSrc *rng.Source) *builder {
	cells := make([][]bingo.Song, n)
	for i := range cells {
		cells[i] = make([]bingo.Song, n)
	}
	b := &builder{n: n, freeSpace: usesFreeSpace(n, freeSpace), cells: cells, rng: rngSrc}
	if b.freeSpace {
		c := n / 2
		b.cells[c][c] = bingo.FreeSpace
	}
	return b
}

// usesFreeSpace reports whether a card of size n actually gets a free
// center cell: only odd N, and only when the caller asked for it.
func usesFreeSpace(n int, requested bool) bool {
	return requested && n%2 == 1
}

func (b *builder) center() (int, int) {
	return b.n / 2, b.n / 2
}

func (b *builder) isFree(row, col int) bool {
	if !b.freeSpace {
		return false
	}
	cr, cc := b.center()
	return row == cr && col == cc
}

func (b *builder) isEmpty(row, col int) bool {
	return !b.isFree(row, col) && b.cells[row][col] == ""
}

func (b *builder) place(row, col int, song bingo.Song) {
	b.cells[row][col] = song
}

func (b *builder) emptyCells() [][2]int {
	var out [][2]int
	for row := 0; row < b.n; row++ {
		for col := 0; col < b.n; col++ {
			if b.isEmpty(row, col) {
				out = append(out, [2]int{row, col})
			}
		}
	}
	return out
}

// fillRemaining places a song in every still-empty cell, preferring
// unused songs from pool (shuffled) and falling back to duplicates drawn
// from the full pool when it runs out (recording a PoolExhaustion event).
func (b *builder) fillRemaining(pool []bingo.Song, used map[bingo.Song]bool, cardIndex int, log *buildlog.Log) {
	empties := b.emptyCells()
	if len(empties) == 0 {
		return
	}

	order := make([]int, len(empties))
	for i := range order {
		order[i] = i
	}
	b.rng.ShuffleInts(order)

	var unique []bingo.Song
	for _, s := range pool {
		if !used[s] {
			unique = append(unique, s)
		}
	}
	b.rng.ShuffleSongs(unique)

	idx := 0
	for _, oi := range order {
		row, col := empties[oi][0], empties[oi][1]
		var song bingo.Song
		if idx < len(unique) {
			song = unique[idx]
			idx++
		} else if len(pool) > 0 {
			song = pool[b.rng.Intn(len(pool))]
			if log != nil {
				log.Record(buildlog.EventPoolExhaustion, cardIndex,
					"fill pool exhausted of unused songs; duplicating %q", song)
			}
		} else {
			continue
		}
		used[song] = true
		b.place(row, col, song)
	}
}

func (b *builder) card(id uuid.UUID, role bingo.Role, quality bingo.Quality) *bingo.Card {
	cellsCopy := make([][]bingo.Song, b.n)
	for i, row := range b.cells {
		cellsCopy[i] = append([]bingo.Song(nil), row...)
	}
	return &bingo.Card{
		ID:           id,
		Cells:        cellsCopy,
		Role:         role,
		Quality:      quality,
		FreeSpaceUse: b.freeSpace,
	}
}
