package cardgen

import (
	"github.com/cardcaller/musicbingo"
	"github.com/cardcaller/musicbingo/buildlog"
	"github.com/cardcaller/musicbingo/rng"
	"github.com/google/uuid"
)

// BuildCardO builds a role-Other card: no target milestone, just a
// blocker so it cannot blackout before full, and per-row DELAY songs that
// push its typical two-line round above r2 (§4.4.4).
func BuildCardO(playlist []bingo.Song, n int, freeSpace bool, r2, full int, rngSrc *rng.Source, log *buildlog.Log, cardIndex int) (*bingo.Card, error) {
	lateBucket := late(playlist, full)
	if len(lateBucket) == 0 {
		return nil, &bingo.ErrBlockerStarvation{Role: bingo.RoleOther}
	}

	b := newBuilder(n, freeSpace, rngSrc)
	used := make(map[bingo.Song]bool)

	empties := b.emptyCells()
	blockerCell := empties[rngSrc.Intn(len(empties))]
	blocker := lateBucket[rngSrc.Intn(len(lateBucket))]
	b.place(blockerCell[0], blockerCell[1], blocker)
	used[blocker] = true

	delayBucket := delayOther(playlist, r2, full)
	if len(delayBucket) > 0 {
		for row := 0; row < n; row++ {
			cells := rowEmptyCells(b, row)
			if len(cells) == 0 {
				continue
			}
			cell := cells[rngSrc.Intn(len(cells))]
			d := delayBucket[rngSrc.Intn(len(delayBucket))]
			b.place(cell[0], cell[1], d)
			used[d] = true
		}
	}

	pool := earlyK(playlist, full)
	b.fillRemaining(pool, used, cardIndex, log)

	return b.card(uuid.New(), bingo.RoleOther, bingo.QualityOnTarget), nil
}

// BuildCardRandom builds a card with no target milestones: a plain
// shuffle-and-sample off the playlist, used when the deck assembler has
// no targets at all (§4.4.5 step 1). Grounded on game/cellsgenerator.go's
// shuffle-then-slice construction.
func BuildCardRandom(playlist []bingo.Song, n int, freeSpace bool, rngSrc *rng.Source) (*bingo.Card, error) {
	s := bingo.RequiredCells(n, freeSpace)
	if len(playlist) < s {
		return nil, &bingo.ErrInsufficientPlaylist{Needed: s, Available: len(playlist)}
	}

	b := newBuilder(n, freeSpace, rngSrc)
	songs := rngSrc.SampleSongs(playlist, s)
	for i, cell := range b.emptyCells() {
		b.place(cell[0], cell[1], songs[i])
	}

	return b.card(uuid.New(), bingo.RoleOther, bingo.QualityOnTarget), nil
}
