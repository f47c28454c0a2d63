package cardgen

import (
	"github.com/cardcaller/musicbingo"
	"github.com/cardcaller/musicbingo/buildlog"
	"github.com/cardcaller/musicbingo/rng"
	"github.com/google/uuid"
)

// BuildCardC builds a role-C card: two lines (center row and center
// column) at exactly round r2, blocked from an earlier blackout and from
// other rows completing early (§4.4.3).
func BuildCardC(playlist []bingo.Song, n int, freeSpace bool, r2, full int, rngSrc *rng.Source, log *buildlog.Log, cardIndex int) (*bingo.Card, error) {
	lateBucket := late(playlist, full)
	if len(lateBucket) == 0 {
		return nil, &bingo.ErrBlockerStarvation{Role: bingo.RoleC}
	}

	b := newBuilder(n, freeSpace, rngSrc)
	centerRow, _ := b.center()
	used := make(map[bingo.Song]bool)

	crossCells := centerCrossCells(b)
	crossSongs := collectLineSongs(playlist, r2, full, len(crossCells), used, rngSrc, log, cardIndex, "card C cross-line")
	rngSrc.ShuffleSongs(crossSongs)
	for i, cell := range crossCells {
		b.place(cell[0], cell[1], crossSongs[i])
	}

	offCross := offCrossCells(b)
	if len(offCross) == 0 {
		return nil, &bingo.ErrBlockerStarvation{Role: bingo.RoleC}
	}
	blockerCell := offCross[rngSrc.Intn(len(offCross))]
	blocker := lateBucket[rngSrc.Intn(len(lateBucket))]
	b.place(blockerCell[0], blockerCell[1], blocker)
	used[blocker] = true

	// One DELAY song per non-center row keeps that row from completing
	// before r2 (§4.4.3 step 4). Skipped when DELAY is empty (accepted
	// variance per spec).
	delayBucket := delay(playlist, r2, full)
	if len(delayBucket) > 0 {
		for row := 0; row < n; row++ {
			if row == centerRow {
				continue
			}
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

	return b.card(uuid.New(), bingo.RoleC, bingo.QualityOnTarget), nil
}
