package cardgen

import (
	"github.com/cardcaller/musicbingo"
	"github.com/cardcaller/musicbingo/buildlog"
	"github.com/cardcaller/musicbingo/rng"
	"github.com/google/uuid"
)

// BuildCardB builds a role-B card: one line at exactly round r1, on the
// center row, blocked from an earlier blackout by a LATE song off that
// row (§4.4.2).
func BuildCardB(playlist []bingo.Song, n int, freeSpace bool, r1, full int, rngSrc *rng.Source, log *buildlog.Log, cardIndex int) (*bingo.Card, error) {
	lateBucket := late(playlist, full)
	if len(lateBucket) == 0 {
		return nil, &bingo.ErrBlockerStarvation{Role: bingo.RoleB}
	}

	b := newBuilder(n, freeSpace, rngSrc)
	centerRow, _ := b.center()
	used := make(map[bingo.Song]bool)

	rowCells := rowEmptyCells(b, centerRow)
	rowSongs := collectLineSongs(playlist, r1, full, len(rowCells), used, rngSrc, log, cardIndex, "card B center-row")
	rngSrc.ShuffleSongs(rowSongs)
	for i, cell := range rowCells {
		b.place(cell[0], cell[1], rowSongs[i])
	}

	// Blocker off the center row: the center row is now fully occupied, so
	// every remaining empty cell already satisfies "off the center row".
	offRow := b.emptyCells()
	if len(offRow) == 0 {
		return nil, &bingo.ErrBlockerStarvation{Role: bingo.RoleB}
	}
	blockerCell := offRow[rngSrc.Intn(len(offRow))]
	blocker := lateBucket[rngSrc.Intn(len(lateBucket))]
	b.place(blockerCell[0], blockerCell[1], blocker)
	used[blocker] = true

	pool := earlyK(playlist, full)
	b.fillRemaining(pool, used, cardIndex, log)

	return b.card(uuid.New(), bingo.RoleB, bingo.QualityOnTarget), nil
}

// collectLineSongs gathers the song set needed to fill a target line's
// `needed` cells: AT_at, padded from EARLY_at, then EARLY_full, then
// duplicates as a last resort (shared by Card B's row and Card C's
// cross). It records a PoolExhaustion event whenever it has to duplicate.
func collectLineSongs(playlist []bingo.Song, at, full, needed int, used map[bingo.Song]bool, rngSrc *rng.Source, log *buildlog.Log, cardIndex int, label string) []bingo.Song {
	target := atK(playlist, at)
	songs := []bingo.Song{target}
	used[target] = true

	earlyAt := earlyK(playlist, at)
	sample := rngSrc.SampleSongs(filterUnused(earlyAt, used), needed-1)
	for _, s := range sample {
		used[s] = true
	}
	songs = append(songs, sample...)

	if len(songs) < needed {
		earlyFull := earlyK(playlist, full)
		more := filterUnused(earlyFull, used)
		rngSrc.ShuffleSongs(more)
		for _, s := range more {
			if len(songs) >= needed {
				break
			}
			songs = append(songs, s)
			used[s] = true
		}
		for len(songs) < needed && len(earlyFull) > 0 {
			s := earlyFull[rngSrc.Intn(len(earlyFull))]
			songs = append(songs, s)
			if log != nil {
				log.Record(buildlog.EventPoolExhaustion, cardIndex, "%s pool exhausted of unused songs; duplicating %q", label, s)
			}
		}
	}

	return songs
}
