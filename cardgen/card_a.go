package cardgen

import (
	"fmt"
	"math"

	"github.com/cardcaller/musicbingo"
	"github.com/cardcaller/musicbingo/buildlog"
	"github.com/cardcaller/musicbingo/milestone"
	"github.com/cardcaller/musicbingo/rng"
	"github.com/google/uuid"
)

// cardARetryBudget bounds the accept/reject sampler's attempts before it
// falls back to the last candidate (§4.4.1, §7 BestEffortAcceptance).
const cardARetryBudget = 100

// BuildCardA builds a role-A card: blackout at exactly round full, with a
// line-avoidance retry loop so the card does not look like a winner too
// early (§4.4.1).
func BuildCardA(playlist []bingo.Song, n int, freeSpace bool, full int, rngSrc *rng.Source, log *buildlog.Log, cardIndex int) (*bingo.Card, error) {
	if full < 1 || full > len(playlist) {
		return nil, fmt.Errorf("cardgen: blackout round %d out of playlist bounds (%d songs)", full, len(playlist))
	}
	s := bingo.RequiredCells(n, freeSpace)
	at := atK(playlist, full)
	pool := earlyK(playlist, full)
	if len(pool)+1 < s {
		return nil, &bingo.ErrInsufficientPlaylist{Needed: s, Available: len(pool) + 1}
	}

	lowThreshold := full / 2
	highThreshold := int(math.Floor(0.7 * float64(full)))

	var lastCandidate *bingo.Card
	for attempt := 0; attempt < cardARetryBudget; attempt++ {
		songs := cardASongSet(at, pool, s, rngSrc)
		b := newBuilder(n, freeSpace, rngSrc)
		dropShuffled(b, songs, rngSrc)
		candidate := b.card(uuid.New(), bingo.RoleA, bingo.QualityOnTarget)
		lastCandidate = candidate

		record := milestone.Evaluate(candidate, playlist)
		if acceptCardA(record, full, lowThreshold, highThreshold) {
			return candidate, nil
		}
	}

	if log != nil {
		log.Record(buildlog.EventBestEffortAcceptance, cardIndex,
			"card A retry budget (%d) exhausted without clearing the line-avoidance thresholds for round %d", cardARetryBudget, full)
	}
	lastCandidate.Quality = bingo.QualityBestEffort
	return lastCandidate, nil
}

// cardASongSet builds {AT_full} ∪ sample(EARLY_full \ {AT_full}, s-1), the
// song set whose latest-called member is exactly AT_full.
func cardASongSet(at bingo.Song, pool []bingo.Song, s int, rngSrc *rng.Source) []bingo.Song {
	filtered := make([]bingo.Song, 0, len(pool))
	for _, song := range pool {
		if song != at {
			filtered = append(filtered, song)
		}
	}
	sample := rngSrc.SampleSongs(filtered, s-1)
	out := make([]bingo.Song, 0, len(sample)+1)
	out = append(out, at)
	out = append(out, sample...)
	return out
}

// dropShuffled shuffles songs and drops them into b's empty cells in
// order, skipping FREE automatically since builder.emptyCells already
// excludes it.
func dropShuffled(b *builder, songs []bingo.Song, rngSrc *rng.Source) {
	shuffled := append([]bingo.Song(nil), songs...)
	rngSrc.ShuffleSongs(shuffled)
	empties := b.emptyCells()
	for i, cell := range empties {
		if i >= len(shuffled) {
			break
		}
		b.place(cell[0], cell[1], shuffled[i])
	}
}

// acceptCardA is the accept/reject predicate for the Card A retry loop:
// full must land exactly on round full, and neither premature milestone
// may fire before its threshold.
func acceptCardA(record bingo.MilestoneRecord, full, lowThreshold, highThreshold int) bool {
	if record.Full == nil || *record.Full != full {
		return false
	}
	if record.OneLine != nil && *record.OneLine <= lowThreshold {
		return false
	}
	if record.TwoLines != nil && *record.TwoLines <= highThreshold {
		return false
	}
	return true
}
