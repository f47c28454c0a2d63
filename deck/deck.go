// Package deck implements the deck assembler (C5): turning a playlist, a
// card count, a card size, and an optional target triple into a full
// Deck, dispatching to cardgen's four role constructors.
package deck

import (
	"fmt"
	"math"

	"github.com/cardcaller/musicbingo"
	"github.com/cardcaller/musicbingo/buildlog"
	"github.com/cardcaller/musicbingo/cardgen"
	"github.com/cardcaller/musicbingo/rng"
	"github.com/cardcaller/musicbingo/targets"
	"github.com/google/uuid"
)

// Assemble builds a K-card deck over playlist, per spec §4.4.5. If full
// is nil, targets are absent entirely and every card is built by the
// pure-random constructor (step 1). Otherwise the triple as given is
// validated via targets.Validate, r1/r2 then default per step 3 when left
// nil (the defaulted values are not validated), and three distinct slots are randomly chosen for roles A, B, C; every other slot
// gets role Other.
//
// log accumulates PoolExhaustion/BestEffortAcceptance warnings raised
// while building cards; it may be nil to discard them.
func Assemble(playlist []bingo.Song, k, n int, r1, r2, full *int, freeSpace bool, rngSrc *rng.Source, log *buildlog.Log) (*bingo.Deck, error) {
	if n < bingo.MinCardSize || n > bingo.MaxCardSize {
		return nil, fmt.Errorf("deck: card size %d out of bounds [%d, %d]", n, bingo.MinCardSize, bingo.MaxCardSize)
	}
	if k < 0 {
		return nil, fmt.Errorf("deck: card count %d must not be negative", k)
	}

	if full == nil {
		return assembleRandom(playlist, k, n, freeSpace, rngSrc)
	}

	if err := targets.Validate(n, len(playlist), r1, r2, full, freeSpace); err != nil {
		return nil, err
	}

	resolvedR1, resolvedR2 := resolveDefaults(n, *full, r1, r2)

	roleSlots, _ := chooseRoleSlots(k, rngSrc)

	cards := make([]*bingo.Card, k)
	for slot := 0; slot < k; slot++ {
		role, hasRole := roleSlots[slot]
		cardIndex := slot + 1

		var card *bingo.Card
		var err error
		switch {
		case hasRole && role == bingo.RoleA:
			card, err = cardgen.BuildCardA(playlist, n, freeSpace, *full, rngSrc, log, cardIndex)
		case hasRole && role == bingo.RoleB:
			card, err = cardgen.BuildCardB(playlist, n, freeSpace, resolvedR1, *full, rngSrc, log, cardIndex)
		case hasRole && role == bingo.RoleC:
			card, err = cardgen.BuildCardC(playlist, n, freeSpace, resolvedR2, *full, rngSrc, log, cardIndex)
		default:
			card, err = cardgen.BuildCardO(playlist, n, freeSpace, resolvedR2, *full, rngSrc, log, cardIndex)
		}
		if err != nil {
			return nil, err
		}
		cards[slot] = card
	}

	return &bingo.Deck{ID: uuid.New(), Cards: cards}, nil
}

// assembleRandom is the no-targets fallback path: every card is a plain
// random sample off the playlist (§4.4.5 step 1).
func assembleRandom(playlist []bingo.Song, k, n int, freeSpace bool, rngSrc *rng.Source) (*bingo.Deck, error) {
	cards := make([]*bingo.Card, k)
	for slot := 0; slot < k; slot++ {
		card, err := cardgen.BuildCardRandom(playlist, n, freeSpace, rngSrc)
		if err != nil {
			return nil, err
		}
		cards[slot] = card
	}
	return &bingo.Deck{ID: uuid.New(), Cards: cards}, nil
}

// resolveDefaults fills in r1/r2 when the caller left them nil:
// r1 = max(N, floor(0.35*R)), r2 = max(2N, floor(0.65*R)) (§4.4.5 step 3).
// This must run before role dispatch since B and C need concrete rounds.
func resolveDefaults(n, full int, r1, r2 *int) (int, int) {
	resolvedR1 := n
	if v := int(math.Floor(0.35 * float64(full))); v > resolvedR1 {
		resolvedR1 = v
	}
	if r1 != nil {
		resolvedR1 = *r1
	}

	resolvedR2 := 2 * n
	if v := int(math.Floor(0.65 * float64(full))); v > resolvedR2 {
		resolvedR2 = v
	}
	if r2 != nil {
		resolvedR2 = *r2
	}

	return resolvedR1, resolvedR2
}

// chooseRoleSlots picks up to three distinct random slot indices out of k
// and assigns them roles A, B, C in that order (§4.4.5 step 4). When
// k < 3, roles with no slot are silently dropped. The second return value
// lists the roles actually assigned, in slot-assignment order, for
// callers that want to know how many of A/B/C were placed.
func chooseRoleSlots(k int, rngSrc *rng.Source) (map[int]bingo.Role, []bingo.Role) {
	wanted := []bingo.Role{bingo.RoleA, bingo.RoleB, bingo.RoleC}
	count := len(wanted)
	if k < count {
		count = k
	}

	slots := rngSrc.SampleIndices(k, count)
	assignment := make(map[int]bingo.Role, count)
	assigned := make([]bingo.Role, count)
	for i := 0; i < count; i++ {
		assignment[slots[i]] = wanted[i]
		assigned[i] = wanted[i]
	}
	return assignment, assigned
}
