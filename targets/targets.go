// Package targets implements the target validator (C3): rejecting
// infeasible (size, order, blocker room) round triples before a deck is
// ever assembled.
package targets

import "github.com/cardcaller/musicbingo"

// Validate checks a candidate (r1, r2, full) round triple against a card
// size n and playlist length m, per spec §4.3. Each of r1, r2, full may be
// nil when the caller wants that round inferred by the deck assembler;
// nil rounds skip the checks that require them. freeSpace must match the
// free-space flag the deck will be built with, since it determines S (the
// number of song cells a card needs to fill), which bounds the minimum
// round for a blackout.
//
// Rules are checked in this exact order, and the first violated rule wins
// — ordering errors take priority over minimum-rounds errors, which take
// priority over maximum errors, which take priority over blocker-room
// errors. This order is part of the contract; callers rely on it to
// distinguish "rounds out of order" from "rounds too small."
func Validate(n, m int, r1, r2, full *int, freeSpace bool) error {
	s := requiredSongs(n, freeSpace)

	// 1. Ordering.
	if r1 != nil && r2 != nil && *r1 >= *r2 {
		return bingo.NewValidationError("2nd place round must be after 1st place round")
	}
	if r2 != nil && full != nil && *r2 >= *full {
		return bingo.NewValidationError("3rd place round must be after 2nd place round")
	}
	if r1 != nil && full != nil && *r1 >= *full {
		return bingo.NewValidationError("3rd place round must be after 1st place round")
	}

	// 2. Minimum rounds.
	if r1 != nil && *r1 < n {
		return bingo.NewValidationError("1st place round must be at least %d (card size)", n)
	}
	if r2 != nil && *r2 < 2*n {
		return bingo.NewValidationError("2nd place round must be at least %d (twice the card size)", 2*n)
	}
	if full != nil && *full < s {
		return bingo.NewValidationError("3rd place round must be at least %d (songs needed for a full card)", s)
	}

	// 3. Maximum.
	max := 0
	for _, r := range []*int{r1, r2, full} {
		if r != nil && *r > max {
			max = *r
		}
	}
	if max > m {
		return bingo.NewValidationError("target round %d cannot exceed number of songs in playlist (%d)", max, m)
	}

	// 4. Blocker room.
	if full != nil && *full >= m {
		return bingo.NewValidationError("3rd place round (%d) must leave at least one song after it in the playlist (%d songs) so other cards can be blocked from an early blackout", *full, m)
	}

	return nil
}

// requiredSongs returns S: the number of song cells a card of size n needs
// to fill, accounting for the free space.
func requiredSongs(n int, freeSpace bool) int {
	if freeSpace && n%2 == 1 {
		return n*n - 1
	}
	return n * n
}
