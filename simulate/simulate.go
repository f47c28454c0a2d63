// Package simulate implements the game simulator / milestone tracker
// (C6): replaying a playlist over a deck in order and reporting, per
// card, the first round at which it reaches one line, two lines, and a
// full card, plus the 1st/2nd/3rd place assignment.
package simulate

import (
	"github.com/cardcaller/musicbingo"
	"github.com/cardcaller/musicbingo/grid"
	"github.com/cardcaller/musicbingo/milestone"
)

// Run replays playlist, in order, over every card in deck and returns a
// MilestoneRecord per card plus the derived place assignments (§4.5). r1,
// r2, full act as earliest-eligible rounds for place assignment when
// non-nil; a nil round means that place has no eligibility floor.
//
// The playlist is never reshuffled internally (§9 Open Question #3,
// "ordered playlist" resolution) — running Run twice on the same inputs
// yields identical milestone rounds (§8 property 10).
func Run(deck *bingo.Deck, playlist []bingo.Song, r1, r2, full *int) *bingo.Report {
	cards := deck.Cards
	records := make([]bingo.MilestoneRecord, len(cards))
	for i := range records {
		records[i] = bingo.MilestoneRecord{CardIndex: i + 1}
	}

	places := make(map[int]int, 3)
	isWinner := make(map[int]bool, 3)
	called := grid.NewCalledSet()

	for k, song := range playlist {
		round := k + 1
		called.Call(song)

		for i, card := range cards {
			rec := &records[i]
			if rec.OneLine != nil && rec.TwoLines != nil && rec.Full != nil {
				continue
			}
			lineCount, _ := milestone.CountCompleteLines(card, called)
			if rec.OneLine == nil && lineCount >= 1 {
				r := round
				rec.OneLine = &r
			}
			if rec.TwoLines == nil && lineCount >= 2 {
				r := round
				rec.TwoLines = &r
			}
			if rec.Full == nil && milestone.IsFullCard(card, called) {
				r := round
				rec.Full = &r
			}
		}

		assignFirstPlace(records, places, isWinner, round, r1)
		assignThirdPlace(records, places, isWinner, round, full)
		assignSecondPlace(records, places, isWinner, round, r2)
	}

	for i := range records {
		if place, ok := places[i+1]; ok {
			p := place
			records[i].Place = &p
		}
	}

	return bingo.NewReport(records)
}

// assignFirstPlace implements §4.5 step 3: the first card (in index
// order) with one_line <= round and no place yet.
func assignFirstPlace(records []bingo.MilestoneRecord, places map[int]int, isWinner map[int]bool, round int, r1 *int) {
	if _, done := places[1]; done {
		return
	}
	if r1 != nil && round < *r1 {
		return
	}
	for i := range records {
		if isWinner[i] {
			continue
		}
		if records[i].OneLine != nil && *records[i].OneLine <= round {
			places[1] = i + 1
			isWinner[i] = true
			return
		}
	}
}

// assignThirdPlace implements §4.5 step 4: symmetric to first place,
// using full and r3 = full (the blackout round).
func assignThirdPlace(records []bingo.MilestoneRecord, places map[int]int, isWinner map[int]bool, round int, full *int) {
	if _, done := places[3]; done {
		return
	}
	if full != nil && round < *full {
		return
	}
	for i := range records {
		if isWinner[i] {
			continue
		}
		if records[i].Full != nil && *records[i].Full <= round {
			places[3] = i + 1
			isWinner[i] = true
			return
		}
	}
}

// assignSecondPlace implements §4.5 step 5: runs after 1st and 3rd place
// for the round. Among cards with two_lines set and >= r2 (strictly
// excluding cards that hit two lines before r2), picks the smallest
// two_lines, breaking ties by card index. Excludes any card already a
// winner of another place.
func assignSecondPlace(records []bingo.MilestoneRecord, places map[int]int, isWinner map[int]bool, round int, r2 *int) {
	if _, done := places[2]; done {
		return
	}
	if r2 != nil && round < *r2 {
		return
	}

	floor := 0
	if r2 != nil {
		floor = *r2
	}

	best := -1
	bestRound := 0
	for i := range records {
		if isWinner[i] {
			continue
		}
		tl := records[i].TwoLines
		if tl == nil || *tl > round || *tl < floor {
			continue
		}
		if best == -1 || *tl < bestRound {
			best = i
			bestRound = *tl
		}
	}
	if best != -1 {
		places[2] = best + 1
		isWinner[best] = true
	}
}
