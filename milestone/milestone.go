// Package milestone implements the milestone evaluator (C2): counting
// complete lines and detecting a full card, plus a single-card playlist
// replay used by cardgen's self-test loop during Card A construction.
package milestone

import (
	"fmt"

	"github.com/cardcaller/musicbingo"
	"github.com/cardcaller/musicbingo/grid"
)

// CountCompleteLines counts the complete rows and columns of card given
// the songs called so far. Diagonals never contribute (spec §4.2, §8
// property 3). Contract: O(N^2) per call.
func CountCompleteLines(card *bingo.Card, called *grid.CalledSet) (int, []string) {
	n := card.Size()
	count := 0
	var lines []string

	for i := 0; i < n; i++ {
		complete := true
		for j := 0; j < n; j++ {
			if !grid.IsCalled(card.Cells[i][j], called) {
				complete = false
				break
			}
		}
		if complete {
			count++
			lines = append(lines, fmt.Sprintf("row %d", i+1))
		}
	}

	for j := 0; j < n; j++ {
		complete := true
		for i := 0; i < n; i++ {
			if !grid.IsCalled(card.Cells[i][j], called) {
				complete = false
				break
			}
		}
		if complete {
			count++
			lines = append(lines, fmt.Sprintf("column %d", j+1))
		}
	}

	return count, lines
}

// IsFullCard reports whether every cell of card counts as called.
func IsFullCard(card *bingo.Card, called *grid.CalledSet) bool {
	for _, row := range card.Cells {
		for _, cell := range row {
			if !grid.IsCalled(cell, called) {
				return false
			}
		}
	}
	return true
}

// Evaluate replays playlist against a single card from the start and
// returns the round at which each milestone first became true (nil if
// never). It stops early once all three milestones are set. This is the
// self-test cardgen runs during Card A's accept/reject retry loop; the
// simulator does not use this function directly, since it evaluates every
// card in the deck incrementally in a single pass (see the simulate
// package) rather than re-replaying the playlist per card.
func Evaluate(card *bingo.Card, playlist []bingo.Song) bingo.MilestoneRecord {
	called := grid.NewCalledSet()
	record := bingo.MilestoneRecord{}

	for k, song := range playlist {
		round := k + 1
		called.Call(song)

		if record.OneLine == nil || record.TwoLines == nil || record.Full == nil {
			lineCount, _ := CountCompleteLines(card, called)
			if record.OneLine == nil && lineCount >= 1 {
				r := round
				record.OneLine = &r
			}
			if record.TwoLines == nil && lineCount >= 2 {
				r := round
				record.TwoLines = &r
			}
			if record.Full == nil && IsFullCard(card, called) {
				r := round
				record.Full = &r
			}
		}

		if record.OneLine != nil && record.TwoLines != nil && record.Full != nil {
			break
		}
	}

	return record
}
