package cardgen

import "github.com/cardcaller/musicbingo"

// earlyK returns EARLY_k = the first k-1 songs of playlist (callable
// before round k). Clamped to playlist bounds so a k beyond playlist
// length degrades to "the whole playlist" rather than panicking.
func earlyK(playlist []bingo.Song, k int) []bingo.Song {
	end := k - 1
	if end < 0 {
		end = 0
	}
	if end > len(playlist) {
		end = len(playlist)
	}
	return playlist[:end]
}

// atK returns AT_k = the song called at round k (1-indexed).
func atK(playlist []bingo.Song, k int) bingo.Song {
	return playlist[k-1]
}

// delay returns DELAY = songs called strictly after r2, strictly before
// full (round R).
func delay(playlist []bingo.Song, r2, full int) []bingo.Song {
	lo, hi := r2, full-1
	return clampedSlice(playlist, lo, hi)
}

// delayOther returns the Card-O variant of DELAY, shifted two rounds
// later than the standard bucket (§4.4.4).
func delayOther(playlist []bingo.Song, r2, full int) []bingo.Song {
	lo, hi := r2+2, full-1
	return clampedSlice(playlist, lo, hi)
}

// late returns LATE = songs called strictly after full (round R): the
// blocker pool.
func late(playlist []bingo.Song, full int) []bingo.Song {
	if full < 0 {
		full = 0
	}
	if full > len(playlist) {
		return nil
	}
	return playlist[full:]
}

func clampedSlice(playlist []bingo.Song, lo, hi int) []bingo.Song {
	if lo < 0 {
		lo = 0
	}
	if hi > len(playlist) {
		hi = len(playlist)
	}
	if hi <= lo {
		return nil
	}
	return playlist[lo:hi]
}
