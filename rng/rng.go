// Package rng defines the single injectable pseudo-random generator the
// rest of this module draws on for shuffling, sampling, and tie-break
// randomization (spec §4.6). No package in this module is allowed to read
// the global math/rand functions; every call goes through a Source.
package rng

import (
	"math/rand"

	"github.com/cardcaller/musicbingo"
)

// Source provides seed-based shuffling and sampling.
type Source struct {
	rng *rand.Rand
}

// New creates a new Source from a seed. Two Sources built from the same
// seed produce identical sequences of draws.
func New(seed int64) *Source {
	return &Source{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a pseudo-random int in [0, n).
func (s *Source) Intn(n int) int {
	return s.rng.Intn(n)
}

// ShuffleSongs shuffles a slice of songs in place using pseudo-random
// logic.
func (s *Source) ShuffleSongs(songs []bingo.Song) {
	for i := len(songs) - 1; i >= 1; i-- {
		randomIndex := s.rng.Intn(i + 1)
		elementToSwap := songs[i]
		songs[i] = songs[randomIndex]
		songs[randomIndex] = elementToSwap
	}
}

// ShuffleInts shuffles a slice of ints in place, the same way as
// ShuffleSongs. Used to randomize cell-fill order and slot-role order.
func (s *Source) ShuffleInts(values []int) {
	for i := len(values) - 1; i >= 1; i-- {
		randomIndex := s.rng.Intn(i + 1)
		elementToSwap := values[i]
		values[i] = values[randomIndex]
		values[randomIndex] = elementToSwap
	}
}

// SampleSongs draws k distinct songs from pool without replacement. The
// input pool is not mutated; the returned slice is a fresh shuffled copy
// truncated to k elements. If k exceeds len(pool), the whole (shuffled)
// pool is returned.
func (s *Source) SampleSongs(pool []bingo.Song, k int) []bingo.Song {
	if k > len(pool) {
		k = len(pool)
	}
	cp := make([]bingo.Song, len(pool))
	copy(cp, pool)
	s.ShuffleSongs(cp)
	return cp[:k]
}

// SampleIndices draws k distinct indices from [0, n) without replacement,
// in random order. Used to pick the three deck slots for roles A, B, C.
func (s *Source) SampleIndices(n, k int) []int {
	if k > n {
		k = n
	}
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	s.ShuffleInts(indices)
	return indices[:k]
}
