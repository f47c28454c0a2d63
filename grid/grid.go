// Package grid provides the called-set and grid primitives (C1): tracking
// which songs have been called, and the single "is called" rule the rest
// of this module builds on.
package grid

import "github.com/cardcaller/musicbingo"

// CalledSet tracks which songs have been called so far during a
// simulation or a card constructor's self-test replay.
type CalledSet struct {
	called map[bingo.Song]struct{}
}

// NewCalledSet returns an empty CalledSet.
func NewCalledSet() *CalledSet {
	return &CalledSet{called: make(map[bingo.Song]struct{})}
}

// Call marks song as called.
func (c *CalledSet) Call(song bingo.Song) {
	c.called[song] = struct{}{}
}

// Has reports whether song has been explicitly called. It does not apply
// the FREE-space rule; use IsCalled for that.
func (c *CalledSet) Has(song bingo.Song) bool {
	_, ok := c.called[song]
	return ok
}

// IsCalled reports whether song counts as called: FREE always does,
// regardless of whether it has been explicitly added to called.
func IsCalled(song bingo.Song, called *CalledSet) bool {
	return song == bingo.FreeSpace || called.Has(song)
}
