// Package bingo contains the main domain logic for playing a music bingo
// game: songs, cards, decks, and the scalar types every subsystem builds
// on. It holds no behavior beyond simple validation and JSON shaping; the
// constructors, validator, and simulator live in their own packages and
// depend on these types.
package bingo

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

const (
	// MinCardSize and MaxCardSize bound the card dimension N accepted
	// anywhere in this module.
	MinCardSize = 3
	MaxCardSize = 7
)

// Song is an opaque, non-empty string used as an equality key. Two Songs
// are the same song iff they compare equal.
type Song string

// FreeSpace is the reserved marker for the free cell. It must never appear
// in a playlist; ParseSong rejects it on ingestion.
const FreeSpace = Song("FREE SPACE")

var _ json.Marshaler = FreeSpace

// MarshalJSON renders a Song as a plain JSON string.
func (s Song) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

// ParseSong validates a raw playlist entry. An empty string or the
// reserved FreeSpace marker are both rejected; the host is expected to
// have already dropped blank CSV rows before songs reach this module.
func ParseSong(raw string) (Song, error) {
	if raw == "" {
		return "", fmt.Errorf("song name must not be empty")
	}
	s := Song(raw)
	if s == FreeSpace {
		return "", fmt.Errorf("song name %q is reserved for the free cell", raw)
	}
	return s, nil
}

// Card is an N×N grid of songs belonging to one deck slot. FreeSpaceUse
// records whether this particular card was built with a free center cell
// (only possible when N is odd).
type Card struct {
	// Cells holds the N rows of the grid, left to right, top to bottom.
	Cells [][]Song `json:"cells"`
	ID    uuid.UUID `json:"id"`
	// Role is the constructor variant used to build this card. It is not
	// revealed externally via the deck's slot order (spec §4.4.5 step 6).
	Role Role `json:"role"`
	// Quality flags soft construction issues (see QualityBestEffort).
	Quality      Quality `json:"quality"`
	FreeSpaceUse bool    `json:"free_space"`
}

// Size returns the card's dimension N.
func (c *Card) Size() int {
	return len(c.Cells)
}

// RequiredCells returns S, the number of song cells a card of size n needs
// to fill: N²−1 when a free space is used, N² otherwise (§3).
func RequiredCells(n int, freeSpace bool) int {
	if freeSpace && n%2 == 1 {
		return n*n - 1
	}
	return n * n
}

// Deck is an ordered, K-card set. Index 0 of Cards is external card 1; the
// order of Cards never reveals which role built which card.
type Deck struct {
	ID    uuid.UUID `json:"id"`
	Cards []*Card   `json:"cards"`
}

var _ json.Marshaler = &Deck{}

// MarshalJSON guarantees Cards serializes as `[]` rather than `null` when
// empty, the same nil-safety Report applies to its fields. Card has no such
// override: a Card with nil Cells encodes them as null.
func (d *Deck) MarshalJSON() ([]byte, error) {
	type alias Deck
	copied := alias(*d)
	if copied.Cards == nil {
		copied.Cards = []*Card{}
	}
	return json.Marshal(copied)
}
