package bingo

import "fmt"

// ValidationError reports an infeasible target triple (§4.3, §7). The
// caller is expected to show Message verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError from a format string, the
// same way the rest of this module reaches for fmt.Errorf.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ErrBlockerStarvation is returned when a Role B, Role C or Role Other card
// cannot be built because the LATE pool (songs called strictly after R) is
// empty.
// This is fatal for that deck request (§7).
type ErrBlockerStarvation struct {
	Role Role
}

func (e *ErrBlockerStarvation) Error() string {
	return fmt.Sprintf("role %s: no song available after round R to use as a blocker (playlist too short or R too close to M)", e.Role)
}

// ErrInsufficientPlaylist is returned when a playlist does not have enough
// songs to fill a card's grid, independent of target feasibility.
type ErrInsufficientPlaylist struct {
	Needed    int
	Available int
}

func (e *ErrInsufficientPlaylist) Error() string {
	return fmt.Sprintf("playlist has %d songs, but %d are needed to fill a card", e.Available, e.Needed)
}
