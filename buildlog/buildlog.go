// Package buildlog accumulates warning-level events raised while a deck
// is assembled: PoolExhaustion and BestEffortAcceptance (spec §7). These
// are log-worthy, not failures, so they never make the core return an
// error; the caller decides what to do with them.
//
// This is the synchronous counterpart to the teacher's subscription-based
// event dispatch: the core here is single-threaded (spec §5), so there is
// no live subscriber to broadcast to. Log is a plain append-only slice
// behind a small API instead of a goroutine-backed pub/sub channel.
package buildlog

import "fmt"

// EventType identifies what kind of build-time event occurred.
type EventType string

const (
	// EventPoolExhaustion fires when a card constructor's EARLY_R pool is
	// smaller than the number of cells it still needs to fill, and it had
	// to duplicate a song to finish the card.
	EventPoolExhaustion EventType = "pool_exhaustion"
	// EventBestEffortAcceptance fires when Card A's retry budget is
	// exhausted without meeting its line-avoidance thresholds, and the
	// last candidate was accepted anyway.
	EventBestEffortAcceptance EventType = "best_effort_acceptance"
)

// Event is a single build-time record.
type Event struct {
	Type      EventType
	CardIndex int
	Message   string
}

func (e Event) String() string {
	return fmt.Sprintf("[card %d] [%s] %s", e.CardIndex, e.Type, e.Message)
}

// Log is a synchronous, append-only accumulator of Events. The zero value
// is ready to use.
type Log struct {
	events []Event
}

// New returns an empty Log.
func New() *Log {
	return &Log{}
}

// Record appends a new event.
func (l *Log) Record(eventType EventType, cardIndex int, format string, args ...any) {
	l.events = append(l.events, Event{
		Type:      eventType,
		CardIndex: cardIndex,
		Message:   fmt.Sprintf(format, args...),
	})
}

// Events returns a copy of every recorded event, in recording order.
func (l *Log) Events() []Event {
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

// Len reports how many events have been recorded.
func (l *Log) Len() int {
	return len(l.events)
}
