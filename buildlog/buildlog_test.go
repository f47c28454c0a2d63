package buildlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogRecordsInOrder(t *testing.T) {
	log := New()
	log.Record(EventPoolExhaustion, 1, "duplicated %q", "Song A")
	log.Record(EventBestEffortAcceptance, 2, "retry budget exhausted")

	require.Equal(t, 2, log.Len())
	events := log.Events()
	assert.Equal(t, EventPoolExhaustion, events[0].Type)
	assert.Equal(t, 1, events[0].CardIndex)
	assert.Equal(t, `duplicated "Song A"`, events[0].Message)
	assert.Equal(t, EventBestEffortAcceptance, events[1].Type)
}

func TestEventsReturnsACopy(t *testing.T) {
	log := New()
	log.Record(EventPoolExhaustion, 1, "first")

	events := log.Events()
	events[0].Message = "mutated"

	assert.Equal(t, "first", log.Events()[0].Message)
}

func TestZeroValueLogIsReady(t *testing.T) {
	var log Log
	log.Record(EventPoolExhaustion, 1, "ok")
	assert.Equal(t, 1, log.Len())
}
