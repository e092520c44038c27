package eventlog

import (
	"testing"

	"wordbow/internal/event"
	"wordbow/internal/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestAttach(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	bus := event.NewBus()
	Attach(bus, zap.New(core))

	event.Publish(bus, game.RoundStarted{Meaning: "a feline", Seconds: 60})
	event.Publish(bus, game.WordHit{Word: game.WordRecord{Word: "dog"}, Correct: false, Target: "a feline"})
	event.Publish(bus, game.RoundEnded{CorrectHits: 0, TotalHits: 1, TimedOut: true})

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)

	assert.Equal(t, "Round started", entries[0].Message)
	assert.Equal(t, "a feline", entries[0].ContextMap()["meaning"])

	assert.Equal(t, "Word hit", entries[1].Message)
	assert.Equal(t, zapcore.DebugLevel, entries[1].Level)
	assert.Equal(t, "dog", entries[1].ContextMap()["word"])

	assert.Equal(t, "Round ended", entries[2].Message)
	assert.Equal(t, int64(1), entries[2].ContextMap()["total_hits"])
	assert.Equal(t, true, entries[2].ContextMap()["timed_out"])
}
