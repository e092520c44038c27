package game

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"wordbow/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	catRecord = WordRecord{Word: "cat", Pronunciation: "kæt", Meaning: "a feline"}
	dogRecord = WordRecord{Word: "dog", Pronunciation: "dɒg", Meaning: "a canine"}
)

func newTestSession(t *testing.T, opts ...Option) (*Session, *event.Bus) {
	t.Helper()
	bus := event.NewBus()
	base := []Option{
		WithRand(rand.New(rand.NewPCG(1, 2))),
		WithBus(bus),
		WithDataset([]WordRecord{catRecord, dogRecord}),
	}
	s := NewSession(DefaultTuning(), Field{Width: 1000, Height: 600}, append(base, opts...)...)
	return s, bus
}

func meanings() []string {
	return []string{catRecord.Meaning, dogRecord.Meaning}
}

// placeHit puts a word and an arrow that will overlap after the next Move
func placeHit(s *Session, rec WordRecord) {
	s.store.Words = append(s.store.Words, Word{WordRecord: rec, X: 300, Y: 200, Speed: WordSpeed})
	s.store.Arrows = append(s.store.Arrows, Arrow{X: 270, Y: 200, Speed: ArrowSpeed})
}

func TestSession_StartWithoutDataset(t *testing.T) {
	s := NewSession(DefaultTuning(), Field{Width: 800, Height: 600})
	s.Aim(123)
	before := s.Snapshot()

	err := s.Start()

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoDataset))
	var pe *PreconditionError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "no dataset loaded", pe.Reason)

	assert.Equal(t, before, s.Snapshot(), "failed start must not touch state")
	assert.False(t, s.Advance())
}

func TestSession_Start(t *testing.T) {
	s, bus := newTestSession(t)
	var started []RoundStarted
	event.Subscribe(bus, func(e RoundStarted) { started = append(started, e) })

	require.NoError(t, s.Start())

	snap := s.Snapshot()
	assert.True(t, snap.Running)
	assert.Equal(t, PhaseRunning, snap.Phase)
	assert.Equal(t, 60, snap.TimeLeft)
	assert.Contains(t, meanings(), snap.CurrentMeaning)
	assert.Empty(t, snap.Arrows)
	assert.Empty(t, snap.Words)
	assert.Equal(t, 300.0, snap.Bow.Y, "bow starts mid-field")
	require.Len(t, started, 1)
	assert.Equal(t, snap.CurrentMeaning, started[0].Meaning)

	// already running: no-op, no second event, no reset
	s.Fire()
	require.NoError(t, s.Start())
	assert.Len(t, s.Snapshot().Arrows, 1)
	assert.Len(t, started, 1)
}

func TestSession_AimBeforeStart(t *testing.T) {
	s, _ := newTestSession(t)

	s.Aim(120)
	require.NoError(t, s.Start())
	s.Fire()

	snap := s.Snapshot()
	assert.Equal(t, 120.0, snap.Bow.Y, "start keeps the pre-aim")
	require.Len(t, snap.Arrows, 1)
	assert.Equal(t, 120.0, snap.Arrows[0].Y)

	// aim made after the round ends carries into the next one
	s.Stop()
	s.Aim(480)
	require.NoError(t, s.Start())
	assert.Equal(t, 480.0, s.Bow().Y)
	assert.Equal(t, 0.0, s.Bow().Pull)
}

func TestSession_ResizeCentersBowOnlyWhileIdle(t *testing.T) {
	s, _ := newTestSession(t)

	s.Aim(50)
	s.Resize(800, 400)
	assert.Equal(t, 200.0, s.Bow().Y)

	require.NoError(t, s.Start())
	s.Aim(50)
	s.Resize(800, 300)
	assert.Equal(t, 50.0, s.Bow().Y, "a running round keeps the aim")
	assert.Equal(t, Field{Width: 800, Height: 300}, s.Field())
}

func TestSession_FireAndAim(t *testing.T) {
	s, _ := newTestSession(t)

	s.Fire()
	assert.Empty(t, s.Snapshot().Arrows, "fire before start is ignored")

	s.Aim(420)
	assert.Equal(t, 420.0, s.Snapshot().Bow.Y, "aim works before start")

	require.NoError(t, s.Start())
	s.Aim(-30)
	s.Aim(150)
	s.Fire()

	snap := s.Snapshot()
	require.Len(t, snap.Arrows, 1)
	assert.Equal(t, Arrow{X: BowX + BowOffset, Y: 150, Speed: ArrowSpeed}, snap.Arrows[0])
	assert.Equal(t, BowPullDepth, snap.Bow.Pull)

	for i := 0; i < 5; i++ {
		s.Advance()
	}
	assert.Equal(t, 0.0, s.Snapshot().Bow.Pull)
}

func TestSession_CorrectHit(t *testing.T) {
	s, bus := newTestSession(t)
	var hits []WordHit
	event.Subscribe(bus, func(e WordHit) { hits = append(hits, e) })

	require.NoError(t, s.Start())
	s.round.CurrentMeaning = catRecord.Meaning
	placeHit(s, catRecord)

	s.Advance()

	snap := s.Snapshot()
	assert.Equal(t, 1, snap.CorrectHits)
	assert.Equal(t, 1, snap.TotalHits)
	assert.Equal(t, "Correct!", snap.Message)
	assert.Equal(t, MessageCorrect, snap.MessageKind)
	assert.Equal(t, MessageTicks, snap.MessageTicks)
	assert.True(t, snap.MessageVisible())
	assert.Empty(t, snap.Arrows)
	assert.Empty(t, snap.Words)
	assert.Contains(t, meanings(), snap.CurrentMeaning)

	require.Len(t, hits, 1)
	assert.True(t, hits[0].Correct)
	assert.Equal(t, catRecord.Meaning, hits[0].Target)
	assert.Equal(t, snap.CurrentMeaning, hits[0].NextMeaning)
}

func TestSession_WrongHit(t *testing.T) {
	s, _ := newTestSession(t)

	require.NoError(t, s.Start())
	s.round.CurrentMeaning = catRecord.Meaning
	placeHit(s, dogRecord)

	s.Advance()

	snap := s.Snapshot()
	assert.Equal(t, 0, snap.CorrectHits)
	assert.Equal(t, 1, snap.TotalHits)
	assert.Equal(t, "WRONG! dog : a canine", snap.Message)
	assert.Equal(t, MessageWrong, snap.MessageKind)
	assert.Empty(t, snap.Words)
	assert.Contains(t, meanings(), snap.CurrentMeaning)
}

func TestSession_MessageExpires(t *testing.T) {
	s, _ := newTestSession(t)
	require.NoError(t, s.Start())
	placeHit(s, catRecord)
	s.Advance()

	for i := 0; i < MessageTicks; i++ {
		s.Advance()
	}

	snap := s.Snapshot()
	assert.Equal(t, 0, snap.MessageTicks)
	assert.False(t, snap.MessageVisible())
}

func TestSession_Spawn(t *testing.T) {
	s, bus := newTestSession(t)
	spawned := 0
	event.Subscribe(bus, func(WordSpawned) { spawned++ })

	require.NoError(t, s.Start())
	for i := 0; i < s.tuning.SpawnEvery()-1; i++ {
		s.Advance()
	}
	assert.Empty(t, s.Snapshot().Words)

	s.Advance()

	snap := s.Snapshot()
	require.Len(t, snap.Words, 1)
	w := snap.Words[0]
	assert.Contains(t, meanings(), w.Meaning)
	assert.Equal(t, 1000.0, w.X)
	assert.Equal(t, WordSpeed, w.Speed)
	assert.GreaterOrEqual(t, w.Y, SpawnMargin)
	assert.LessOrEqual(t, w.Y, 600-SpawnMargin)
	assert.Equal(t, 1, spawned)
}

func TestSession_SpawnOnShortField(t *testing.T) {
	s, _ := newTestSession(t)
	s.Resize(400, 30)
	require.NoError(t, s.Start())

	for i := 0; i < s.tuning.SpawnEvery(); i++ {
		s.Advance()
	}

	words := s.Snapshot().Words
	require.Len(t, words, 1)
	assert.Equal(t, 15.0, words[0].Y)
	assert.Equal(t, 400.0, words[0].X)
}

func TestSession_StopIsIdempotent(t *testing.T) {
	s, bus := newTestSession(t)
	var ended []RoundEnded
	event.Subscribe(bus, func(e RoundEnded) { ended = append(ended, e) })

	require.NoError(t, s.Start())
	placeHit(s, catRecord)
	s.Advance()
	tick := s.Snapshot().Tick

	s.Stop()
	first := s.Snapshot()
	s.Stop()

	assert.Equal(t, first, s.Snapshot())
	assert.False(t, first.Running)
	assert.Equal(t, PhaseEnded, first.Phase)
	assert.Equal(t, 1, first.TotalHits, "score stays visible after stop")
	require.Len(t, ended, 1)
	assert.False(t, ended[0].TimedOut)

	assert.False(t, s.Advance(), "no tick after stop")
	assert.Equal(t, tick, s.Snapshot().Tick)
}

func TestSession_StopWhenIdle(t *testing.T) {
	s, _ := newTestSession(t)
	s.Stop()
	assert.Equal(t, PhaseIdle, s.Snapshot().Phase)
}

func TestSession_Restart(t *testing.T) {
	s, _ := newTestSession(t)

	require.NoError(t, s.Start())
	for i := 0; i < 250; i++ {
		s.Fire()
		s.Advance()
	}
	placeHit(s, catRecord)
	s.Advance()
	require.NotZero(t, s.Snapshot().TotalHits)
	s.Stop()

	require.NoError(t, s.Start())

	snap := s.Snapshot()
	assert.True(t, snap.Running)
	assert.Empty(t, snap.Arrows)
	assert.Empty(t, snap.Words)
	assert.Equal(t, 0, snap.CorrectHits)
	assert.Equal(t, 0, snap.TotalHits)
	assert.Equal(t, 60, snap.TimeLeft)
	assert.Equal(t, uint64(0), snap.Tick)
	assert.Empty(t, snap.Message)
}

func TestSession_Countdown(t *testing.T) {
	tuning := DefaultTuning()
	tuning.RoundSeconds = 3
	bus := event.NewBus()
	var ended []RoundEnded
	event.Subscribe(bus, func(e RoundEnded) { ended = append(ended, e) })

	s := NewSession(tuning, Field{Width: 1000, Height: 600},
		WithRand(rand.New(rand.NewPCG(3, 4))),
		WithBus(bus),
		WithDataset([]WordRecord{catRecord, dogRecord}),
	)
	require.NoError(t, s.Start())

	perSecond := tuning.CountdownEvery()
	for i := 0; i < perSecond; i++ {
		s.Advance()
	}
	assert.Equal(t, 2, s.Snapshot().TimeLeft)

	for i := 0; i < 2*perSecond; i++ {
		s.Advance()
	}

	snap := s.Snapshot()
	assert.False(t, snap.Running)
	assert.Equal(t, 0, snap.TimeLeft)
	require.Len(t, ended, 1)
	assert.True(t, ended[0].TimedOut)

	for i := 0; i < 3*perSecond; i++ {
		assert.False(t, s.Advance())
	}
	assert.Equal(t, 0, s.Snapshot().TimeLeft)
	assert.Len(t, ended, 1)
}

func TestSession_HitsNeverExceedAttempts(t *testing.T) {
	tuning := Tuning{
		TickInterval:      20 * time.Millisecond,
		SpawnInterval:     100 * time.Millisecond,
		CountdownInterval: time.Second,
		RoundSeconds:      30,
	}
	s := NewSession(tuning, Field{Width: 800, Height: 200},
		WithRand(rand.New(rand.NewPCG(7, 7))),
		WithDataset([]WordRecord{catRecord, dogRecord, {Word: "cow", Meaning: "a bovine"}}),
	)
	require.NoError(t, s.Start())

	rng := rand.New(rand.NewPCG(9, 9))
	prevCorrect, prevTotal := 0, 0
	for s.Advance() {
		if rng.IntN(4) == 0 {
			s.Aim(rng.Float64() * 200)
			s.Fire()
		}
		snap := s.Snapshot()
		assert.LessOrEqual(t, snap.CorrectHits, snap.TotalHits)
		assert.GreaterOrEqual(t, snap.CorrectHits, prevCorrect)
		assert.GreaterOrEqual(t, snap.TotalHits, prevTotal)
		for _, w := range snap.Words {
			assert.Greater(t, w.X, 0.0)
		}
		prevCorrect, prevTotal = snap.CorrectHits, snap.TotalHits
	}
	assert.NotZero(t, prevTotal)
}

func TestSession_SnapshotIsACopy(t *testing.T) {
	s, _ := newTestSession(t)
	require.NoError(t, s.Start())
	s.Fire()

	snap := s.Snapshot()
	snap.Arrows[0].X = -1

	assert.Equal(t, BowX+BowOffset, s.Snapshot().Arrows[0].X)
}

func TestSession_EmptiedDatasetMidRound(t *testing.T) {
	s, _ := newTestSession(t)
	require.NoError(t, s.Start())
	meaning := s.Snapshot().CurrentMeaning

	s.SetDataset(nil)
	assert.Equal(t, 0, s.DatasetSize())
	placeHit(s, catRecord)
	for i := 0; i < s.tuning.SpawnEvery(); i++ {
		s.Advance()
	}

	snap := s.Snapshot()
	assert.Equal(t, meaning, snap.CurrentMeaning)
	assert.Empty(t, snap.Words)
	assert.Equal(t, 1, snap.TotalHits)
}
