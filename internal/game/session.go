package game

import (
	"math/rand/v2"
	"slices"

	"wordbow/internal/event"
)

// Session owns one player's game: dataset, entities, bow, round state and the
// tick scheduler. It is not safe for concurrent use; exactly one goroutine
// should drive it.
type Session struct {
	tuning  Tuning
	rng     *rand.Rand
	bus     *event.Bus
	dataset []WordRecord

	field Field
	bow   Bow
	store Store
	round RoundState
	sched Scheduler
}

// Option configures a Session
type Option func(*Session)

// WithRand sets the random source for spawning and meaning rotation
func WithRand(r *rand.Rand) Option {
	return func(s *Session) {
		s.rng = r
	}
}

// WithBus publishes round events to bus
func WithBus(bus *event.Bus) Option {
	return func(s *Session) {
		s.bus = bus
	}
}

// WithDataset preloads the word list
func WithDataset(records []WordRecord) Option {
	return func(s *Session) {
		s.dataset = slices.Clone(records)
	}
}

// NewSession creates an idle session for a field of the given size
func NewSession(t Tuning, f Field, opts ...Option) *Session {
	s := &Session{
		tuning: t,
		field:  f,
		bow:    newBow(f),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	s.sched.Every(1, s.update)
	s.sched.Every(t.SpawnEvery(), s.spawn)
	s.sched.Every(t.CountdownEvery(), s.countdown)
	return s
}

// SetDataset replaces the word list. Entities already on the field keep their records.
func (s *Session) SetDataset(records []WordRecord) {
	s.dataset = slices.Clone(records)
}

// DatasetSize returns the number of loaded records
func (s *Session) DatasetSize() int {
	return len(s.dataset)
}

// Start begins a new round. It is a no-op while a round is running and fails
// with ErrNoDataset, leaving the session untouched, when there is nothing to play.
// The bow keeps its position so a player can aim before starting.
func (s *Session) Start() error {
	if s.round.Running() {
		return nil
	}
	if len(s.dataset) == 0 {
		return ErrNoDataset
	}

	s.store.Reset()
	s.round = RoundState{
		Phase:          PhaseRunning,
		CurrentMeaning: s.pickMeaning(),
		TimeLeft:       s.tuning.RoundSeconds,
	}
	s.bow.Pull = 0
	s.sched.Arm()

	event.Publish(s.bus, RoundStarted{Meaning: s.round.CurrentMeaning, Seconds: s.round.TimeLeft})
	return nil
}

// Stop ends the running round. The final score stays readable. Calling Stop
// outside a running round does nothing.
func (s *Session) Stop() {
	if !s.round.Running() {
		return
	}
	s.sched.Disarm()
	s.round.Phase = PhaseEnded

	event.Publish(s.bus, RoundEnded{
		CorrectHits: s.round.CorrectHits,
		TotalHits:   s.round.TotalHits,
		TimedOut:    s.round.TimeLeft == 0,
	})
}

// Fire looses one arrow from the bow. Ignored unless running.
func (s *Session) Fire() {
	if !s.round.Running() {
		return
	}
	s.store.Arrows = append(s.store.Arrows, Arrow{
		X:     s.bow.X + BowOffset,
		Y:     s.bow.Y,
		Speed: ArrowSpeed,
	})
	s.bow.release()
}

// Aim moves the bow vertically. The caller is responsible for clamping.
func (s *Session) Aim(y float64) {
	s.bow.Y = y
}

// Resize updates the field geometry. Before the first round the bow is
// recentered on the new field.
func (s *Session) Resize(width, height float64) {
	s.field = Field{Width: width, Height: height}
	if s.round.Phase == PhaseIdle {
		s.bow = newBow(s.field)
	}
}

// Advance runs one tick. It reports false when no round is running.
func (s *Session) Advance() bool {
	return s.sched.Step()
}

// Running reports whether a round is in progress
func (s *Session) Running() bool {
	return s.round.Running()
}

// Tick returns the number of ticks since the round started
func (s *Session) Tick() uint64 {
	return s.sched.Tick()
}

// Bow returns the current bow position
func (s *Session) Bow() Bow {
	return s.bow
}

// Field returns the current field geometry
func (s *Session) Field() Field {
	return s.field
}

// Round returns a copy of the round state
func (s *Session) Round() RoundState {
	return s.round
}

func (s *Session) update() {
	if s.round.MessageTicks > 0 {
		s.round.MessageTicks--
	}
	s.bow.relax()

	Move(&s.store, s.field)
	for _, h := range Resolve(&s.store) {
		s.score(h)
	}
}

func (s *Session) score(h Hit) {
	target := s.round.CurrentMeaning
	correct := s.round.Record(h.Word.WordRecord)
	s.round.CurrentMeaning = s.pickMeaning()

	event.Publish(s.bus, WordHit{
		Word:        h.Word.WordRecord,
		Correct:     correct,
		Target:      target,
		NextMeaning: s.round.CurrentMeaning,
	})
}

func (s *Session) spawn() {
	if len(s.dataset) == 0 {
		return
	}
	rec := s.dataset[s.rng.IntN(len(s.dataset))]
	w := Word{
		WordRecord: rec,
		X:          s.field.Width,
		Y:          s.spawnY(),
		Speed:      WordSpeed,
	}
	s.store.Words = append(s.store.Words, w)

	event.Publish(s.bus, WordSpawned{Word: rec, Y: w.Y})
}

func (s *Session) spawnY() float64 {
	span := s.field.Height - 2*SpawnMargin
	if span <= 0 {
		return s.field.Height / 2
	}
	return s.rng.Float64()*span + SpawnMargin
}

func (s *Session) countdown() {
	if s.round.TimeLeft > 0 {
		s.round.TimeLeft--
	}
	if s.round.TimeLeft <= 0 {
		s.round.TimeLeft = 0
		s.Stop()
	}
}

// pickMeaning keeps the current meaning when the dataset has been emptied mid-round
func (s *Session) pickMeaning() string {
	if len(s.dataset) == 0 {
		return s.round.CurrentMeaning
	}
	return s.dataset[s.rng.IntN(len(s.dataset))].Meaning
}
