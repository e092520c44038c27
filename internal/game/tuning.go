package game

import "time"

const (
	BowX         = 100.0
	BowRadius    = 60.0
	BowOffset    = 50.0 // arrows leave the bow this far to its right
	BowPullDepth = -20.0
	BowPullRelax = 4.0 // per tick

	ArrowSpeed  = 5.0
	ArrowLength = 40.0 // shaft length, also the arrow hit-box width

	WordSpeed    = 2.0
	WordBoxWidth = 50.0
	HitTolerance = 20.0 // vertical half-height of a word hit-box
	SpawnMargin  = 25.0

	MessageTicks = 100

	DefaultFieldWidth  = 1200.0
	DefaultFieldHeight = 800.0
)

// Tuning holds the round timing. Periods are converted to whole ticks of
// TickInterval by the scheduler.
type Tuning struct {
	TickInterval      time.Duration
	SpawnInterval     time.Duration
	CountdownInterval time.Duration
	RoundSeconds      int
}

// DefaultTuning returns 20ms ticks, a word every 2s and a 60s round
func DefaultTuning() Tuning {
	return Tuning{
		TickInterval:      20 * time.Millisecond,
		SpawnInterval:     2 * time.Second,
		CountdownInterval: time.Second,
		RoundSeconds:      60,
	}
}

// SpawnEvery returns the spawn period in ticks
func (t Tuning) SpawnEvery() int {
	return ticksIn(t.SpawnInterval, t.TickInterval)
}

// CountdownEvery returns the countdown period in ticks
func (t Tuning) CountdownEvery() int {
	return ticksIn(t.CountdownInterval, t.TickInterval)
}

// TicksPerSecond is the tick rate, used by frontends that drive Advance themselves
func (t Tuning) TicksPerSecond() int {
	return ticksIn(time.Second, t.TickInterval)
}

func ticksIn(period, tick time.Duration) int {
	if tick <= 0 {
		return 1
	}
	n := int(period / tick)
	if n < 1 {
		return 1
	}
	return n
}
