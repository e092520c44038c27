package game

import "slices"

// Snapshot is a read-only copy of everything a renderer needs after a tick
type Snapshot struct {
	Tick           uint64
	Phase          Phase
	Running        bool
	Field          Field
	Bow            Bow
	Arrows         []Arrow
	Words          []Word
	CurrentMeaning string
	CorrectHits    int
	TotalHits      int
	Message        string
	MessageKind    MessageKind
	MessageTicks   int
	TimeLeft       int
}

// Snapshot copies the current state. The returned slices are not shared with the session.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:           s.sched.Tick(),
		Phase:          s.round.Phase,
		Running:        s.round.Running(),
		Field:          s.field,
		Bow:            s.bow,
		Arrows:         slices.Clone(s.store.Arrows),
		Words:          slices.Clone(s.store.Words),
		CurrentMeaning: s.round.CurrentMeaning,
		CorrectHits:    s.round.CorrectHits,
		TotalHits:      s.round.TotalHits,
		Message:        s.round.Message,
		MessageKind:    s.round.MessageKind,
		MessageTicks:   s.round.MessageTicks,
		TimeLeft:       s.round.TimeLeft,
	}
}

// MessageVisible reports whether the last hit message should still be drawn
func (s Snapshot) MessageVisible() bool {
	return s.MessageTicks > 0 && s.Message != ""
}
