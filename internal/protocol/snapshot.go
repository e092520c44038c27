package protocol

import "wordbow/internal/game"

// FromSnapshot converts an engine snapshot to its wire form
func FromSnapshot(s game.Snapshot) State {
	st := State{
		Tick:         s.Tick,
		Phase:        s.Phase.String(),
		Running:      s.Running,
		Width:        s.Field.Width,
		Height:       s.Field.Height,
		Bow:          BowSnapshot{X: s.Bow.X, Y: s.Bow.Y, Radius: s.Bow.Radius, Pull: s.Bow.Pull},
		Arrows:       make([]ArrowSnapshot, 0, len(s.Arrows)),
		Words:        make([]WordSnapshot, 0, len(s.Words)),
		Meaning:      s.CurrentMeaning,
		CorrectHits:  s.CorrectHits,
		TotalHits:    s.TotalHits,
		MessageTicks: s.MessageTicks,
		TimeLeft:     s.TimeLeft,
	}
	if s.MessageVisible() {
		st.Message = s.Message
		st.MessageKind = messageKind(s.MessageKind)
	}
	for _, a := range s.Arrows {
		st.Arrows = append(st.Arrows, ArrowSnapshot{X: a.X, Y: a.Y})
	}
	for _, w := range s.Words {
		st.Words = append(st.Words, WordSnapshot{
			Word:          w.Word,
			Pronunciation: w.Pronunciation,
			X:             w.X,
			Y:             w.Y,
		})
	}
	return st
}

func messageKind(k game.MessageKind) string {
	switch k {
	case game.MessageCorrect:
		return "correct"
	case game.MessageWrong:
		return "wrong"
	default:
		return ""
	}
}
