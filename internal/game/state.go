package game

import "fmt"

// Phase is the round lifecycle position
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// MessageKind tells renderers how to draw the last hit message
type MessageKind int

const (
	MessageNone MessageKind = iota
	MessageCorrect
	MessageWrong
)

const messageCorrect = "Correct!"

// RoundState is the score and HUD state of the current or last round
type RoundState struct {
	Phase          Phase
	CurrentMeaning string
	CorrectHits    int
	TotalHits      int
	Message        string
	MessageKind    MessageKind
	MessageTicks   int
	TimeLeft       int
}

// Running reports whether the round accepts fire intents and ticks
func (r *RoundState) Running() bool {
	return r.Phase == PhaseRunning
}

// Record scores a hit on w against the current meaning and sets the HUD message.
// It does not rotate the meaning.
func (r *RoundState) Record(w WordRecord) bool {
	r.TotalHits++
	correct := w.Meaning == r.CurrentMeaning
	if correct {
		r.CorrectHits++
		r.Message = messageCorrect
		r.MessageKind = MessageCorrect
	} else {
		r.Message = WrongMessage(w)
		r.MessageKind = MessageWrong
	}
	r.MessageTicks = MessageTicks
	return correct
}

// WrongMessage is the HUD text for a hit on a non-matching word
func WrongMessage(w WordRecord) string {
	return fmt.Sprintf("WRONG! %s : %s", w.Word, w.Meaning)
}
