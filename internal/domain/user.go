package domain

// UserState represents user's current interaction state
type UserState string

const (
	StateIdle                 UserState = "idle"
	StateWaitingWord          UserState = "waiting_word"
	StateWaitingPronunciation UserState = "waiting_pronunciation"
	StateWaitingMeaning       UserState = "waiting_meaning"
)

// StateData holds the entry being assembled by the add flow
type StateData struct {
	State                UserState
	CurrentWord          string
	CurrentPronunciation string
}
