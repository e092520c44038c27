package game

// RoundStarted is published after a successful Start
type RoundStarted struct {
	Meaning string
	Seconds int
}

// RoundEnded is published once per round, on the Running -> Ended edge
type RoundEnded struct {
	CorrectHits int
	TotalHits   int
	TimedOut    bool
}

// WordHit is published for every consumed arrow/word pair
type WordHit struct {
	Word        WordRecord
	Correct     bool
	Target      string // meaning the hit was scored against
	NextMeaning string
}

// WordSpawned is published when a word enters the field
type WordSpawned struct {
	Word WordRecord
	Y    float64
}
