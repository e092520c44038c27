package domain

import "time"

// Word is one vocabulary entry contributed through the bot
type Word struct {
	ID            int
	UserID        int64
	Word          string
	Pronunciation string
	Meaning       string
	CreatedAt     time.Time
	HiddenUntil   *time.Time
	HiddenForever bool
}

// Active reports whether the entry is playable at t
func (w Word) Active(t time.Time) bool {
	if w.HiddenForever {
		return false
	}
	return w.HiddenUntil == nil || !w.HiddenUntil.After(t)
}
