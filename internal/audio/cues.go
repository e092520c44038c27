package audio

import (
	"sync"
	"time"

	"wordbow/internal/event"
	"wordbow/internal/game"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

const (
	correctFreq = 880.0
	wrongFreq   = 220.0
	endHighFreq = 660.0
	endLowFreq  = 440.0

	correctLen = 60 * time.Millisecond
	wrongLen   = 150 * time.Millisecond
	endNoteLen = 120 * time.Millisecond
	endGap     = 40 * time.Millisecond
)

// Cues plays short tones for hits and the end of a round
type Cues struct {
	mu          sync.Mutex
	initialized bool
	play        func(...beep.Streamer)
}

// NewCues creates silent cues; call Initialize to open the speaker
func NewCues() *Cues {
	return &Cues{}
}

// Initialize opens the speaker. Without it cues are dropped.
func (c *Cues) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	c.play = speaker.Play
	c.initialized = true
	return nil
}

// Close releases the speaker
func (c *Cues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	c.initialized = false
	c.play = nil
}

// Attach subscribes the cues to round events on bus
func (c *Cues) Attach(bus *event.Bus) {
	event.Subscribe(bus, func(e game.WordHit) {
		if e.Correct {
			c.emit(tone(correctFreq, correctLen))
			return
		}
		c.emit(tone(wrongFreq, wrongLen))
	})
	event.Subscribe(bus, func(game.RoundEnded) {
		c.emit(beep.Seq(
			tone(endHighFreq, endNoteLen),
			beep.Silence(sampleRate.N(endGap)),
			tone(endLowFreq, endNoteLen),
		))
	})
}

func (c *Cues) emit(s beep.Streamer) {
	c.mu.Lock()
	play := c.play
	c.mu.Unlock()

	if play == nil || s == nil {
		return
	}
	play(s)
}

func tone(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil
	}
	return beep.Take(sampleRate.N(d), sine)
}
