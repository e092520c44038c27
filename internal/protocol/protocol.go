package protocol

import (
	"encoding/json"
)

// Client -> server
const (
	MsgStart  = "start"
	MsgStop   = "stop"
	MsgAim    = "aim"
	MsgFire   = "fire"
	MsgResize = "resize"
)

// Server -> client
const (
	MsgWelcome = "welcome"
	MsgState   = "state"
	MsgError   = "error"
)

type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p,omitempty"` // raw payload bytes
}

type Aim struct {
	Y float64 `json:"y"`
}

type Resize struct {
	Width  float64 `json:"w"`
	Height float64 `json:"h"`
}

type Welcome struct {
	TickMillis int `json:"tickMs"`
	Words      int `json:"words"`
}

type Error struct {
	Message string `json:"message"`
}

type State struct {
	Tick         uint64          `json:"tick" msgpack:"tick"`
	Phase        string          `json:"phase" msgpack:"phase"`
	Running      bool            `json:"running" msgpack:"running"`
	Width        float64         `json:"w" msgpack:"w"`
	Height       float64         `json:"h" msgpack:"h"`
	Bow          BowSnapshot     `json:"bow" msgpack:"bow"`
	Arrows       []ArrowSnapshot `json:"arrows" msgpack:"arrows"`
	Words        []WordSnapshot  `json:"words" msgpack:"words"`
	Meaning      string          `json:"meaning" msgpack:"meaning"`
	CorrectHits  int             `json:"correct" msgpack:"correct"`
	TotalHits    int             `json:"total" msgpack:"total"`
	Message      string          `json:"message,omitempty" msgpack:"message,omitempty"`
	MessageKind  string          `json:"messageKind,omitempty" msgpack:"messageKind,omitempty"`
	MessageTicks int             `json:"messageTicks" msgpack:"messageTicks"`
	TimeLeft     int             `json:"timeLeft" msgpack:"timeLeft"`
}

type BowSnapshot struct {
	X      float64 `json:"x" msgpack:"x"`
	Y      float64 `json:"y" msgpack:"y"`
	Radius float64 `json:"r" msgpack:"r"`
	Pull   float64 `json:"pull" msgpack:"pull"`
}

type ArrowSnapshot struct {
	X float64 `json:"x" msgpack:"x"`
	Y float64 `json:"y" msgpack:"y"`
}

type WordSnapshot struct {
	Word          string  `json:"word" msgpack:"word"`
	Pronunciation string  `json:"pron,omitempty" msgpack:"pron,omitempty"`
	X             float64 `json:"x" msgpack:"x"`
	Y             float64 `json:"y" msgpack:"y"`
}
