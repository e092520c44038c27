package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

func Encode(t string, payload any) ([]byte, error) {
	if t == "" {
		return nil, fmt.Errorf("empty envelope type")
	}
	e := Envelope{T: t}
	if payload != nil {
		pb, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %q payload: %w", t, err)
		}
		e.P = pb
	}
	return json.Marshal(e)
}

func DecodeEnvelope(b []byte) (Envelope, error) {
	if len(b) == 0 {
		return Envelope{}, fmt.Errorf("empty envelope")
	}
	var e Envelope
	if err := json.Unmarshal(b, &e); err != nil {
		return Envelope{}, fmt.Errorf("failed to decode envelope: %w", err)
	}
	if e.T == "" {
		return Envelope{}, fmt.Errorf("envelope without type")
	}
	return e, nil
}

func DecodePayload[T any](env Envelope) (T, error) {
	var out T
	if len(env.P) == 0 {
		return out, fmt.Errorf("empty payload for type %q", env.T)
	}
	if err := json.Unmarshal(env.P, &out); err != nil {
		return out, fmt.Errorf("failed to decode %q payload: %w", env.T, err)
	}
	return out, nil
}

// Codec selects how state frames are written. Control messages are always JSON.
type Codec string

const (
	CodecJSON    Codec = "json"
	CodecMsgpack Codec = "msgpack"
)

// ParseCodec maps a query value to a codec, defaulting to JSON
func ParseCodec(s string) Codec {
	if s == string(CodecMsgpack) {
		return CodecMsgpack
	}
	return CodecJSON
}

// Binary reports whether frames of this codec go out as binary websocket messages
func (c Codec) Binary() bool {
	return c == CodecMsgpack
}

// EncodeState writes a state frame: a JSON envelope, or a bare msgpack State
func (c Codec) EncodeState(s State) ([]byte, error) {
	if c == CodecMsgpack {
		b, err := msgpack.Marshal(&s)
		if err != nil {
			return nil, fmt.Errorf("failed to encode state: %w", err)
		}
		return b, nil
	}
	return Encode(MsgState, s)
}

// DecodeMsgpackState is the client side of a msgpack state frame
func DecodeMsgpackState(b []byte) (State, error) {
	var s State
	if err := msgpack.Unmarshal(b, &s); err != nil {
		return State{}, fmt.Errorf("failed to decode state: %w", err)
	}
	return s, nil
}
