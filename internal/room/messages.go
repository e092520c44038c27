package room

// Conn is the client side of a room. Control frames are always text; state
// frames are binary when the codec is.
type Conn interface {
	Send(b []byte, binary bool) error
	Close() error
}

// Start begins a round
type Start struct{}

// Stop ends the running round
type Stop struct{}

// Aim moves the bow; Y is clamped to the field
type Aim struct {
	Y float64
}

// Fire looses an arrow
type Fire struct{}

// Resize changes the play field to the client's canvas
type Resize struct {
	Width  float64
	Height float64
}

// Leave is issued on disconnect
type Leave struct{}
