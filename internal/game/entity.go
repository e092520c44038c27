package game

// WordRecord is one dataset entry. The core never mutates it.
type WordRecord struct {
	Word          string
	Pronunciation string
	Meaning       string
}

// Word is a WordRecord drifting right to left across the field
type Word struct {
	WordRecord
	X, Y  float64
	Speed float64
}

// Box returns the word hit-box
func (w Word) Box() Box {
	return Box{
		Left:   w.X,
		Right:  w.X + WordBoxWidth,
		Top:    w.Y - HitTolerance,
		Bottom: w.Y + HitTolerance,
	}
}

// Arrow flies left to right from the bow
type Arrow struct {
	X, Y  float64
	Speed float64
}

// Box returns the arrow hit-box: the shaft as a zero-height segment
func (a Arrow) Box() Box {
	return Box{Left: a.X, Right: a.X + ArrowLength, Top: a.Y, Bottom: a.Y}
}

// Bow is the launcher. Only Y is driven by input; Pull animates the string.
type Bow struct {
	X, Y   float64
	Radius float64
	Angle  float64
	Pull   float64
}

func newBow(f Field) Bow {
	return Bow{X: BowX, Y: f.Height / 2, Radius: BowRadius}
}

func (b *Bow) release() {
	b.Pull = BowPullDepth
}

func (b *Bow) relax() {
	if b.Pull < 0 {
		b.Pull = min(b.Pull+BowPullRelax, 0)
	}
}

// Field is the play area size, supplied by the frontend on every resize
type Field struct {
	Width, Height float64
}

// Box is an axis-aligned bounding box
type Box struct {
	Left, Right float64
	Top, Bottom float64
}

// Overlaps reports whether two boxes intersect. Edges that only touch do not overlap.
func (b Box) Overlaps(o Box) bool {
	return b.Left < o.Right && o.Left < b.Right &&
		b.Top < o.Bottom && o.Top < b.Bottom
}

// Store holds the live entities of a round
type Store struct {
	Arrows []Arrow
	Words  []Word
}

// Reset drops every entity
func (s *Store) Reset() {
	s.Arrows = s.Arrows[:0]
	s.Words = s.Words[:0]
}
