package game

import "slices"

// Move advances every entity by one tick, then drops arrows past the right
// edge and words past the left edge. Dropped entities never reach Resolve.
func Move(s *Store, f Field) {
	for i := range s.Arrows {
		s.Arrows[i].X += s.Arrows[i].Speed
	}
	for i := range s.Words {
		s.Words[i].X -= s.Words[i].Speed
	}

	s.Arrows = slices.DeleteFunc(s.Arrows, func(a Arrow) bool {
		return a.X >= f.Width
	})
	s.Words = slices.DeleteFunc(s.Words, func(w Word) bool {
		return w.X <= 0
	})
}
