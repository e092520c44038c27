package game

// Hit is one arrow/word pair consumed by a collision sweep
type Hit struct {
	Arrow Arrow
	Word  Word
}

// Resolve sweeps arrows × words and returns the colliding pairs in sweep order.
// An arrow takes the first live word it overlaps and both are out of the sweep
// from then on. Consumed entities are removed in one compaction at the end.
func Resolve(s *Store) []Hit {
	if len(s.Arrows) == 0 || len(s.Words) == 0 {
		return nil
	}

	arrowUsed := make([]bool, len(s.Arrows))
	wordUsed := make([]bool, len(s.Words))
	var hits []Hit

	for i, a := range s.Arrows {
		ab := a.Box()
		for j, w := range s.Words {
			if wordUsed[j] || !ab.Overlaps(w.Box()) {
				continue
			}
			arrowUsed[i] = true
			wordUsed[j] = true
			hits = append(hits, Hit{Arrow: a, Word: w})
			break
		}
	}

	if len(hits) == 0 {
		return nil
	}

	s.Arrows = compact(s.Arrows, arrowUsed)
	s.Words = compact(s.Words, wordUsed)
	return hits
}

func compact[T any](items []T, consumed []bool) []T {
	kept := items[:0]
	for i, item := range items {
		if !consumed[i] {
			kept = append(kept, item)
		}
	}
	clear(items[len(kept):])
	return kept
}
