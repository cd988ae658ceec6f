package game

import "quantum_checkers/internal/shared"

// resolveCollision measures (x, y) when one branch holds a piece of player
// one there and another a piece of player two. It reports whether the
// superposition collapsed.
func (q *QuantumBoard) resolveCollision(x, y int) bool {
	if !shared.OnBoard(x, y, q.size) {
		return false
	}
	var seen [2]bool
	for _, b := range q.branches {
		v := b.At(x, y)
		if v.Empty() {
			continue
		}
		idx := v.Owner().Index()
		seen[idx] = true
		if seen[1-idx] {
			q.measure(x, y)
			return true
		}
	}
	return false
}

// measure keeps only the branches agreeing with one branch drawn at random.
func (q *QuantumBoard) measure(x, y int) {
	before := len(q.branches)
	observed := q.branches[q.rand.IntN(before)].At(x, y)

	kept := q.branches[:0]
	for _, b := range q.branches {
		if b.At(x, y) == observed {
			kept = append(kept, b)
		}
	}
	for i := len(kept); i < before; i++ {
		q.branches[i] = nil
	}
	q.branches = kept

	q.log.Info().
		Int("x", x).Int("y", y).
		Stringer("observed", observed).
		Int("kept", len(kept)).
		Int("discarded", before-len(kept)).
		Msg("superposition collapsed")
}
