package search

import (
	"github.com/corvidchess/corvid/internal/bitboard"
	"github.com/corvidchess/corvid/internal/move"
)

// maxPVLength bounds a single principal variation; deeper lines are
// truncated rather than grown, since MaxPly already bounds search depth.
const maxPVLength = 128

// pvLine holds the best line found from one node downward, per
// spec.md §4.7.2 step 11. Grounded on the teacher's engine PVLine
// (Moves slice, Update/Clear), rearranged as a fixed array to avoid
// per-node allocation during search.
type pvLine struct {
	moves [maxPVLength]move.Move
	len   int
}

func (pv *pvLine) clear() { pv.len = 0 }

// update places m at the front of this line, followed by child's moves.
func (pv *pvLine) update(m move.Move, child *pvLine) {
	pv.moves[0] = m
	n := bitboard.Min(child.len, maxPVLength-1)
	copy(pv.moves[1:], child.moves[:n])
	pv.len = n + 1
}

// first returns the principal move, or move.Null if the line is empty.
func (pv *pvLine) first() move.Move {
	if pv.len == 0 {
		return move.Null
	}
	return pv.moves[0]
}
