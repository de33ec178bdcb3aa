package order

import "github.com/corvidchess/corvid/internal/bitboard"

// History accumulates depth²-weighted fail-high counts per
// color/from/to, used as the lowest-priority move-ordering tie-break.
// Grounded on the teacher's engine/moveordering.go historyMove table.
type History struct {
	table [2][64][64]int32
}

// NewHistory returns an empty history table.
func NewHistory() *History { return &History{} }

// Add records a fail-high by a non-capture at depth.
func (h *History) Add(c bitboard.Color, from, to bitboard.Square, depth int) {
	h.table[c][from][to] += int32(depth * depth)
}

// Score returns the accumulated history value for a move.
func (h *History) Score(c bitboard.Color, from, to bitboard.Square) int32 {
	return h.table[c][from][to]
}

// Clear empties the table.
func (h *History) Clear() {
	for c := range h.table {
		for f := range h.table[c] {
			for t := range h.table[c][f] {
				h.table[c][f][t] = 0
			}
		}
	}
}
