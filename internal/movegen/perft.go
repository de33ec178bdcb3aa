package movegen

import (
	"github.com/corvidchess/corvid/internal/move"
	"github.com/corvidchess/corvid/internal/position"
)

// Perft counts leaf nodes reachable in exactly depth plies from pos,
// per spec.md §9. Grounded on the teacher's goosemg Perft, adapted to
// this package's Generate/MakeMove/UnmakeMove contract.
func Perft(pos *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := Generate(pos, make([]move.Move, 0, 48))
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		pos.MakeMove(m)
		nodes += Perft(pos, depth-1)
		pos.UnmakeMove(m)
	}
	return nodes
}

// PerftDivide returns, for each legal root move, the perft count of the
// subtree rooted at it (depth-1 plies deep), for divide-style debugging.
func PerftDivide(pos *position.Position, depth int) map[move.Move]uint64 {
	div := make(map[move.Move]uint64)
	if depth <= 0 {
		return div
	}
	moves := Generate(pos, make([]move.Move, 0, 48))
	for _, m := range moves {
		pos.MakeMove(m)
		div[m] = Perft(pos, depth-1)
		pos.UnmakeMove(m)
	}
	return div
}
