// Package eval provides a deterministic material-plus-piece-square
// evaluation, tapered between middlegame and endgame by game phase.
// Grounded on the teacher's engine/evaluation.go (piece values, phase
// weights, and the mg/eg tapering formula); the mobility, king-safety,
// space, and passed-pawn terms it also computes are dropped per
// SPEC_FULL.md's trim to material+PST, and NNUE/tuned-weight loading
// (engine/tempeval.go, tuner/) is out of scope entirely.
package eval

import (
	"golang.org/x/exp/constraints"

	"github.com/corvidchess/corvid/internal/bitboard"
)

// clamp bounds x to [lo, hi], the golang.org/x/exp/constraints generic
// idiom in place of a hand-rolled per-type min/max pair.
func clamp[T constraints.Ordered](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Centipawn piece values, indexed by bitboard.PieceType.
var materialMG = [7]int32{
	bitboard.NoPieceType: 0,
	bitboard.Pawn:        88,
	bitboard.Knight:      316,
	bitboard.Bishop:      331,
	bitboard.Rook:        494,
	bitboard.Queen:       993,
	bitboard.King:        0,
}

var materialEG = [7]int32{
	bitboard.NoPieceType: 0,
	bitboard.Pawn:        111,
	bitboard.Knight:      305,
	bitboard.Bishop:      333,
	bitboard.Rook:        535,
	bitboard.Queen:       963,
	bitboard.King:        0,
}

// Phase weight per piece type, and the fully-loaded-board total used to
// interpolate between materialMG/EG and pstMG/EG.
var phaseWeight = [7]int32{
	bitboard.NoPieceType: 0,
	bitboard.Pawn:        0,
	bitboard.Knight:      1,
	bitboard.Bishop:      1,
	bitboard.Rook:        2,
	bitboard.Queen:       4,
	bitboard.King:        0,
}

const totalPhase = 1*4 + 1*4 + 2*4 + 4*2 // 4 knights + 4 bishops + 4 rooks + 2 queens
