package eval

import (
	"github.com/corvidchess/corvid/internal/bitboard"
	"github.com/corvidchess/corvid/internal/position"
)

// Evaluate returns a deterministic centipawn score from the side to
// move's point of view: material plus piece-square tables, tapered
// between middlegame and endgame weights by remaining non-pawn material.
func Evaluate(pos *position.Position) int32 {
	var mg, eg, phase int32

	for pt := bitboard.Pawn; pt <= bitboard.King; pt++ {
		white := pos.PieceBB(bitboard.White, pt)
		for bb := white; bb != 0; {
			sq := bb.PopLSB()
			mg += materialMG[pt] + pstValue(&pstMG, bitboard.White, pt, sq)
			eg += materialEG[pt] + pstValue(&pstEG, bitboard.White, pt, sq)
			phase += phaseWeight[pt]
		}

		black := pos.PieceBB(bitboard.Black, pt)
		for bb := black; bb != 0; {
			sq := bb.PopLSB()
			mg -= materialMG[pt] + pstValue(&pstMG, bitboard.Black, pt, sq)
			eg -= materialEG[pt] + pstValue(&pstEG, bitboard.Black, pt, sq)
			phase += phaseWeight[pt]
		}
	}

	phase = clamp(phase, 0, totalPhase)
	score := (mg*phase + eg*(totalPhase-phase)) / totalPhase

	if pos.SideToMove() == bitboard.Black {
		return -score
	}
	return score
}
