package attacks

import "github.com/corvidchess/corvid/internal/bitboard"

// Attacks returns the set of squares pt attacks from sq given board
// occupancy occ, ignoring friendly occupancy. Undefined for Pawn; use
// Pawn[color][sq] directly, per spec.md §4.1.
func Attacks(pt bitboard.PieceType, sq bitboard.Square, occ bitboard.Bitboard) bitboard.Bitboard {
	switch pt {
	case bitboard.Knight:
		return Knight[sq]
	case bitboard.King:
		return King[sq]
	case bitboard.Bishop:
		return BishopAttacks(sq, occ)
	case bitboard.Rook:
		return RookAttacks(sq, occ)
	case bitboard.Queen:
		return QueenAttacks(sq, occ)
	default:
		return 0
	}
}
