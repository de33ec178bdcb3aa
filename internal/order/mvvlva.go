package order

import "github.com/corvidchess/corvid/internal/bitboard"

// mvvLva is a fixed victim×attacker table: higher-value victim and
// lower-value attacker score higher, used as a capture tie-break.
// Grounded on the teacher's engine/moveordering.go mvvLva table.
var mvvLva = [7][7]int32{
	bitboard.Pawn: {
		bitboard.Pawn: 14, bitboard.Knight: 13, bitboard.Bishop: 12,
		bitboard.Rook: 11, bitboard.Queen: 10, bitboard.King: 0,
	},
	bitboard.Knight: {
		bitboard.Pawn: 24, bitboard.Knight: 23, bitboard.Bishop: 22,
		bitboard.Rook: 21, bitboard.Queen: 20, bitboard.King: 0,
	},
	bitboard.Bishop: {
		bitboard.Pawn: 34, bitboard.Knight: 33, bitboard.Bishop: 32,
		bitboard.Rook: 31, bitboard.Queen: 30, bitboard.King: 0,
	},
	bitboard.Rook: {
		bitboard.Pawn: 44, bitboard.Knight: 43, bitboard.Bishop: 42,
		bitboard.Rook: 41, bitboard.Queen: 40, bitboard.King: 0,
	},
	bitboard.Queen: {
		bitboard.Pawn: 54, bitboard.Knight: 53, bitboard.Bishop: 52,
		bitboard.Rook: 51, bitboard.Queen: 50, bitboard.King: 0,
	},
}

// MVVLVA scores a capture by victim and attacker piece type.
func MVVLVA(victim, attacker bitboard.PieceType) int32 {
	return mvvLva[victim][attacker]
}
