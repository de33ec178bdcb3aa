package eval

import "github.com/corvidchess/corvid/internal/bitboard"

// Piece-square tables, indexed a1=0..h8=63 (White's orientation; Black
// looks up via a vertical mirror, sq^56). Authored in this engine's own
// square numbering rather than transcribed from the teacher's literal
// arrays, whose square-0 convention could not be confirmed without
// running code; see DESIGN.md. The shape (central knights/bishops,
// advancing pawns, king safety in the middlegame vs. centralization in
// the endgame) follows the teacher's evaluation.go in spirit.
var pstMG = [7][64]int32{
	bitboard.Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, -20, -20, 10, 10, 5,
		5, -5, -10, 0, 0, -10, -5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, 5, 10, 25, 25, 10, 5, 5,
		10, 10, 20, 30, 30, 20, 10, 10,
		50, 50, 50, 50, 50, 50, 50, 50,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	bitboard.Knight: {
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	},
	bitboard.Bishop: {
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	},
	bitboard.Rook: {
		0, 0, 0, 5, 5, 0, 0, 0,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		5, 10, 10, 10, 10, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	bitboard.Queen: {
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-5, 0, 5, 5, 5, 5, 0, -5,
		0, 0, 5, 5, 5, 5, 0, -5,
		-10, 5, 5, 5, 5, 5, 0, -10,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	},
	bitboard.King: {
		20, 30, 10, 0, 0, 10, 30, 20,
		20, 20, 0, 0, 0, 0, 20, 20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
	},
}

var pstEG = [7][64]int32{
	bitboard.Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		10, 10, 10, 10, 10, 10, 10, 10,
		20, 20, 20, 20, 20, 20, 20, 20,
		30, 30, 30, 30, 30, 30, 30, 30,
		50, 50, 50, 50, 50, 50, 50, 50,
		75, 75, 75, 75, 75, 75, 75, 75,
		100, 100, 100, 100, 100, 100, 100, 100,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	bitboard.Knight: {
		-40, -30, -20, -20, -20, -20, -30, -40,
		-30, -10, 0, 0, 0, 0, -10, -30,
		-20, 0, 10, 15, 15, 10, 0, -20,
		-20, 5, 15, 20, 20, 15, 5, -20,
		-20, 0, 15, 20, 20, 15, 0, -20,
		-20, 5, 10, 15, 15, 10, 5, -20,
		-30, -10, 0, 5, 5, 0, -10, -30,
		-40, -30, -20, -20, -20, -20, -30, -40,
	},
	bitboard.Bishop: {
		-10, -5, -5, -5, -5, -5, -5, -10,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-5, 5, 5, 5, 5, 5, 5, -5,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-5, 5, 5, 5, 5, 5, 5, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-10, -5, -5, -5, -5, -5, -5, -10,
	},
	bitboard.Rook: {
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		10, 10, 10, 10, 10, 10, 10, 10,
		5, 5, 5, 5, 5, 5, 5, 5,
	},
	bitboard.Queen: {
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	},
	bitboard.King: {
		-50, -30, -30, -30, -30, -30, -30, -50,
		-30, -30, 0, 0, 0, 0, -30, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -20, -10, 0, 0, -10, -20, -30,
		-50, -40, -30, -20, -20, -30, -40, -50,
	},
}

func pstValue(table *[7][64]int32, c bitboard.Color, pt bitboard.PieceType, sq bitboard.Square) int32 {
	if c == bitboard.Black {
		sq ^= 56
	}
	return table[pt][sq]
}
