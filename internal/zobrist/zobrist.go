// Package zobrist holds the process-wide keys used to incrementally hash
// positions. Keys are generated once at init time from a fixed-seed
// xorshift PRNG, per spec.md §4.4.
package zobrist

import (
	"github.com/corvidchess/corvid/internal/bitboard"
	"github.com/corvidchess/corvid/internal/prng"
)

// Piece indexes the piece-square table by bitboard.Piece (0..11).
var Piece [12][64]uint64

// Side is XORed in when it is Black to move.
var Side uint64

// Castle indexes by the 4-bit castling-rights mask (0..15).
var Castle [16]uint64

// EnPassant indexes by en-passant file (0..7).
var EnPassant [8]uint64

func init() {
	gen := prng.New(0x9E3779B97F4A7C15)
	for p := 0; p < 12; p++ {
		for sq := 0; sq < 64; sq++ {
			Piece[p][sq] = gen.Next()
		}
	}
	Side = gen.Next()
	for c := 0; c < 16; c++ {
		Castle[c] = gen.Next()
	}
	for f := 0; f < 8; f++ {
		EnPassant[f] = gen.Next()
	}
}

// PieceKey returns the key toggled when p sits on sq.
func PieceKey(p bitboard.Piece, sq bitboard.Square) uint64 {
	return Piece[p][sq]
}
