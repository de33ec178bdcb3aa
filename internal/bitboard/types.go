// Package bitboard defines the primitive types shared by every layer of
// the engine: squares, files, ranks, colors, pieces and 64-bit bitboards.
package bitboard

import "math/bits"

// Bitboard is a set of squares packed into a 64-bit word; bit i is square i.
type Bitboard uint64

// Square is a board square in 0..63, a1=0, h8=63.
type Square int8

// NoSquare marks the absence of a square (e.g. no en-passant target).
const NoSquare Square = 64

// File returns the file (0=a .. 7=h) of the square.
func (s Square) File() int { return int(s) & 7 }

// Rank returns the rank (0=1st .. 7=8th) of the square.
func (s Square) Rank() int { return int(s) >> 3 }

// Bit returns the single-bit bitboard for the square.
func (s Square) Bit() Bitboard { return Bitboard(1) << uint(s) }

// SquareFromFileRank builds a square from 0-based file/rank.
func SquareFromFileRank(file, rank int) Square { return Square(rank*8 + file) }

// String renders the square in algebraic notation, e.g. "e4".
func (s Square) String() string {
	if s < 0 || s > 63 {
		return "-"
	}
	return string([]byte{'a' + byte(s.File()), '1' + byte(s.Rank())})
}

// Color is White or Black.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Opposite returns the other color.
func (c Color) Opposite() Color { return c ^ 1 }

// PieceType is a colorless piece kind.
type PieceType uint8

const (
	NoPieceType PieceType = 0
	Pawn        PieceType = 1
	Knight      PieceType = 2
	Bishop      PieceType = 3
	Rook        PieceType = 4
	Queen       PieceType = 5
	King        PieceType = 6
)

// Piece is a colored piece, encoded as (type-1) + 6*color; NoPiece is 12.
type Piece uint8

const NoPiece Piece = 12

// MakePiece combines a color and type into a Piece.
func MakePiece(c Color, pt PieceType) Piece {
	if pt == NoPieceType {
		return NoPiece
	}
	return Piece(int(pt)-1) + Piece(c)*6
}

// Type returns the colorless piece type.
func (p Piece) Type() PieceType {
	if p == NoPiece {
		return NoPieceType
	}
	return PieceType(p%6) + 1
}

// Color returns the piece's side. Undefined for NoPiece.
func (p Piece) Color() Color {
	if p >= 6 {
		return Black
	}
	return White
}

// pieceLetters indexes by PieceType (1..6) for uppercase (White) letters.
var pieceLetters = [...]byte{0, 'P', 'N', 'B', 'R', 'Q', 'K'}

// Letter returns the FEN piece letter, uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	if p == NoPiece {
		return '.'
	}
	l := pieceLetters[p.Type()]
	if p.Color() == Black {
		l += 'a' - 'A'
	}
	return l
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int { return bits.OnesCount64(uint64(b)) }

// LSB returns the least-significant set square, or NoSquare if empty.
func (b Bitboard) LSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLSB clears and returns the least-significant set square.
func (b *Bitboard) PopLSB() Square {
	s := b.LSB()
	*b &= *b - 1
	return s
}

// Singular reports whether exactly one bit is set.
func (b Bitboard) Singular() bool { return b != 0 && b&(b-1) == 0 }

// Squares calls fn for every set square, least-significant first.
func (b Bitboard) Squares(fn func(Square)) {
	for b != 0 {
		fn(b.PopLSB())
	}
}

// File/rank masks.
var (
	FileA Bitboard = 0x0101010101010101
	Rank1 Bitboard = 0x00000000000000FF
)

// FileMask returns the bitboard of all squares on the given file (0..7).
func FileMask(file int) Bitboard { return FileA << uint(file) }

// RankMask returns the bitboard of all squares on the given rank (0..7).
func RankMask(rank int) Bitboard { return Rank1 << uint(8*rank) }

var notFileA Bitboard = ^FileMask(0)
var notFileH Bitboard = ^FileMask(7)

// Shift moves every set bit by one step (df, dr each in -1..1), discarding
// bits that would wrap around a file edge. Used for pawn pushes/captures
// and king steps; sliders and knights use dedicated ray/offset tables.
func Shift(b Bitboard, df, dr int) Bitboard {
	if df == 1 {
		b &= notFileH
	} else if df == -1 {
		b &= notFileA
	}
	shift := dr*8 + df
	if shift >= 0 {
		return b << uint(shift)
	}
	return b >> uint(-shift)
}
