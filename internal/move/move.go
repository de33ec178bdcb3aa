// Package move defines the packed 16-bit Move encoding shared by every
// layer above the board representation.
package move

import "github.com/corvidchess/corvid/internal/bitboard"

// Move packs to:6 | from:6 | flags:4 into 16 bits, per spec.
type Move uint16

// Flag enumerates the move's special-case tag.
type Flag uint8

const (
	Quiet              Flag = 0
	DoublePush         Flag = 1
	ShortCastle        Flag = 2
	LongCastle         Flag = 3
	Capture            Flag = 4
	EnPassant          Flag = 5
	PromoKnight        Flag = 6
	PromoBishop        Flag = 7
	PromoRook          Flag = 8
	PromoQueen         Flag = 9
	PromoCaptureKnight Flag = 10
	PromoCaptureBishop Flag = 11
	PromoCaptureRook   Flag = 12
	PromoCaptureQueen  Flag = 13
)

const (
	fromShift = 0
	toShift   = 6
	flagShift = 12
	fieldMask = 0x3F
	flagMask  = 0xF
)

// Null is the all-zero move: from=a1, to=a1, flag=Quiet.
const Null Move = 0

// New packs a move from its components.
func New(from, to bitboard.Square, flag Flag) Move {
	return Move(uint16(from)&fieldMask | (uint16(to)&fieldMask)<<toShift | (uint16(flag)&flagMask)<<flagShift)
}

// From returns the origin square.
func (m Move) From() bitboard.Square { return bitboard.Square((uint16(m) >> fromShift) & fieldMask) }

// To returns the destination square.
func (m Move) To() bitboard.Square { return bitboard.Square((uint16(m) >> toShift) & fieldMask) }

// Flag returns the move's flag tag.
func (m Move) Flag() Flag { return Flag((uint16(m) >> flagShift) & flagMask) }

// IsNull reports whether this is the null move (from==to==a1, Quiet flag).
func (m Move) IsNull() bool { return m == Null }

// IsCapture reports whether the move removes an enemy piece.
func (m Move) IsCapture() bool {
	switch m.Flag() {
	case Capture, EnPassant, PromoCaptureKnight, PromoCaptureBishop, PromoCaptureRook, PromoCaptureQueen:
		return true
	default:
		return false
	}
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Flag() >= PromoKnight && m.Flag() <= PromoCaptureQueen
}

// PromotionType returns the colorless promoted piece type, or NoPieceType
// if the move is not a promotion.
func (m Move) PromotionType() bitboard.PieceType {
	switch m.Flag() {
	case PromoKnight, PromoCaptureKnight:
		return bitboard.Knight
	case PromoBishop, PromoCaptureBishop:
		return bitboard.Bishop
	case PromoRook, PromoCaptureRook:
		return bitboard.Rook
	case PromoQueen, PromoCaptureQueen:
		return bitboard.Queen
	default:
		return bitboard.NoPieceType
	}
}

var promoLetter = map[bitboard.PieceType]byte{
	bitboard.Knight: 'n',
	bitboard.Bishop: 'b',
	bitboard.Rook:   'r',
	bitboard.Queen:  'q',
}

// String renders the move as coordinate text, e.g. "e2e4" or "e7e8q".
// The null move renders as "NULL MOVE" and must never reach serialized
// output per spec.
func (m Move) String() string {
	if m.IsNull() {
		return "NULL MOVE"
	}
	s := m.From().String() + m.To().String()
	if pt := m.PromotionType(); pt != bitboard.NoPieceType {
		s += string(promoLetter[pt])
	}
	return s
}
