package movegen

import (
	"github.com/corvidchess/corvid/internal/bitboard"
	"github.com/corvidchess/corvid/internal/move"
	"github.com/corvidchess/corvid/internal/position"
)

type castleSquares struct {
	kingFrom, kingTo   bitboard.Square
	rookFrom, rookTo   bitboard.Square
	emptyMask          bitboard.Bitboard
	kingPathDangerMask bitboard.Bitboard
}

var (
	whiteShort = castleSquares{
		kingFrom: 4, kingTo: 6, rookFrom: 7, rookTo: 5,
		emptyMask:          bitboard.Square(5).Bit() | bitboard.Square(6).Bit(),
		kingPathDangerMask: bitboard.Square(4).Bit() | bitboard.Square(5).Bit() | bitboard.Square(6).Bit(),
	}
	whiteLong = castleSquares{
		kingFrom: 4, kingTo: 2, rookFrom: 0, rookTo: 3,
		emptyMask:          bitboard.Square(1).Bit() | bitboard.Square(2).Bit() | bitboard.Square(3).Bit(),
		kingPathDangerMask: bitboard.Square(4).Bit() | bitboard.Square(3).Bit() | bitboard.Square(2).Bit(),
	}
	blackShort = castleSquares{
		kingFrom: 60, kingTo: 62, rookFrom: 63, rookTo: 61,
		emptyMask:          bitboard.Square(61).Bit() | bitboard.Square(62).Bit(),
		kingPathDangerMask: bitboard.Square(60).Bit() | bitboard.Square(61).Bit() | bitboard.Square(62).Bit(),
	}
	blackLong = castleSquares{
		kingFrom: 60, kingTo: 58, rookFrom: 56, rookTo: 59,
		emptyMask:          bitboard.Square(57).Bit() | bitboard.Square(58).Bit() | bitboard.Square(59).Bit(),
		kingPathDangerMask: bitboard.Square(60).Bit() | bitboard.Square(59).Bit() | bitboard.Square(58).Bit(),
	}
)

// genCastles appends legal castling moves. Only called when the side to
// move is not currently in check, per spec.md §4.3 step 10.
func genCastles(pos *position.Position, dst []move.Move, us bitboard.Color, occ, danger bitboard.Bitboard) []move.Move {
	if us == bitboard.White {
		if pos.CanCastleShort(us) && canCastle(whiteShort, occ, danger) {
			dst = append(dst, move.New(whiteShort.kingFrom, whiteShort.kingTo, move.ShortCastle))
		}
		if pos.CanCastleLong(us) && canCastle(whiteLong, occ, danger) {
			dst = append(dst, move.New(whiteLong.kingFrom, whiteLong.kingTo, move.LongCastle))
		}
		return dst
	}
	if pos.CanCastleShort(us) && canCastle(blackShort, occ, danger) {
		dst = append(dst, move.New(blackShort.kingFrom, blackShort.kingTo, move.ShortCastle))
	}
	if pos.CanCastleLong(us) && canCastle(blackLong, occ, danger) {
		dst = append(dst, move.New(blackLong.kingFrom, blackLong.kingTo, move.LongCastle))
	}
	return dst
}

func canCastle(c castleSquares, occ, danger bitboard.Bitboard) bool {
	if occ&c.emptyMask != 0 {
		return false
	}
	if danger&c.kingPathDangerMask != 0 {
		return false
	}
	return true
}
