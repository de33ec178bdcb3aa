package order

import (
	"github.com/corvidchess/corvid/internal/attacks"
	"github.com/corvidchess/corvid/internal/bitboard"
	"github.com/corvidchess/corvid/internal/move"
	"github.com/corvidchess/corvid/internal/position"
)

// seeValue gives each piece type a simple, non-tapered value for use in
// the exchange evaluator, grounded on the teacher's engine/see.go
// SeePieceValue table.
var seeValue = [7]int32{
	bitboard.NoPieceType: 0,
	bitboard.Pawn:        100,
	bitboard.Knight:      300,
	bitboard.Bishop:      300,
	bitboard.Rook:        500,
	bitboard.Queen:       900,
	bitboard.King:        5000,
}

// SEE statically evaluates the exchange sequence on m's target square
// and returns the net material gain for the side to move, per spec.md
// §4.6. Unlike the teacher's single-pass scan, attackers are
// re-discovered from the shrinking occupancy on every step, so a
// slider unmasked by an earlier capture (an x-ray attacker) is found;
// spec.md explicitly permits this correction.
func SEE(pos *position.Position, m move.Move) int32 {
	from := m.From()
	target := m.To()
	mover := pos.PieceAt(from)

	occ := pos.Occupied()
	var capturedValue int32
	switch {
	case m.Flag() == move.EnPassant:
		capturedValue = seeValue[bitboard.Pawn]
		occ &^= (target ^ 8).Bit()
	default:
		if captured := pos.PieceAt(target); captured != bitboard.NoPiece {
			capturedValue = seeValue[captured.Type()]
		}
	}
	occ &^= from.Bit()

	them := pos.SideToMove().Opposite()
	recursive := seeExchange(pos, target, them, occ, seeValue[mover.Type()])
	return capturedValue - recursive
}

func seeExchange(pos *position.Position, sq bitboard.Square, side bitboard.Color, occ bitboard.Bitboard, occupantValue int32) int32 {
	attackerSq, attackerType, ok := leastValuableAttacker(pos, sq, side, occ)
	if !ok {
		return 0
	}
	occAfter := occ &^ attackerSq.Bit()
	recursive := seeExchange(pos, sq, side.Opposite(), occAfter, seeValue[attackerType])
	gain := occupantValue - recursive
	if gain < 0 {
		gain = 0
	}
	return gain
}

var attackerOrder = [6]bitboard.PieceType{
	bitboard.Pawn, bitboard.Knight, bitboard.Bishop, bitboard.Rook, bitboard.Queen, bitboard.King,
}

func leastValuableAttacker(pos *position.Position, sq bitboard.Square, side bitboard.Color, occ bitboard.Bitboard) (bitboard.Square, bitboard.PieceType, bool) {
	for _, pt := range attackerOrder {
		present := pos.PieceBB(side, pt) & occ
		if present == 0 {
			continue
		}
		var reach bitboard.Bitboard
		switch pt {
		case bitboard.Pawn:
			reach = attacks.Pawn[side.Opposite()][sq]
		case bitboard.Knight:
			reach = attacks.Knight[sq]
		case bitboard.King:
			reach = attacks.King[sq]
		case bitboard.Bishop:
			reach = attacks.BishopAttacks(sq, occ)
		case bitboard.Rook:
			reach = attacks.RookAttacks(sq, occ)
		case bitboard.Queen:
			reach = attacks.QueenAttacks(sq, occ)
		}
		candidates := present & reach
		if candidates != 0 {
			return candidates.LSB(), pt, true
		}
	}
	return 0, 0, false
}
