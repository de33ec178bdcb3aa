package position

import (
	"github.com/corvidchess/corvid/internal/attacks"
	"github.com/corvidchess/corvid/internal/bitboard"
)

// AttackersTo returns the set of side's pieces that attack sq, given an
// explicit occupancy bitboard (so callers can probe through a
// hypothetically-removed piece, e.g. for castling danger squares).
func (p *Position) AttackersTo(sq bitboard.Square, occ bitboard.Bitboard, side bitboard.Color) bitboard.Bitboard {
	var att bitboard.Bitboard
	att |= attacks.Pawn[side.Opposite()][sq] & p.PieceBB(side, bitboard.Pawn)
	att |= attacks.Knight[sq] & p.PieceBB(side, bitboard.Knight)
	att |= attacks.King[sq] & p.PieceBB(side, bitboard.King)

	diag := p.PieceBB(side, bitboard.Bishop) | p.PieceBB(side, bitboard.Queen)
	att |= attacks.BishopAttacks(sq, occ) & diag

	straight := p.PieceBB(side, bitboard.Rook) | p.PieceBB(side, bitboard.Queen)
	att |= attacks.RookAttacks(sq, occ) & straight

	return att
}

// IsInCheck reports whether the side to move's king is attacked.
func (p *Position) IsInCheck() bool {
	us := p.sideToMove
	return p.AttackersTo(p.KingSquare(us), p.Occupied(), us.Opposite()) != 0
}

// IsDraw reports a draw by the 50-move rule, threefold repetition, or
// insufficient mating material, per spec.md §4.2/§8.
func (p *Position) IsDraw() bool {
	if p.halfMove >= 100 {
		return true
	}
	if p.isInsufficientMaterial() {
		return true
	}
	return p.isRepetition()
}

// isRepetition reports whether the current hash has occurred at least
// twice before within the irreversible-move window, making this the
// third occurrence.
func (p *Position) isRepetition() bool {
	end := p.ply - p.halfMove
	if end < 0 {
		end = 0
	}
	count := 0
	for i := p.ply - 2; i >= end; i -= 2 {
		if p.history[i].Hash == p.hash {
			count++
			if count >= 2 {
				return true
			}
		}
	}
	return false
}

// isInsufficientMaterial treats minor-piece count as purely material,
// ignoring bishop square color and knight-vs-bishop type, per spec.md's
// explicit callout (colors of bishops ignored here, since the source
// treats it as material-only).
func (p *Position) isInsufficientMaterial() bool {
	if p.pieceBB[bitboard.MakePiece(bitboard.White, bitboard.Pawn)] != 0 ||
		p.pieceBB[bitboard.MakePiece(bitboard.Black, bitboard.Pawn)] != 0 {
		return false
	}
	if p.PieceTypeBB(bitboard.Rook) != 0 || p.PieceTypeBB(bitboard.Queen) != 0 {
		return false
	}

	wMinor := p.PieceBB(bitboard.White, bitboard.Knight).PopCount() + p.PieceBB(bitboard.White, bitboard.Bishop).PopCount()
	bMinor := p.PieceBB(bitboard.Black, bitboard.Knight).PopCount() + p.PieceBB(bitboard.Black, bitboard.Bishop).PopCount()

	return wMinor <= 1 && bMinor <= 1
}
