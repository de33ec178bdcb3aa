package position

import (
	"github.com/corvidchess/corvid/internal/bitboard"
	"github.com/corvidchess/corvid/internal/move"
	"github.com/corvidchess/corvid/internal/zobrist"
)

func shortCastleRookSquares(c bitboard.Color) (from, to bitboard.Square) {
	if c == bitboard.White {
		return squareH1, squareF1
	}
	return squareH8, squareF8
}

func longCastleRookSquares(c bitboard.Color) (from, to bitboard.Square) {
	if c == bitboard.White {
		return squareA1, squareD1
	}
	return squareA8, squareD8
}

// epCaptureSquare returns the square of the pawn taken by an en-passant
// capture landing on to. Flipping the rank bit (XOR 8) lands on the
// square directly behind to, which for a legal en-passant target is
// always where the captured pawn sits, per spec.md §4.2.
func epCaptureSquare(to bitboard.Square) bitboard.Square { return to ^ 8 }

// MakeMove applies m, pushing a new StateInfo. Must be paired with
// UnmakeMove(m), per spec.md §4.2.
func (p *Position) MakeMove(m move.Move) {
	from, to, flag := m.From(), m.To(), m.Flag()
	us := p.sideToMove
	moving := p.mailbox[from]
	captured := bitboard.NoPiece

	switch flag {
	case move.Quiet:
		p.movePiece(from, to)
	case move.DoublePush:
		p.movePiece(from, to)
	case move.EnPassant:
		captured = p.removePiece(epCaptureSquare(to))
		p.movePiece(from, to)
	case move.ShortCastle:
		p.movePiece(from, to)
		rf, rt := shortCastleRookSquares(us)
		p.movePiece(rf, rt)
	case move.LongCastle:
		p.movePiece(from, to)
		rf, rt := longCastleRookSquares(us)
		p.movePiece(rf, rt)
	case move.Capture:
		captured = p.removePiece(to)
		p.movePiece(from, to)
	case move.PromoKnight, move.PromoBishop, move.PromoRook, move.PromoQueen:
		p.removePiece(from)
		p.addPiece(bitboard.MakePiece(us, m.PromotionType()), to)
	case move.PromoCaptureKnight, move.PromoCaptureBishop, move.PromoCaptureRook, move.PromoCaptureQueen:
		captured = p.removePiece(to)
		p.removePiece(from)
		p.addPiece(bitboard.MakePiece(us, m.PromotionType()), to)
	}

	p.castleMask |= from.Bit() | to.Bit()

	if moving.Type() == bitboard.Pawn || captured != bitboard.NoPiece {
		p.halfMove = 0
	} else {
		p.halfMove++
	}

	if flag == move.DoublePush {
		p.epSquare = epCaptureSquare(to)
	} else {
		p.epSquare = bitboard.NoSquare
	}

	p.sideToMove = us.Opposite()
	p.hash ^= zobrist.Side

	p.ply++
	p.history[p.ply] = StateInfo{
		Hash:          p.hash,
		Captured:      captured,
		EPSquare:      p.epSquare,
		CastleMask:    p.castleMask,
		HalfMoveClock: p.halfMove,
	}
}

// UnmakeMove is the exact inverse of MakeMove(m); it must be called with
// the same move that produced the current top-of-stack state.
func (p *Position) UnmakeMove(m move.Move) {
	captured := p.history[p.ply].Captured
	from, to, flag := m.From(), m.To(), m.Flag()
	us := p.sideToMove.Opposite()

	switch flag {
	case move.Quiet, move.DoublePush:
		p.movePiece(to, from)
	case move.EnPassant:
		p.movePiece(to, from)
		p.addPiece(captured, epCaptureSquare(to))
	case move.ShortCastle:
		p.movePiece(to, from)
		rf, rt := shortCastleRookSquares(us)
		p.movePiece(rt, rf)
	case move.LongCastle:
		p.movePiece(to, from)
		rf, rt := longCastleRookSquares(us)
		p.movePiece(rt, rf)
	case move.Capture:
		p.movePiece(to, from)
		p.addPiece(captured, to)
	case move.PromoKnight, move.PromoBishop, move.PromoRook, move.PromoQueen:
		p.removePiece(to)
		p.addPiece(bitboard.MakePiece(us, bitboard.Pawn), from)
	case move.PromoCaptureKnight, move.PromoCaptureBishop, move.PromoCaptureRook, move.PromoCaptureQueen:
		p.removePiece(to)
		p.addPiece(bitboard.MakePiece(us, bitboard.Pawn), from)
		p.addPiece(captured, to)
	}

	p.sideToMove = us
	prev := p.history[p.ply-1]
	p.hash = prev.Hash
	p.castleMask = prev.CastleMask
	p.epSquare = prev.EPSquare
	p.halfMove = prev.HalfMoveClock
	p.ply--
}

// MakeNull toggles the side to move only, clearing the en-passant
// square. Must not be called while the side to move is in check.
func (p *Position) MakeNull() {
	p.epSquare = bitboard.NoSquare
	p.sideToMove = p.sideToMove.Opposite()
	p.hash ^= zobrist.Side

	p.ply++
	p.history[p.ply] = StateInfo{
		Hash:          p.hash,
		Captured:      bitboard.NoPiece,
		EPSquare:      p.epSquare,
		CastleMask:    p.castleMask,
		HalfMoveClock: p.halfMove,
	}
}

// UnmakeNull is the exact inverse of MakeNull.
func (p *Position) UnmakeNull() {
	prev := p.history[p.ply-1]
	p.sideToMove = p.sideToMove.Opposite()
	p.hash = prev.Hash
	p.epSquare = prev.EPSquare
	p.castleMask = prev.CastleMask
	p.halfMove = prev.HalfMoveClock
	p.ply--
}
