package movegen

import (
	"github.com/corvidchess/corvid/internal/attacks"
	"github.com/corvidchess/corvid/internal/bitboard"
	"github.com/corvidchess/corvid/internal/move"
	"github.com/corvidchess/corvid/internal/position"
)

var promoFlags = [4]move.Flag{move.PromoKnight, move.PromoBishop, move.PromoRook, move.PromoQueen}
var promoCaptureFlags = [4]move.Flag{move.PromoCaptureKnight, move.PromoCaptureBishop, move.PromoCaptureRook, move.PromoCaptureQueen}

func genPawnMoves(
	pos *position.Position,
	dst []move.Move,
	us, them bitboard.Color,
	occ, pinned bitboard.Bitboard,
	pinLine [64]bitboard.Bitboard,
	ksq bitboard.Square,
	captureMask, quietMask, checkers bitboard.Bitboard,
	capturesOnly bool,
) []move.Move {
	forward, startRank, promoRank := 1, 1, 7
	if us == bitboard.Black {
		forward, startRank, promoRank = -1, 6, 0
	}

	pawns := pos.PieceBB(us, bitboard.Pawn)
	for p := pawns; p != 0; {
		from := p.PopLSB()
		line := bitboard.Bitboard(0)
		isPinned := from.Bit()&pinned != 0
		if isPinned {
			line = pinLine[from]
		}

		file, rank := from.File(), from.Rank()

		if !capturesOnly {
			oneRank := rank + forward
			if oneRank >= 0 && oneRank <= 7 {
				oneSq := bitboard.SquareFromFileRank(file, oneRank)
				if occ&oneSq.Bit() == 0 {
					allowed := oneSq.Bit() & quietMask
					if !isPinned || allowed&line != 0 {
						if allowed != 0 {
							dst = appendPawnMove(dst, from, oneSq, oneRank == promoRank, false)
						}
					}

					if rank == startRank {
						twoRank := rank + 2*forward
						twoSq := bitboard.SquareFromFileRank(file, twoRank)
						if occ&twoSq.Bit() == 0 {
							allowed2 := twoSq.Bit() & quietMask
							if (!isPinned || allowed2&line != 0) && allowed2 != 0 {
								dst = append(dst, move.New(from, twoSq, move.DoublePush))
							}
						}
					}
				}
			}
		}

		capTargets := attacks.Pawn[us][from] & pos.ColorBB(them) & captureMask
		if isPinned {
			capTargets &= line
		}
		for capTargets != 0 {
			to := capTargets.PopLSB()
			dst = appendPawnMove(dst, from, to, to.Rank() == promoRank, true)
		}

		if ep := pos.EPSquare(); ep != bitboard.NoSquare {
			if attacks.Pawn[us][from]&ep.Bit() != 0 {
				dst = maybeAppendEnPassant(pos, dst, us, them, from, ep, pinned, pinLine, ksq, occ, checkers)
			}
		}
	}

	return dst
}

func appendPawnMove(dst []move.Move, from, to bitboard.Square, promotion, capture bool) []move.Move {
	if !promotion {
		if capture {
			return append(dst, move.New(from, to, move.Capture))
		}
		return append(dst, move.New(from, to, move.Quiet))
	}
	flags := promoFlags
	if capture {
		flags = promoCaptureFlags
	}
	for _, f := range flags {
		dst = append(dst, move.New(from, to, f))
	}
	return dst
}

// maybeAppendEnPassant validates and appends a single en-passant capture,
// applying both the ordinary pin-ray restriction and the "pseudo-pinned"
// horizontal-slider check from spec.md §4.3.
func maybeAppendEnPassant(
	pos *position.Position,
	dst []move.Move,
	us, them bitboard.Color,
	from, to bitboard.Square,
	pinned bitboard.Bitboard,
	pinLine [64]bitboard.Bitboard,
	ksq bitboard.Square,
	occ bitboard.Bitboard,
	checkers bitboard.Bitboard,
) []move.Move {
	capturedSq := to ^ 8

	if checkers != 0 {
		checker := checkers.LSB()
		resolvesByCapture := checker == capturedSq
		resolvesByBlock := attacks.Between[ksq][checker]&to.Bit() != 0
		if !resolvesByCapture && !resolvesByBlock {
			return dst
		}
	}

	if from.Bit()&pinned != 0 && pinLine[from]&to.Bit() == 0 {
		return dst
	}

	occAfter := (occ &^ from.Bit() &^ capturedSq.Bit()) | to.Bit()
	horizontalAttackers := attacks.RookAttacks(ksq, occAfter) & (pos.PieceBB(them, bitboard.Rook) | pos.PieceBB(them, bitboard.Queen))
	if horizontalAttackers != 0 {
		return dst
	}

	return append(dst, move.New(from, to, move.EnPassant))
}
