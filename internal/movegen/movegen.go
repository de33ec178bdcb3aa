// Package movegen generates legal moves from danger/checker/pin masks
// computed fresh for every position, per spec.md §4.3. Grounded on the
// teacher's goosemg/movegen.go (computeCheckAndPins, generateMovesFilteredInto),
// adapted from software-pext sliding attacks to the magic-bitboard
// internal/attacks package and from 32-bit to 16-bit moves.
package movegen

import (
	"github.com/corvidchess/corvid/internal/attacks"
	"github.com/corvidchess/corvid/internal/bitboard"
	"github.com/corvidchess/corvid/internal/move"
	"github.com/corvidchess/corvid/internal/position"
)

// Generate appends every legal move for the side to move to dst and
// returns the extended slice.
func Generate(pos *position.Position, dst []move.Move) []move.Move {
	return generate(pos, dst, false)
}

// GenerateCaptures appends captures only (capture-promotions included),
// for quiescence; quiet promotions are not generated.
func GenerateCaptures(pos *position.Position, dst []move.Move) []move.Move {
	return generate(pos, dst, true)
}

func generate(pos *position.Position, dst []move.Move, capturesOnly bool) []move.Move {
	us := pos.SideToMove()
	them := us.Opposite()
	occ := pos.Occupied()
	ownOcc := pos.ColorBB(us)
	oppOcc := pos.ColorBB(them)
	ksq := pos.KingSquare(us)

	danger := computeDanger(pos, them, occ, ksq)
	checkers := pos.AttackersTo(ksq, occ, them)
	pinned, pinLine := computePins(pos, us, them, occ, ksq)

	pos.Danger = danger
	pos.Checkers = checkers
	pos.Pinned = pinned

	dst = genKingMoves(pos, dst, us, ksq, ownOcc, danger, capturesOnly)

	if checkers.PopCount() >= 2 {
		pos.CaptureMask, pos.QuietMask = 0, 0
		return dst
	}

	var captureMask, quietMask bitboard.Bitboard
	if checkers != 0 {
		checkerSq := checkers.LSB()
		captureMask = checkers
		quietMask = attacks.Between[ksq][checkerSq]
	} else {
		captureMask = oppOcc
		quietMask = ^occ
	}
	pos.CaptureMask, pos.QuietMask = captureMask, quietMask

	genKnightMoves(pos, &dst, us, ownOcc, pinned, captureMask, quietMask, capturesOnly)
	genSliderMoves(pos, &dst, us, bitboard.Bishop, occ, ownOcc, pinned, pinLine, ksq, captureMask, quietMask, capturesOnly)
	genSliderMoves(pos, &dst, us, bitboard.Rook, occ, ownOcc, pinned, pinLine, ksq, captureMask, quietMask, capturesOnly)
	genSliderMoves(pos, &dst, us, bitboard.Queen, occ, ownOcc, pinned, pinLine, ksq, captureMask, quietMask, capturesOnly)
	dst = genPawnMoves(pos, dst, us, them, occ, pinned, pinLine, ksq, captureMask, quietMask, checkers, capturesOnly)

	if checkers == 0 && !capturesOnly {
		dst = genCastles(pos, dst, us, occ, danger)
	}

	return dst
}

// computeDanger returns every square Them attacks with our king removed
// from occupancy, so that sliding attacks x-ray through it.
func computeDanger(pos *position.Position, them bitboard.Color, occ bitboard.Bitboard, ourKing bitboard.Square) bitboard.Bitboard {
	occNoKing := occ &^ ourKing.Bit()
	var danger bitboard.Bitboard

	danger |= attacks.King[pos.KingSquare(them)]

	pawns := pos.PieceBB(them, bitboard.Pawn)
	for pawns != 0 {
		sq := pawns.PopLSB()
		danger |= attacks.Pawn[them][sq]
	}

	knights := pos.PieceBB(them, bitboard.Knight)
	for knights != 0 {
		sq := knights.PopLSB()
		danger |= attacks.Knight[sq]
	}

	diag := pos.PieceBB(them, bitboard.Bishop) | pos.PieceBB(them, bitboard.Queen)
	for diag != 0 {
		sq := diag.PopLSB()
		danger |= attacks.BishopAttacks(sq, occNoKing)
	}

	straight := pos.PieceBB(them, bitboard.Rook) | pos.PieceBB(them, bitboard.Queen)
	for straight != 0 {
		sq := straight.PopLSB()
		danger |= attacks.RookAttacks(sq, occNoKing)
	}

	return danger
}

// computePins returns the bitboard of pinned friendly pieces and, for
// each pinned square, the full LINE mask it is confined to.
func computePins(pos *position.Position, us, them bitboard.Color, occ bitboard.Bitboard, ksq bitboard.Square) (bitboard.Bitboard, [64]bitboard.Bitboard) {
	var pinned bitboard.Bitboard
	var pinLine [64]bitboard.Bitboard
	ownOcc := pos.ColorBB(us)

	diagSliders := pos.PieceBB(them, bitboard.Bishop) | pos.PieceBB(them, bitboard.Queen)
	straightSliders := pos.PieceBB(them, bitboard.Rook) | pos.PieceBB(them, bitboard.Queen)
	sliders := attacks.BishopAttacks(ksq, 0)&diagSliders | attacks.RookAttacks(ksq, 0)&straightSliders

	for s := sliders; s != 0; {
		sq := s.PopLSB()
		if attacks.Line[ksq][sq] == 0 {
			continue
		}
		between := attacks.Between[ksq][sq] & occ
		if between == 0 {
			continue
		}
		if !between.Singular() {
			continue
		}
		if between&ownOcc == 0 {
			continue
		}
		blocker := between.LSB()
		pinned |= blocker.Bit()
		pinLine[blocker] = attacks.Line[ksq][sq]
	}

	return pinned, pinLine
}

func genKingMoves(pos *position.Position, dst []move.Move, us bitboard.Color, ksq bitboard.Square, ownOcc, danger bitboard.Bitboard, capturesOnly bool) []move.Move {
	targets := attacks.King[ksq] &^ ownOcc &^ danger
	if capturesOnly {
		targets &= pos.ColorBB(us.Opposite())
	}
	oppOcc := pos.ColorBB(us.Opposite())
	for targets != 0 {
		to := targets.PopLSB()
		if to.Bit()&oppOcc != 0 {
			dst = append(dst, move.New(ksq, to, move.Capture))
		} else {
			dst = append(dst, move.New(ksq, to, move.Quiet))
		}
	}
	return dst
}

func genKnightMoves(pos *position.Position, dst *[]move.Move, us bitboard.Color, ownOcc, pinned bitboard.Bitboard, captureMask, quietMask bitboard.Bitboard, capturesOnly bool) {
	oppOcc := pos.ColorBB(us.Opposite())
	knights := pos.PieceBB(us, bitboard.Knight) &^ pinned
	for knights != 0 {
		from := knights.PopLSB()
		targets := attacks.Knight[from] &^ ownOcc & (captureMask | quietMask)
		if capturesOnly {
			targets &= captureMask
		}
		emitTargets(dst, from, targets, oppOcc)
	}
}

func genSliderMoves(pos *position.Position, dst *[]move.Move, us bitboard.Color, pt bitboard.PieceType, occ, ownOcc, pinned bitboard.Bitboard, pinLine [64]bitboard.Bitboard, ksq bitboard.Square, captureMask, quietMask bitboard.Bitboard, capturesOnly bool) {
	oppOcc := pos.ColorBB(us.Opposite())
	pieces := pos.PieceBB(us, pt)
	for pieces != 0 {
		from := pieces.PopLSB()
		targets := attacks.Attacks(pt, from, occ) &^ ownOcc & (captureMask | quietMask)
		if from.Bit()&pinned != 0 {
			targets &= pinLine[from]
		}
		if capturesOnly {
			targets &= captureMask
		}
		emitTargets(dst, from, targets, oppOcc)
	}
}

func emitTargets(dst *[]move.Move, from bitboard.Square, targets, oppOcc bitboard.Bitboard) {
	for targets != 0 {
		to := targets.PopLSB()
		if to.Bit()&oppOcc != 0 {
			*dst = append(*dst, move.New(from, to, move.Capture))
		} else {
			*dst = append(*dst, move.New(from, to, move.Quiet))
		}
	}
}
