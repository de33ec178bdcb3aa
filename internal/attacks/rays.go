package attacks

import "github.com/corvidchess/corvid/internal/bitboard"

type dir struct{ df, dr int }

var rookDirs = [4]dir{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
var bishopDirs = [4]dir{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// rayAttacks walks one direction from sq, stopping at the board edge or
// the first occupied square (inclusive, so captures are represented).
func rayAttacks(sq bitboard.Square, d dir, occ bitboard.Bitboard) bitboard.Bitboard {
	var result bitboard.Bitboard
	f, r := sq.File(), sq.Rank()
	for {
		f += d.df
		r += d.dr
		if f < 0 || f > 7 || r < 0 || r > 7 {
			break
		}
		s := bitboard.SquareFromFileRank(f, r)
		result |= s.Bit()
		if occ&s.Bit() != 0 {
			break
		}
	}
	return result
}

func slidingAttacks(dirs [4]dir, sq bitboard.Square, occ bitboard.Bitboard) bitboard.Bitboard {
	var result bitboard.Bitboard
	for _, d := range dirs {
		result |= rayAttacks(sq, d, occ)
	}
	return result
}

// RookAttacksSlow computes rook attacks by walking rays; used only to
// populate the magic tables at init.
func RookAttacksSlow(sq bitboard.Square, occ bitboard.Bitboard) bitboard.Bitboard {
	return slidingAttacks(rookDirs, sq, occ)
}

// BishopAttacksSlow computes bishop attacks by walking rays; used only to
// populate the magic tables at init.
func BishopAttacksSlow(sq bitboard.Square, occ bitboard.Bitboard) bitboard.Bitboard {
	return slidingAttacks(bishopDirs, sq, occ)
}

var edgeMask = bitboard.RankMask(0) | bitboard.RankMask(7) | bitboard.FileMask(0) | bitboard.FileMask(7)

// relevantRookMask returns the rook's blocker-relevant occupancy mask for
// sq: the rays to the board edge, excluding the terminal edge square in
// each direction (a blocker there can never hide anything further).
func relevantRookMask(sq bitboard.Square) bitboard.Bitboard {
	var mask bitboard.Bitboard
	mask |= rayAttacks(sq, dir{0, 1}, 0) &^ bitboard.RankMask(7)
	mask |= rayAttacks(sq, dir{0, -1}, 0) &^ bitboard.RankMask(0)
	mask |= rayAttacks(sq, dir{1, 0}, 0) &^ bitboard.FileMask(7)
	mask |= rayAttacks(sq, dir{-1, 0}, 0) &^ bitboard.FileMask(0)
	return mask
}

// relevantBishopMask returns the bishop's blocker-relevant occupancy mask.
func relevantBishopMask(sq bitboard.Square) bitboard.Bitboard {
	return slidingAttacks(bishopDirs, sq, 0) &^ edgeMask
}
