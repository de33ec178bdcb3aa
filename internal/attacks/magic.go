// Package attacks builds the process-wide, init-time attack tables: the
// fixed king/knight/pawn lookups and the magic-bitboard rook/bishop
// slider tables, plus the Between/Line tables used for pin and evasion
// masks. Grounded on the ray-table scaffolding in the teacher's
// goosemg/movegen.go and the magic-number search/index technique in
// other_examples/csgarlock-Ghobos__Magic.go — the teacher itself only
// builds a software-PEXT table, so the magic multiply-shift index here
// follows Ghobos instead, per spec.md §4.1.
package attacks

import (
	"github.com/corvidchess/corvid/internal/bitboard"
	"github.com/corvidchess/corvid/internal/prng"
)

// Magic holds one square's magic-bitboard parameters.
type Magic struct {
	Mask   bitboard.Bitboard
	Number uint64
	Shift  uint
}

// Index computes the table slot for a given occupancy.
func (m *Magic) Index(occ bitboard.Bitboard) uint64 {
	blockers := uint64(occ) & uint64(m.Mask)
	return (blockers * m.Number) >> m.Shift
}

var rookMagics [64]Magic
var bishopMagics [64]Magic
var rookTable [64][]bitboard.Bitboard
var bishopTable [64][]bitboard.Bitboard

func init() {
	initNonSliders()
	buildMagics(&rookMagics, rookTable[:], relevantRookMask, RookAttacksSlow, 0x1234567890ABCDEF)
	buildMagics(&bishopMagics, bishopTable[:], relevantBishopMask, BishopAttacksSlow, 0xFEDCBA0987654321)
	initBetweenAndLine()
}

func buildMagics(magics *[64]Magic, table [][]bitboard.Bitboard, maskFn func(bitboard.Square) bitboard.Bitboard, slowFn func(bitboard.Square, bitboard.Bitboard) bitboard.Bitboard, seed uint64) {
	gen := prng.New(seed)
	for sq := bitboard.Square(0); sq < 64; sq++ {
		mask := maskFn(sq)
		bits := mask.PopCount()
		size := 1 << uint(bits)
		shift := uint(64 - bits)

		occupancies := make([]bitboard.Bitboard, size)
		reference := make([]bitboard.Bitboard, size)
		subset := bitboard.Bitboard(0)
		for i := 0; ; i++ {
			occupancies[i] = subset
			reference[i] = slowFn(sq, subset)
			subset = (subset - mask) & mask
			if subset == 0 {
				break
			}
		}

		m := Magic{Mask: mask, Shift: shift}
		slot := make([]bitboard.Bitboard, size)
		for {
			m.Number = gen.Sparse()
			for i := range slot {
				slot[i] = 0
			}
			used := make([]bool, size)
			ok := true
			for i := 0; i < size; i++ {
				idx := m.Index(occupancies[i])
				if used[idx] {
					if slot[idx] != reference[i] {
						ok = false
						break
					}
					continue
				}
				used[idx] = true
				slot[idx] = reference[i]
			}
			if ok {
				break
			}
		}
		magics[sq] = m
		table[sq] = append([]bitboard.Bitboard(nil), slot...)
	}
}

// RookAttacks returns rook attacks from sq given full-board occupancy,
// ignoring friendly occupancy (the caller masks that out).
func RookAttacks(sq bitboard.Square, occ bitboard.Bitboard) bitboard.Bitboard {
	m := &rookMagics[sq]
	return rookTable[sq][m.Index(occ)]
}

// BishopAttacks returns bishop attacks from sq given full-board occupancy.
func BishopAttacks(sq bitboard.Square, occ bitboard.Bitboard) bitboard.Bitboard {
	m := &bishopMagics[sq]
	return bishopTable[sq][m.Index(occ)]
}

// QueenAttacks returns the union of rook and bishop attacks from sq.
func QueenAttacks(sq bitboard.Square, occ bitboard.Bitboard) bitboard.Bitboard {
	return RookAttacks(sq, occ) | BishopAttacks(sq, occ)
}
