package attacks

import "github.com/corvidchess/corvid/internal/bitboard"

// King indexes by square.
var King [64]bitboard.Bitboard

// Knight indexes by square.
var Knight [64]bitboard.Bitboard

// Pawn indexes by [color][square]; rank-8/rank-1 entries for the
// respective color are left at 0 since pawns never occupy their own
// promotion rank.
var Pawn [2][64]bitboard.Bitboard

var knightOffsets = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingOffsets = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

func initNonSliders() {
	for sq := bitboard.Square(0); sq < 64; sq++ {
		file, rank := sq.File(), sq.Rank()

		var k bitboard.Bitboard
		for _, o := range knightOffsets {
			f, r := file+o[0], rank+o[1]
			if f >= 0 && f < 8 && r >= 0 && r < 8 {
				k |= bitboard.SquareFromFileRank(f, r).Bit()
			}
		}
		Knight[sq] = k

		var g bitboard.Bitboard
		for _, o := range kingOffsets {
			f, r := file+o[0], rank+o[1]
			if f >= 0 && f < 8 && r >= 0 && r < 8 {
				g |= bitboard.SquareFromFileRank(f, r).Bit()
			}
		}
		King[sq] = g

		var wp, bp bitboard.Bitboard
		if rank < 7 {
			if file > 0 {
				wp |= bitboard.SquareFromFileRank(file-1, rank+1).Bit()
			}
			if file < 7 {
				wp |= bitboard.SquareFromFileRank(file+1, rank+1).Bit()
			}
		}
		if rank > 0 {
			if file > 0 {
				bp |= bitboard.SquareFromFileRank(file-1, rank-1).Bit()
			}
			if file < 7 {
				bp |= bitboard.SquareFromFileRank(file+1, rank-1).Bit()
			}
		}
		Pawn[bitboard.White][sq] = wp
		Pawn[bitboard.Black][sq] = bp
	}
}

// Between holds, for each (a, b) sharing a rank/file/diagonal, the
// bitboard of squares strictly between them; 0 otherwise.
var Between [64][64]bitboard.Bitboard

// Line holds, for each (a, b) sharing a rank/file/diagonal, the full
// board-spanning line through both; 0 otherwise. Used for pin checks.
var Line [64][64]bitboard.Bitboard

func initBetweenAndLine() {
	allDirs := append(append([]dir{}, rookDirs[:]...), bishopDirs[:]...)
	for a := bitboard.Square(0); a < 64; a++ {
		for _, d := range allDirs {
			fullForward := rayAttacks(a, d, 0)
			opp := rayAttacks(a, dir{-d.df, -d.dr}, 0)
			line := fullForward | opp | a.Bit()

			var ray bitboard.Bitboard
			f, r := a.File(), a.Rank()
			for {
				f += d.df
				r += d.dr
				if f < 0 || f > 7 || r < 0 || r > 7 {
					break
				}
				b := bitboard.SquareFromFileRank(f, r)
				Between[a][b] = ray
				Line[a][b] = line
				ray |= b.Bit()
			}
		}
	}
}
