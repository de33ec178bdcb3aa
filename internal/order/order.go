// Package order scores and sorts move lists ahead of search, combining
// the TT move, MVV-LVA/SEE on captures, killer moves, and history.
// Grounded on the teacher's engine/moveordering.go scoreMovesList/
// orderNextMove, restructured around this engine's Move/Position types.
package order

import (
	"sort"

	"github.com/corvidchess/corvid/internal/bitboard"
	"github.com/corvidchess/corvid/internal/move"
	"github.com/corvidchess/corvid/internal/position"
)

const (
	ttMoveScore      = 10_000_000
	winningCaptureAdd = 7_000_000
	firstKillerScore  = 6_000_000
	secondKillerScore = 5_000_000
)

// Scored pairs a move with its ordering key for sorting.
type Scored struct {
	Move  move.Move
	Score int32
}

// Score assigns every move in moves its ordering key, per spec.md §4.6.
func Score(pos *position.Position, moves []move.Move, ttMove move.Move, killers *Killers, history *History, ply int) []Scored {
	us := pos.SideToMove()
	out := make([]Scored, len(moves))

	k1, k2 := move.Null, move.Null
	if killers != nil {
		k1, k2 = killers.First(ply), killers.Second(ply)
	}

	for i, m := range moves {
		out[i] = Scored{Move: m, Score: scoreOneMove(pos, m, us, ttMove, k1, k2, history)}
	}
	return out
}

// Sort orders scored moves by descending score, stable for ties.
func Sort(scored []Scored) {
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
}

func scoreOneMove(pos *position.Position, m move.Move, us bitboard.Color, ttMove, k1, k2 move.Move, history *History) int32 {
	if m == ttMove {
		return ttMoveScore
	}

	if m.IsCapture() {
		victimSq := m.To()
		var victimType bitboard.PieceType
		if m.Flag() == move.EnPassant {
			victimType = bitboard.Pawn
		} else {
			victimType = pos.PieceAt(victimSq).Type()
		}
		attackerType := pos.PieceAt(m.From()).Type()
		score := MVVLVA(victimType, attackerType)
		if SEE(pos, m) >= 0 {
			score += winningCaptureAdd
		}
		return score
	}

	if m == k1 {
		return firstKillerScore
	}
	if m == k2 {
		return secondKillerScore
	}

	return history.Score(us, m.From(), m.To())
}
