package order

import (
	"github.com/corvidchess/corvid/internal/move"
	"github.com/corvidchess/corvid/internal/position"
)

// Killers holds, per search ply, the two most recent non-capture moves
// that caused a beta cutoff. Grounded on the teacher's engine/killer.go.
type Killers struct {
	table [position.MaxPly][2]move.Move
}

// NewKillers returns an empty killer table.
func NewKillers() *Killers { return &Killers{} }

// Insert records m as the newest killer at ply, demoting the previous
// first killer, unless m is already the first killer.
func (k *Killers) Insert(ply int, m move.Move) {
	if ply < 0 || ply >= position.MaxPly {
		return
	}
	if k.table[ply][0] == m {
		return
	}
	k.table[ply][1] = k.table[ply][0]
	k.table[ply][0] = m
}

// First returns the primary killer at ply.
func (k *Killers) First(ply int) move.Move {
	if ply < 0 || ply >= position.MaxPly {
		return move.Null
	}
	return k.table[ply][0]
}

// Second returns the secondary killer at ply.
func (k *Killers) Second(ply int) move.Move {
	if ply < 0 || ply >= position.MaxPly {
		return move.Null
	}
	return k.table[ply][1]
}

// Clear empties the table, used between searches.
func (k *Killers) Clear() {
	for i := range k.table {
		k.table[i][0] = move.Null
		k.table[i][1] = move.Null
	}
}
