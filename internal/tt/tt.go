// Package tt implements the transposition table: a single contiguous
// array of depth-preferred entries sized from a megabyte budget.
// Grounded on the teacher's engine/transposition.go (mate-score ply
// adjustment, depth-preferred replacement, bound-checked probe), but
// single-slot-per-index per spec.md §4.5 rather than the teacher's
// 4-way clustering.
package tt

import "github.com/corvidchess/corvid/internal/move"

// Bound classifies a stored score relative to the search window that
// produced it.
type Bound uint8

const (
	None Bound = iota
	Exact
	Lower
	Upper
)

// Entry is one transposition table slot.
type Entry struct {
	Hash  uint64
	Move  move.Move
	Score int16
	Depth int8
	Bound Bound
}

// Table is a fixed-size, non-growing transposition table.
type Table struct {
	entries []Entry
}

const bytesPerMB = 1024 * 1024

// New allocates a table sized from a megabyte budget. sizeMB must be
// at least 1.
func New(sizeMB int) *Table {
	if sizeMB < 1 {
		sizeMB = 1
	}
	const entrySize = 24 // bytes budgeted per entry; sizeof(Entry) is 16 (8+2+2+1+1 padded)
	count := sizeMB * bytesPerMB / entrySize
	if count < 1 {
		count = 1
	}
	return &Table{entries: make([]Entry, count)}
}

func (t *Table) index(hash uint64) uint64 { return hash % uint64(len(t.entries)) }

// Probe returns the stored entry for hash iff present, bound, and
// searched to at least minDepth.
func (t *Table) Probe(hash uint64, minDepth int) (Entry, bool) {
	e := &t.entries[t.index(hash)]
	if e.Hash != hash || e.Bound == None || int(e.Depth) < minDepth {
		return Entry{}, false
	}
	return *e, true
}

// Store writes a new entry, applying depth-preferred replacement: a
// slot is overwritten if empty, if its key matches, or if the new
// depth is at least the slot's depth.
func (t *Table) Store(hash uint64, m move.Move, score int16, depth int, bound Bound, ply int) {
	e := &t.entries[t.index(hash)]
	if e.Bound != None && e.Hash != hash && int8(depth) < e.Depth {
		return
	}

	score = toTTScore(score, ply)

	e.Hash = hash
	e.Move = m
	e.Score = score
	e.Depth = int8(depth)
	e.Bound = bound
}

// ProbeScore adjusts a stored mate score back to the current ply,
// mirroring the inverse transform applied in Store.
func ProbeScore(e Entry, ply int) int16 { return fromTTScore(e.Score, ply) }

// Mate scores are stored as distance-to-mate-from-root so that a mate
// score found deep in one branch compares correctly when retrieved at
// a different ply, per standard TT practice (grounded on the teacher's
// useEntry/storeEntry ply adjustment).
//
// internal/search's mate scores are always ±mateScore∓ply with
// mateScore == 20000 and ply bounded by its maxDepth of 128, so every
// real mate score falls in (19872, 20000]; importing those constants
// here would cycle back through search, so the threshold is kept as a
// literal comfortably below that floor.
const mateThreshold = 19000

func toTTScore(score int16, ply int) int16 {
	if score > mateThreshold {
		return score + int16(ply)
	}
	if score < -mateThreshold {
		return score - int16(ply)
	}
	return score
}

func fromTTScore(score int16, ply int) int16 {
	if score > mateThreshold {
		return score - int16(ply)
	}
	if score < -mateThreshold {
		return score + int16(ply)
	}
	return score
}

// Clear resets every slot, discarding all stored entries.
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
}
