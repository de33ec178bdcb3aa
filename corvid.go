// Package corvid is the programmatic entry point described in spec.md
// §6: construct an Engine from a FEN string, then ask it for a move.
// Grounded on the teacher's uci.go, trimmed to the bare `new`/
// `find_best_move` contract — the UCI read-eval-print loop itself is
// dropped, per SPEC_FULL.md's Non-goals.
package corvid

import (
	"github.com/corvidchess/corvid/internal/move"
	"github.com/corvidchess/corvid/internal/position"
	"github.com/corvidchess/corvid/internal/search"
	"github.com/corvidchess/corvid/internal/tt"
)

// DefaultTTSizeMB is the transposition table size used when a caller
// does not otherwise configure one, per spec.md §5.
const DefaultTTSizeMB = 16

// Engine owns one Position plus the search state that searches it.
// Per spec.md §5, an Engine is single-threaded: FindBestMove exclusively
// owns the Position for the duration of the call.
type Engine struct {
	pos      *position.Position
	searcher *search.Searcher
}

// New parses fen into a fresh Engine with a DefaultTTSizeMB transposition
// table. It returns position.ErrInvalidFEN (wrapped) on malformed input.
func New(fen string) (*Engine, error) {
	return NewWithTTSize(fen, DefaultTTSizeMB)
}

// NewWithTTSize is New with an explicit transposition table budget.
func NewWithTTSize(fen string, ttSizeMB int) (*Engine, error) {
	pos, err := position.FromFEN(fen)
	if err != nil {
		return nil, err
	}
	return &Engine{
		pos:      pos,
		searcher: search.NewSearcher(tt.New(ttSizeMB)),
	}, nil
}

// FindBestMove runs iterative deepening for up to timeMs milliseconds
// and returns the best move found, per spec.md §6. A timeMs of 0
// disables the time check entirely (fixed-depth testing), per §4.7.4;
// callers doing so should prefer FindBestMoveToDepth to also bound the
// search.
func (e *Engine) FindBestMove(timeMs uint32) move.Move {
	return e.searcher.Run(e.pos, timeMs, 0).BestMove
}

// FindBestMoveToDepth runs a fixed-depth search, ignoring the clock.
// Used for deterministic (perft-adjacent) testing per spec.md §9.
func (e *Engine) FindBestMoveToDepth(depth int) move.Move {
	return e.searcher.Run(e.pos, 0, depth).BestMove
}

// Position exposes the engine's live position for inspection (FEN
// round-trip, move application by callers driving a game loop).
func (e *Engine) Position() *position.Position { return e.pos }

// MakeMove applies m to the engine's position, keeping the search's
// persistent state (TT, history) for the next search.
func (e *Engine) MakeMove(m move.Move) { e.pos.MakeMove(m) }
