// Package search implements iterative deepening with aspiration windows
// over a negamax alpha-beta core, quiescence, transposition table probing,
// and killer/history move ordering. Grounded on the teacher's
// engine/search.go (rootsearch/alphabeta/quiescence structure, score
// constants, node-count time-check cadence) trimmed to the selectivity
// spec.md §4.7 actually names: razoring, null-move (R=4), mate-distance
// pruning, a light (depth-1, no-TT-hit) form of internal iterative
// deepening, futility, late-move pruning, one-reply extension, and the
// LMR-then-PVS re-search ladder. The teacher's singular extensions,
// counter-move table, and reduced-search IID are dropped — spec.md names
// none of them.
package search

import (
	"fmt"
	"os"

	"github.com/corvidchess/corvid/internal/bitboard"
	"github.com/corvidchess/corvid/internal/move"
	"github.com/corvidchess/corvid/internal/movegen"
	"github.com/corvidchess/corvid/internal/order"
	"github.com/corvidchess/corvid/internal/position"
	"github.com/corvidchess/corvid/internal/tt"
)

// Result is what one call to Run reports about the completed search.
type Result struct {
	BestMove move.Move
	Score    int32
	Depth    int
	Nodes    uint64
}

// Searcher owns the move-ordering state (killers are cleared at the start
// of every search; history accumulates across searches with no decay)
// plus a shared transposition table.
type Searcher struct {
	tt      *tt.Table
	killers *order.Killers
	history *order.History
	opts    Options

	pos     *position.Position
	tm      *timeManager
	nodes   uint64
	stopped bool
}

// NewSearcher returns a searcher backed by table t, using DefaultOptions.
func NewSearcher(t *tt.Table) *Searcher {
	return NewSearcherWithOptions(t, DefaultOptions())
}

// NewSearcherWithOptions is NewSearcher with explicit selectivity tunables.
func NewSearcherWithOptions(t *tt.Table, opts Options) *Searcher {
	return &Searcher{tt: t, killers: order.NewKillers(), history: order.NewHistory(), opts: opts}
}

// Run performs iterative deepening on pos up to depthLimit plies (or
// maxDepth-1 if depthLimit is 0 or less, or maxDepth or more), stopping early once
// timePerMoveMs elapses; timePerMoveMs == 0 disables the time check
// entirely, per spec.md §4.7.4.
func (s *Searcher) Run(pos *position.Position, timePerMoveMs uint32, depthLimit int) Result {
	s.pos = pos
	s.tm = newTimeManager(timePerMoveMs)
	s.nodes = 0
	s.stopped = false
	s.killers.Clear()

	if depthLimit <= 0 || depthLimit >= maxDepth {
		depthLimit = maxDepth - 1
	}

	var best Result
	var prevPV pvLine
	var prevScore int32

	for depth := 1; depth <= depthLimit; depth++ {
		var pv pvLine
		score, ok := s.aspirate(depth, prevScore, &pv)
		if !ok {
			break
		}

		prevScore = score
		prevPV = pv
		best = Result{BestMove: pv.first(), Score: score, Depth: depth, Nodes: s.nodes}

		fmt.Fprintf(os.Stdout, "info depth %d nodes %d score cp %d pv %s\n",
			depth, s.nodes, score, pvString(&pv))

		if score > mateScore || score < -mateScore {
			break
		}
	}

	if best.BestMove == move.Null && prevPV.len > 0 {
		best.BestMove = prevPV.first()
	}
	if best.BestMove == move.Null {
		// Depth 1 never completed (time budget exhausted immediately);
		// fall back to the first generated legal move. A position with
		// no legal moves keeps the null move as its result.
		if moves := movegen.Generate(pos, make([]move.Move, 0, 48)); len(moves) > 0 {
			best.BestMove = moves[0]
		}
	}
	return best
}

// aspirate runs one iterative-deepening iteration with an aspiration
// window around prevScore, widening and retrying on fail-high/fail-low,
// per spec.md §4.7.1. ok is false only when the search was interrupted
// by the time budget before producing a usable line.
func (s *Searcher) aspirate(depth int, prevScore int32, pv *pvLine) (int32, bool) {
	var alpha, beta int32 = -maxScore, maxScore
	window := s.opts.AspirationWindow
	if depth >= 9 {
		alpha = prevScore - window
		beta = prevScore + window
	}

	for {
		pv.clear()
		score := s.negamax(alpha, beta, depth, 0, pv, true)
		if s.stopped {
			return 0, false
		}

		if score <= alpha {
			beta = (alpha + beta) / 2
			window += window / 2
			alpha = score - window
			if bitboard.Abs(alpha) > 3500 || bitboard.Abs(beta) > 3500 {
				alpha, beta = -maxScore, maxScore
			}
			continue
		}
		if score >= beta {
			window += window / 2
			beta = score + window
			if bitboard.Abs(alpha) > 3500 || bitboard.Abs(beta) > 3500 {
				alpha, beta = -maxScore, maxScore
			}
			continue
		}
		return score, true
	}
}

func hasNonPawnMaterial(pos *position.Position, c bitboard.Color) bool {
	return pos.PieceBB(c, bitboard.Knight)|pos.PieceBB(c, bitboard.Bishop)|
		pos.PieceBB(c, bitboard.Rook)|pos.PieceBB(c, bitboard.Queen) != 0
}

func victimType(pos *position.Position, m move.Move) bitboard.PieceType {
	if m.Flag() == move.EnPassant {
		return bitboard.Pawn
	}
	return pos.PieceAt(m.To()).Type()
}

func pvString(pv *pvLine) string {
	s := ""
	for i := 0; i < pv.len; i++ {
		if i > 0 {
			s += " "
		}
		s += pv.moves[i].String()
	}
	return s
}
