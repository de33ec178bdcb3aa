package search

import (
	"github.com/corvidchess/corvid/internal/eval"
	"github.com/corvidchess/corvid/internal/move"
	"github.com/corvidchess/corvid/internal/movegen"
	"github.com/corvidchess/corvid/internal/order"
	"github.com/corvidchess/corvid/internal/tt"
)

// quiescence resolves tactical sequences at leaf nodes, per spec.md
// §4.7.3: stand-pat, delta-pruned captures, fail-soft alpha-beta.
func (s *Searcher) quiescence(alpha, beta int32, ply int) int32 {
	s.nodes++
	if s.nodes&2047 == 0 && s.tm.exceeded() {
		s.stopped = true
	}
	if s.stopped {
		return 0
	}

	pos := s.pos
	isPV := beta-alpha > 1

	entry, found := s.tt.Probe(pos.Hash(), 0)
	if found && !isPV {
		score := int32(tt.ProbeScore(entry, ply))
		switch entry.Bound {
		case tt.Exact:
			return score
		case tt.Lower:
			if score > alpha {
				alpha = score
			}
		case tt.Upper:
			if score < beta {
				beta = score
			}
		}
		if alpha >= beta {
			return score
		}
	}

	inCheck := pos.IsInCheck()
	standPat := eval.Evaluate(pos)

	bestScore := standPat
	if inCheck {
		bestScore = -maxScore
	} else {
		if standPat >= beta {
			return standPat
		}
		if standPat > alpha {
			alpha = standPat
		}
	}

	var moves []move.Move
	if inCheck {
		moves = movegen.Generate(pos, make([]move.Move, 0, 48))
	} else {
		moves = movegen.GenerateCaptures(pos, make([]move.Move, 0, 24))
	}

	if len(moves) == 0 {
		if inCheck {
			return -mateScore + int32(ply)
		}
		return standPat
	}

	scored := order.Score(pos, moves, move.Null, s.killers, s.history, ply)
	order.Sort(scored)

	us := pos.SideToMove()
	hasNonPawn := hasNonPawnMaterial(pos, us)
	bestMove := move.Null
	ttFlag := tt.Upper

	for _, sm := range scored {
		m := sm.Move

		if !inCheck {
			if !m.IsPromotion() && hasNonPawn {
				if standPat+s.opts.DeltaMargin+deltaVictimValue[victimType(pos, m)] < alpha {
					continue
				}
			}
		}

		pos.MakeMove(m)
		score := -s.quiescence(-beta, -alpha, ply+1)
		pos.UnmakeMove(m)

		if s.stopped {
			return 0
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
			if score > alpha {
				alpha = score
				ttFlag = tt.Exact
			}
		}

		if alpha >= beta {
			ttFlag = tt.Lower
			break
		}
	}

	s.tt.Store(pos.Hash(), bestMove, int16(bestScore), 0, ttFlag, ply)
	return bestScore
}
