package search

import (
	"github.com/corvidchess/corvid/internal/bitboard"
	"github.com/corvidchess/corvid/internal/eval"
	"github.com/corvidchess/corvid/internal/move"
	"github.com/corvidchess/corvid/internal/movegen"
	"github.com/corvidchess/corvid/internal/order"
	"github.com/corvidchess/corvid/internal/position"
	"github.com/corvidchess/corvid/internal/tt"
)

// negamax implements spec.md §4.7.2's numbered order of operations.
// alpha/beta/depth/ply follow the caller's convention; isRoot is true
// only for the ply-0 call of each iterative-deepening iteration.
func (s *Searcher) negamax(alpha, beta int32, depth, ply int, pv *pvLine, isRoot bool) int32 {
	pv.clear()

	s.nodes++
	if s.nodes&4095 == 0 && s.tm.exceeded() {
		s.stopped = true
	}
	if s.stopped {
		return 0
	}

	pos := s.pos
	isPV := beta-alpha > 1

	if !isRoot && pos.IsDraw() {
		return drawScore
	}

	if ply >= maxDepth {
		return scoreFromEval(pos)
	}

	if depth <= 0 {
		return s.quiescence(alpha, beta, ply)
	}

	inCheck := pos.IsInCheck()

	entry, found := s.tt.Probe(pos.Hash(), 0)
	ttMove := move.Null
	if found {
		ttMove = entry.Move
	}
	if found && int(entry.Depth) >= depth && !isPV && !isRoot {
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

	var staticEval int32
	if inCheck {
		staticEval = -maxScore
	} else if found {
		staticEval = int32(tt.ProbeScore(entry, ply))
	} else {
		staticEval = scoreFromEval(pos)
	}

	if depth >= 3 && !found {
		depth--
	}

	if !isPV && !inCheck {
		if depth < 3 && staticEval+s.opts.RazorMargin < alpha {
			return s.quiescence(alpha, beta, ply)
		}

		us := pos.SideToMove()
		if hasNonPawnMaterial(pos, us) && depth >= 3 && staticEval >= beta {
			pos.MakeNull()
			var childPV pvLine
			nullScore := -s.negamax(-beta, -beta+1, depth-1-s.opts.NullMoveR, ply+1, &childPV, false)
			pos.UnmakeNull()
			if s.stopped {
				return 0
			}
			if nullScore >= beta {
				// Return the clamped bound, not the raw null-search score:
				// a deep null-move line can report a mate score that
				// doesn't actually hold with the side to move restored.
				return beta
			}
		}

		alpha = bitboard.Max(alpha, -mateScore+int32(ply))
		beta = bitboard.Min(beta, mateScore-int32(ply)-1)
		if alpha >= beta {
			return alpha
		}
	}

	moves := movegen.Generate(pos, make([]move.Move, 0, 48))
	if len(moves) == 0 {
		if inCheck {
			return -mateScore + int32(ply)
		}
		return drawScore
	}
	if inCheck && len(moves) == 1 {
		depth++
	}

	scored := order.Score(pos, moves, ttMove, s.killers, s.history, ply)
	order.Sort(scored)

	us := pos.SideToMove()
	bestScore := -maxScore
	bestMove := move.Null
	ttFlag := tt.Upper
	moveCount := 0
	quietCount := 0

	for _, sm := range scored {
		m := sm.Move
		moveCount++
		isQuiet := !m.IsCapture() && !m.IsPromotion()

		if isQuiet {
			quietCount++
		}
		if isQuiet && !inCheck && !isPV {
			if depth <= 4 && staticEval+s.opts.FutilityPerDepth*int32(depth) < alpha {
				continue
			}
			if depth <= 5 && quietCount > s.opts.LMPQuietFactor*depth*depth {
				continue
			}
		}

		pos.MakeMove(m)
		var childPV pvLine
		var score int32
		switch {
		case moveCount == 1:
			score = -s.negamax(-beta, -alpha, depth-1, ply+1, &childPV, false)
		case !isPV && moveCount >= 4 && depth >= 3 && !inCheck:
			score = -s.negamax(-alpha-1, -alpha, depth-2, ply+1, &childPV, false)
			if score > alpha {
				score = -s.negamax(-alpha-1, -alpha, depth-1, ply+1, &childPV, false)
				if score > alpha && score < beta {
					score = -s.negamax(-beta, -alpha, depth-1, ply+1, &childPV, false)
				}
			}
		default:
			score = -s.negamax(-alpha-1, -alpha, depth-1, ply+1, &childPV, false)
			if score > alpha && score < beta {
				score = -s.negamax(-beta, -alpha, depth-1, ply+1, &childPV, false)
			}
		}
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
				pv.update(m, &childPV)
			}
		}

		if alpha >= beta {
			ttFlag = tt.Lower
			if isQuiet {
				s.killers.Insert(ply, m)
				s.history.Add(us, m.From(), m.To(), depth)
			}
			break
		}
	}

	s.tt.Store(pos.Hash(), bestMove, int16(bestScore), depth, ttFlag, ply)
	return bestScore
}

func scoreFromEval(pos *position.Position) int32 { return eval.Evaluate(pos) }
