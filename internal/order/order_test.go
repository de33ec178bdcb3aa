package order

import (
	"testing"

	"github.com/corvidchess/corvid/internal/bitboard"
	"github.com/corvidchess/corvid/internal/move"
	"github.com/corvidchess/corvid/internal/position"
)

func mustFEN(t *testing.T, fen string) *position.Position {
	t.Helper()
	p, err := position.FromFEN(fen)
	if err != nil {
		t.Fatalf("FromFEN(%q): %v", fen, err)
	}
	return p
}

func TestTTMoveOutranksEverything(t *testing.T) {
	pos := mustFEN(t, position.StartFEN)
	tt := move.New(bitboard.SquareFromFileRank(4, 1), bitboard.SquareFromFileRank(4, 3), move.DoublePush)
	other := move.New(bitboard.SquareFromFileRank(1, 0), bitboard.SquareFromFileRank(2, 2), move.Quiet)

	scored := Score(pos, []move.Move{other, tt}, tt, NewKillers(), NewHistory(), 0)
	Sort(scored)
	if scored[0].Move != tt {
		t.Fatalf("TT move must sort first, got %s", scored[0].Move)
	}
}

func TestWinningCaptureOutranksKiller(t *testing.T) {
	// Nxd6: the White knight on e4 takes an undefended Black pawn on d6.
	pos := mustFEN(t, "4k3/8/3p4/8/4N3/8/8/4K3 w - - 0 1")
	capture := move.New(bitboard.SquareFromFileRank(4, 3), bitboard.SquareFromFileRank(3, 5), move.Capture)
	killer := move.New(bitboard.SquareFromFileRank(0, 0), bitboard.SquareFromFileRank(0, 1), move.Quiet)

	killers := NewKillers()
	killers.Insert(0, killer)

	scored := Score(pos, []move.Move{killer, capture}, move.Null, killers, NewHistory(), 0)
	Sort(scored)
	if scored[0].Move != capture {
		t.Fatalf("a non-losing capture must outrank a killer move, got %s first", scored[0].Move)
	}
}

func TestKillerOutranksHistory(t *testing.T) {
	pos := mustFEN(t, position.StartFEN)
	killerMove := move.New(bitboard.SquareFromFileRank(1, 0), bitboard.SquareFromFileRank(2, 2), move.Quiet)
	historyMove := move.New(bitboard.SquareFromFileRank(6, 0), bitboard.SquareFromFileRank(5, 2), move.Quiet)

	killers := NewKillers()
	killers.Insert(0, killerMove)
	history := NewHistory()
	history.Add(bitboard.White, historyMove.From(), historyMove.To(), 10)

	scored := Score(pos, []move.Move{historyMove, killerMove}, move.Null, killers, history, 0)
	Sort(scored)
	if scored[0].Move != killerMove {
		t.Fatalf("killer move must outrank a plain history-scored move, got %s first", scored[0].Move)
	}
}

func TestMVVLVAPrefersValuableVictim(t *testing.T) {
	if MVVLVA(bitboard.Queen, bitboard.Pawn) <= MVVLVA(bitboard.Pawn, bitboard.Pawn) {
		t.Fatalf("capturing a queen with a pawn must score above capturing a pawn with a pawn")
	}
}

func TestMVVLVAPrefersCheapAttacker(t *testing.T) {
	if MVVLVA(bitboard.Queen, bitboard.Pawn) <= MVVLVA(bitboard.Queen, bitboard.Queen) {
		t.Fatalf("capturing a queen with a pawn must score above capturing a queen with a queen")
	}
}

func TestHistoryClear(t *testing.T) {
	h := NewHistory()
	h.Add(bitboard.White, 8, 16, 4)
	if h.Score(bitboard.White, 8, 16) == 0 {
		t.Fatalf("Add must increase the history score")
	}
	h.Clear()
	if h.Score(bitboard.White, 8, 16) != 0 {
		t.Fatalf("Clear must reset the history table")
	}
}

func TestKillerInsertDemotesAndDeduplicates(t *testing.T) {
	k := NewKillers()
	m1 := move.New(0, 1, move.Quiet)
	m2 := move.New(2, 3, move.Quiet)

	k.Insert(5, m1)
	k.Insert(5, m2)
	if k.First(5) != m2 || k.Second(5) != m1 {
		t.Fatalf("second Insert must become first killer, demoting the original: first=%s second=%s", k.First(5), k.Second(5))
	}

	k.Insert(5, m2)
	if k.First(5) != m2 || k.Second(5) != m1 {
		t.Fatalf("re-inserting the current first killer must not change the table")
	}
}
