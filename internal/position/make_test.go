package position

import (
	"testing"

	"github.com/corvidchess/corvid/internal/bitboard"
	"github.com/corvidchess/corvid/internal/move"
)

func mustFEN(t *testing.T, fen string) *Position {
	t.Helper()
	p, err := FromFEN(fen)
	if err != nil {
		t.Fatalf("FromFEN(%q): %v", fen, err)
	}
	return p
}

func assertRoundTrip(t *testing.T, p *Position, m move.Move) {
	t.Helper()
	before := p.ToFEN()
	beforeHash := p.Hash()
	p.MakeMove(m)
	if p.Hash() != p.ComputeHash() {
		t.Errorf("move %s: incremental hash diverged from recomputed hash after MakeMove", m)
	}
	p.UnmakeMove(m)
	if got := p.ToFEN(); got != before {
		t.Errorf("move %s: UnmakeMove did not restore FEN: got %q want %q", m, got, before)
	}
	if p.Hash() != beforeHash {
		t.Errorf("move %s: UnmakeMove did not restore hash", m)
	}
}

func TestMakeUnmakeQuiet(t *testing.T) {
	p := mustFEN(t, StartFEN)
	m := move.New(bitboard.SquareFromFileRank(4, 1), bitboard.SquareFromFileRank(4, 3), move.DoublePush)
	assertRoundTrip(t, p, m)
}

func TestMakeUnmakeCapture(t *testing.T) {
	p := mustFEN(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	// Nxd7: the White knight on e5 takes the Black pawn on d7.
	m := move.New(bitboard.SquareFromFileRank(4, 4), bitboard.SquareFromFileRank(3, 6), move.Capture)
	assertRoundTrip(t, p, m)
}

func TestMakeUnmakeEnPassant(t *testing.T) {
	p := mustFEN(t, "k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
	from := bitboard.SquareFromFileRank(4, 4)
	to := bitboard.SquareFromFileRank(3, 5)
	m := move.New(from, to, move.EnPassant)
	assertRoundTrip(t, p, m)
}

func TestMakeUnmakeCastleShort(t *testing.T) {
	p := mustFEN(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	m := move.New(bitboard.SquareFromFileRank(4, 0), bitboard.SquareFromFileRank(6, 0), move.ShortCastle)
	assertRoundTrip(t, p, m)
}

func TestMakeUnmakePromotion(t *testing.T) {
	p := mustFEN(t, "1n5k/P7/8/8/8/8/8/7K w - - 0 1")
	m := move.New(bitboard.SquareFromFileRank(0, 6), bitboard.SquareFromFileRank(0, 7), move.PromoQueen)
	assertRoundTrip(t, p, m)
}

func TestMakeUnmakePromotionCapture(t *testing.T) {
	p := mustFEN(t, "1n5k/P7/8/8/8/8/8/7K w - - 0 1")
	m := move.New(bitboard.SquareFromFileRank(0, 6), bitboard.SquareFromFileRank(1, 7), move.PromoCaptureQueen)
	assertRoundTrip(t, p, m)
}

func TestHalfMoveClockResets(t *testing.T) {
	p := mustFEN(t, StartFEN)
	m := move.New(bitboard.SquareFromFileRank(4, 1), bitboard.SquareFromFileRank(4, 3), move.DoublePush)
	p.MakeMove(m)
	if p.HalfMoveClock() != 0 {
		t.Fatalf("pawn move must reset half-move clock, got %d", p.HalfMoveClock())
	}
}

func TestMakeUnmakeNull(t *testing.T) {
	p := mustFEN(t, StartFEN)
	before := p.ToFEN()
	p.MakeNull()
	if p.SideToMove() == 0 {
		t.Fatalf("MakeNull must flip side to move")
	}
	if p.EPSquare() != bitboard.NoSquare {
		t.Fatalf("MakeNull must clear the en-passant square")
	}
	p.UnmakeNull()
	if got := p.ToFEN(); got != before {
		t.Fatalf("UnmakeNull did not restore FEN: got %q want %q", got, before)
	}
}
