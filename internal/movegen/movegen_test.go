package movegen

import (
	"testing"

	"github.com/corvidchess/corvid/internal/move"
	"github.com/corvidchess/corvid/internal/position"
)

func TestGenerateInitialPositionCount(t *testing.T) {
	pos, err := position.FromFEN(position.StartFEN)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	moves := Generate(pos, nil)
	if len(moves) != 20 {
		t.Fatalf("start position must have 20 legal moves, got %d", len(moves))
	}
}

func TestStalemate(t *testing.T) {
	pos, err := position.FromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	moves := Generate(pos, nil)
	if len(moves) != 0 {
		t.Fatalf("stalemated side must have zero legal moves, got %d", len(moves))
	}
	if pos.IsInCheck() {
		t.Fatalf("a stalemated king must not be in check")
	}
}

func TestCheckmateFoolsMate(t *testing.T) {
	pos, err := position.FromFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	moves := Generate(pos, nil)
	if len(moves) != 0 {
		t.Fatalf("checkmated side must have zero legal moves, got %d", len(moves))
	}
	if !pos.IsInCheck() {
		t.Fatalf("fool's-mated White must be in check")
	}
}

// TestPinnedEnPassantHorizontalCheck exercises spec.md §4.3's
// "pseudo-pinned" en passant rule: capturing en passant removes both
// pawns from the fourth rank simultaneously, which here exposes the
// king to a horizontal rook attack that neither pawn was individually
// pinning against.
func TestPinnedEnPassantHorizontalCheck(t *testing.T) {
	pos, err := position.FromFEN("8/8/8/8/k2Pp2R/8/8/2K5 b - d3 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	moves := Generate(pos, nil)
	for _, m := range moves {
		if m.Flag() == move.EnPassant {
			t.Fatalf("en-passant capture must be illegal: it exposes the king to Rh4")
		}
	}
}

func TestEnPassantLegalWhenNotPinned(t *testing.T) {
	pos, err := position.FromFEN("k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	moves := Generate(pos, nil)
	found := false
	for _, m := range moves {
		if m.Flag() == move.EnPassant {
			found = true
		}
	}
	if !found {
		t.Fatalf("en-passant capture must be legal and generated")
	}
}

func TestCapturesOnlyExcludesQuiets(t *testing.T) {
	pos, err := position.FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	moves := GenerateCaptures(pos, nil)
	if len(moves) == 0 {
		t.Fatalf("Kiwipete position must have at least one capture")
	}
	for _, m := range moves {
		if !m.IsCapture() && !m.IsPromotion() {
			t.Fatalf("GenerateCaptures produced a quiet non-promotion move: %s", m)
		}
	}
}
