package eval

import (
	"testing"

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

func TestStartPositionIsBalanced(t *testing.T) {
	p := mustFEN(t, position.StartFEN)
	if got := Evaluate(p); got != 0 {
		t.Fatalf("symmetric start position must evaluate to 0, got %d", got)
	}
}

func TestSideToMoveSignFlip(t *testing.T) {
	white := mustFEN(t, "4k3/8/8/8/8/8/4Q3/4K3 w - - 0 1")
	black := mustFEN(t, "4k3/8/8/8/8/8/4Q3/4K3 b - - 0 1")
	if Evaluate(white) != -Evaluate(black) {
		t.Fatalf("flipping side to move on an identical board must negate the score")
	}
}

func TestExtraQueenIsPositive(t *testing.T) {
	p := mustFEN(t, "4k3/8/8/8/8/8/4Q3/4K3 w - - 0 1")
	if got := Evaluate(p); got <= 500 {
		t.Fatalf("side to move with an extra queen must score well above a rook's worth, got %d", got)
	}
}

func TestBlackExtraRookIsNegativeForWhite(t *testing.T) {
	p := mustFEN(t, "4k2r/8/8/8/8/8/8/4K3 w - - 0 1")
	if got := Evaluate(p); got >= -300 {
		t.Fatalf("White to move facing an extra Black rook must score well below zero, got %d", got)
	}
}
