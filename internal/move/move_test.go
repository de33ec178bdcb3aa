package move

import (
	"testing"

	"github.com/corvidchess/corvid/internal/bitboard"
)

func TestNewFromToFlagRoundTrip(t *testing.T) {
	m := New(bitboard.Square(12), bitboard.Square(28), Capture)
	if m.From() != 12 {
		t.Fatalf("From() = %d, want 12", m.From())
	}
	if m.To() != 28 {
		t.Fatalf("To() = %d, want 28", m.To())
	}
	if m.Flag() != Capture {
		t.Fatalf("Flag() = %v, want Capture", m.Flag())
	}
}

func TestNullMove(t *testing.T) {
	if !Null.IsNull() {
		t.Fatalf("Null.IsNull() must be true")
	}
	m := New(bitboard.Square(8), bitboard.Square(16), Quiet)
	if m.IsNull() {
		t.Fatalf("a2a3 quiet move must not be null")
	}
}

func TestIsCapture(t *testing.T) {
	captureFlags := []Flag{Capture, EnPassant, PromoCaptureKnight, PromoCaptureBishop, PromoCaptureRook, PromoCaptureQueen}
	for _, f := range captureFlags {
		m := New(0, 1, f)
		if !m.IsCapture() {
			t.Errorf("flag %v must report IsCapture", f)
		}
	}
	nonCapture := []Flag{Quiet, DoublePush, ShortCastle, LongCastle, PromoKnight, PromoBishop, PromoRook, PromoQueen}
	for _, f := range nonCapture {
		m := New(0, 1, f)
		if m.IsCapture() {
			t.Errorf("flag %v must not report IsCapture", f)
		}
	}
}

func TestIsPromotionAndType(t *testing.T) {
	cases := []struct {
		flag Flag
		want bitboard.PieceType
	}{
		{PromoKnight, bitboard.Knight},
		{PromoBishop, bitboard.Bishop},
		{PromoRook, bitboard.Rook},
		{PromoQueen, bitboard.Queen},
		{PromoCaptureKnight, bitboard.Knight},
		{PromoCaptureQueen, bitboard.Queen},
	}
	for _, c := range cases {
		m := New(8, 0, c.flag)
		if !m.IsPromotion() {
			t.Errorf("flag %v must report IsPromotion", c.flag)
		}
		if got := m.PromotionType(); got != c.want {
			t.Errorf("flag %v PromotionType() = %v, want %v", c.flag, got, c.want)
		}
	}
	if New(8, 16, Quiet).IsPromotion() {
		t.Fatalf("quiet move must not report IsPromotion")
	}
	if New(8, 16, Quiet).PromotionType() != bitboard.NoPieceType {
		t.Fatalf("quiet move PromotionType() must be NoPieceType")
	}
}

func TestString(t *testing.T) {
	m := New(bitboard.SquareFromFileRank(4, 1), bitboard.SquareFromFileRank(4, 3), DoublePush)
	if got, want := m.String(), "e2e4"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}

	promo := New(bitboard.SquareFromFileRank(4, 6), bitboard.SquareFromFileRank(4, 7), PromoQueen)
	if got, want := promo.String(), "e7e8q"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}

	if got, want := Null.String(), "NULL MOVE"; got != want {
		t.Fatalf("Null.String() = %q, want %q", got, want)
	}
}
