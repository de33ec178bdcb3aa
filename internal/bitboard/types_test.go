package bitboard

import "testing"

func TestSquareFileRank(t *testing.T) {
	sq := SquareFromFileRank(4, 3)
	if sq.File() != 4 || sq.Rank() != 3 {
		t.Fatalf("SquareFromFileRank(4,3) round-trip: got file=%d rank=%d", sq.File(), sq.Rank())
	}
	if got, want := sq.String(), "e4"; got != want {
		t.Fatalf("String(): got %q want %q", got, want)
	}
}

func TestMakePieceRoundTrip(t *testing.T) {
	for _, c := range []Color{White, Black} {
		for pt := Pawn; pt <= King; pt++ {
			p := MakePiece(c, pt)
			if p.Type() != pt {
				t.Fatalf("MakePiece(%v,%v).Type() = %v", c, pt, p.Type())
			}
			if p.Color() != c {
				t.Fatalf("MakePiece(%v,%v).Color() = %v", c, pt, p.Color())
			}
		}
	}
}

func TestNoPiece(t *testing.T) {
	if MakePiece(White, NoPieceType) != NoPiece {
		t.Fatalf("MakePiece with NoPieceType must return NoPiece")
	}
	if NoPiece.Type() != NoPieceType {
		t.Fatalf("NoPiece.Type() = %v, want NoPieceType", NoPiece.Type())
	}
	if NoPiece.Letter() != '.' {
		t.Fatalf("NoPiece.Letter() = %q, want '.'", NoPiece.Letter())
	}
}

func TestPieceLetter(t *testing.T) {
	cases := []struct {
		p    Piece
		want byte
	}{
		{MakePiece(White, King), 'K'},
		{MakePiece(Black, King), 'k'},
		{MakePiece(White, Pawn), 'P'},
		{MakePiece(Black, Queen), 'q'},
	}
	for _, c := range cases {
		if got := c.p.Letter(); got != c.want {
			t.Errorf("Letter(): got %q want %q", got, c.want)
		}
	}
}

func TestPopCountLSBPopLSB(t *testing.T) {
	b := Bitboard(0b1011000)
	if got := b.PopCount(); got != 3 {
		t.Fatalf("PopCount() = %d, want 3", got)
	}
	first := b.LSB()
	if first != 3 {
		t.Fatalf("LSB() = %d, want 3", first)
	}
	var seen []Square
	for b != 0 {
		seen = append(seen, b.PopLSB())
	}
	if len(seen) != 3 || seen[0] != 3 || seen[1] != 4 || seen[2] != 6 {
		t.Fatalf("PopLSB sequence = %v, want [3 4 6]", seen)
	}
}

func TestLSBEmpty(t *testing.T) {
	var b Bitboard
	if b.LSB() != NoSquare {
		t.Fatalf("LSB() of empty board must be NoSquare")
	}
}

func TestSingular(t *testing.T) {
	if !Bitboard(1 << 5).Singular() {
		t.Fatalf("single-bit board must be Singular")
	}
	if Bitboard(0).Singular() {
		t.Fatalf("empty board must not be Singular")
	}
	if Bitboard(0b11).Singular() {
		t.Fatalf("two-bit board must not be Singular")
	}
}

func TestFileRankMask(t *testing.T) {
	if FileMask(0) != FileA {
		t.Fatalf("FileMask(0) != FileA")
	}
	if FileMask(0)&FileMask(1) != 0 {
		t.Fatalf("adjacent file masks must not overlap")
	}
	if RankMask(0) != Rank1 {
		t.Fatalf("RankMask(0) != Rank1")
	}
}

func TestShiftDiscardsWraparound(t *testing.T) {
	h1 := SquareFromFileRank(7, 0).Bit()
	if Shift(h1, 1, 0) != 0 {
		t.Fatalf("Shift east from h-file must discard the wrapped bit")
	}
	a1 := SquareFromFileRank(0, 0).Bit()
	if Shift(a1, -1, 0) != 0 {
		t.Fatalf("Shift west from a-file must discard the wrapped bit")
	}
	e4 := SquareFromFileRank(4, 3).Bit()
	if got, want := Shift(e4, 1, 1), SquareFromFileRank(5, 4).Bit(); got != want {
		t.Fatalf("Shift(e4,+1,+1) = %v, want %v", got, want)
	}
}
