package bitboard

import "testing"

func TestAbs(t *testing.T) {
	if Abs(-5) != 5 {
		t.Fatalf("Abs(-5) != 5")
	}
	if Abs(5) != 5 {
		t.Fatalf("Abs(5) != 5")
	}
	if Abs(0) != 0 {
		t.Fatalf("Abs(0) != 0")
	}
}

func TestMinMax(t *testing.T) {
	if Min(3, 7) != 3 || Min(7, 3) != 3 {
		t.Fatalf("Min(3,7) must be 3")
	}
	if Max(3, 7) != 7 || Max(7, 3) != 7 {
		t.Fatalf("Max(3,7) must be 7")
	}
}
