package bitboard

import "golang.org/x/exp/constraints"

// Abs returns the absolute value of x. Grounded on the teacher's
// engine/util.go abs32/abs16 helpers, generalized with the
// golang.org/x/exp/constraints generic-numeric idiom instead of one
// copy per integer width.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of a and b, grounded on the teacher's
// engine/util.go Min helper.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b, grounded on the teacher's
// engine/util.go Max helper.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}
