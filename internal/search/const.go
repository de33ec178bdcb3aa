package search

// Score bounds, grounded on the teacher's engine/search.go MaxScore/
// Checkmate/DrawScore constants.
const (
	maxScore  int32 = 32500
	mateScore int32 = 20000
	drawScore int32 = 0
)

// deltaVictimValue is the dedicated piece-value table quiescence delta
// pruning uses, per spec.md §4.7.3 (distinct from internal/eval's
// tapered material and internal/order's SEE values).
var deltaVictimValue = [7]int32{0, 114, 281, 297, 512, 936, 0}

const maxDepth = 128
