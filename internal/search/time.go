package search

import "time"

// timeManager tracks the caller's per-move budget, per spec.md §4.7.4.
// Grounded on the teacher's engine/time_management.go TimeHandler, trimmed
// from its clock/increment/phase estimation down to the spec's simpler
// caller-supplied-budget model.
type timeManager struct {
	start   time.Time
	budget  time.Duration
	enabled bool
}

func newTimeManager(timePerMoveMs uint32) *timeManager {
	tm := &timeManager{start: time.Now()}
	if timePerMoveMs > 0 {
		tm.enabled = true
		tm.budget = time.Duration(timePerMoveMs) * time.Millisecond
	}
	return tm
}

// exceeded reports whether the move budget has elapsed. Always false
// when the caller passed time_per_move_ms == 0, per spec.md §4.7.4.
func (tm *timeManager) exceeded() bool {
	if !tm.enabled {
		return false
	}
	return time.Since(tm.start) >= tm.budget
}

func (tm *timeManager) elapsedMs() int64 {
	return time.Since(tm.start).Milliseconds()
}
