package model

import "go.uber.org/zap"

// Scheduler commits sessions to candidates. The implementation is a greedy,
// non-backtracking single pass: once a session is committed it is never
// revisited, even if that blocks a later session. Failure counts and exact
// assignment choices are part of the observable contract, so do not swap the
// strategy for a backtracking search without flagging the change.
type Scheduler interface {
	// Solve processes every session and returns the full result. It never
	// aborts: an unassignable session lands in the failure list and the
	// pass continues.
	Solve(sessions []Session, domains map[string]Domain) *Result
	// Verify re-checks the committed result for room, instructor and
	// section clashes.
	Verify(result *Result) bool
}

func NewScheduler(overlap OverlapIndex, rooms map[string]Room, logger *zap.Logger) Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &greedyScheduler{overlap: overlap, rooms: rooms, logger: logger}
}
