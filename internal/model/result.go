package model

// Assignment pairs a session with its committed candidate.
type Assignment struct {
	Session   Session
	Candidate Candidate
}

// Result is the read-only surface handed to the reporting side: committed
// assignments in commit order plus the sessions that could not be placed.
type Result struct {
	assignments []Assignment
	byKey       map[string]Candidate
	failures    []Session
}

func newResult() *Result {
	return &Result{byKey: make(map[string]Candidate)}
}

func (r *Result) commit(session Session, candidate Candidate) {
	r.assignments = append(r.assignments, Assignment{Session: session, Candidate: candidate})
	r.byKey[session.Key()] = candidate
}

func (r *Result) fail(session Session) {
	r.failures = append(r.failures, session)
}

// Assignments returns the committed assignments in commit order.
func (r *Result) Assignments() []Assignment {
	return r.assignments
}

// Failures returns the sessions without a committed candidate.
func (r *Result) Failures() []Session {
	return r.failures
}

// Assigned looks up the committed candidate for a session key.
func (r *Result) Assigned(key string) (Candidate, bool) {
	candidate, ok := r.byKey[key]
	return candidate, ok
}
