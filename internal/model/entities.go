package model

import "strings"

// Course describes a teachable course and which session kinds it carries.
type Course struct {
	ID          string
	Name        string
	Type        string
	HasLecture  bool
	HasLab      bool
	HasLongTut  bool
	HasShortTut bool
}

// Instructor holds identity, role and the set of courses the instructor is
// qualified to teach. The qualification set may be empty.
type Instructor struct {
	ID             string
	Name           string
	Role           string
	Qualifications map[string]bool
}

// QualifiedFor reports whether the instructor is recorded as qualified for
// the given course.
func (i *Instructor) QualifiedFor(courseID string) bool {
	return i.Qualifications[courseID]
}

// Room is a physical room with a normalized lowercase type tag.
type Room struct {
	ID       string
	Type     string
	Capacity int
}

// TimeSlot is a weekly recurring slot on a given day, expressed in minutes
// of day. Duration is derived from the range when absent from the input.
type TimeSlot struct {
	ID       string
	Day      string
	StartMin int
	EndMin   int
	Duration int
	SlotType string
}

// Section is a student group with an enrollment count.
type Section struct {
	ID       string
	Students int
	Courses  []string
}

// Session is the scheduling unit: one (course, section, session-type)
// occurrence carrying the section's student count at creation time.
type Session struct {
	Course      string
	Section     string
	SessionType string
	Students    int
}

// Key returns the session's unique identity.
func (s Session) Key() string {
	return s.Course + "_" + s.Section + "_" + s.SessionType
}

// Candidate is one legal (timeslot, room, instructor) triple for a session.
// Qualified records whether the instructor actually holds the qualification
// (false for fallback instructors); Preferred marks junior staff offered for
// hands-on sessions.
type Candidate struct {
	TimeSlotID   string
	RoomID       string
	InstructorID string
	Qualified    bool
	Preferred    bool
}

// Domain is the full candidate set for a session. Empty is a valid outcome.
type Domain []Candidate

// Dataset is the fully-typed, normalized form of the input tables. Entities
// are immutable once built.
type Dataset struct {
	Courses     map[string]Course
	Instructors map[string]*Instructor
	Rooms       map[string]Room
	TimeSlots   []TimeSlot
	Sections    map[string]Section
	Sessions    []Session
}

func isLabSession(sessionType string) bool {
	return strings.Contains(strings.ToLower(sessionType), "lab")
}

func isTutorialSession(sessionType string) bool {
	return strings.Contains(strings.ToLower(sessionType), "tutorial")
}

func isLectureSession(sessionType string) bool {
	return strings.Contains(strings.ToLower(sessionType), "lecture")
}

func isShortTutorial(sessionType string) bool {
	st := strings.ToLower(sessionType)
	return strings.Contains(st, "short") && strings.Contains(st, "tutorial")
}

func isLongTutorial(sessionType string) bool {
	st := strings.ToLower(sessionType)
	return strings.Contains(st, "long") && strings.Contains(st, "tutorial")
}
