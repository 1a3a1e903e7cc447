package model

import (
	"slices"

	"go.uber.org/zap"
)

const unknownRoomCapacity = 9999

type greedyScheduler struct {
	overlap OverlapIndex
	rooms   map[string]Room
	logger  *zap.Logger
}

func (s *greedyScheduler) Solve(sessions []Session, domains map[string]Domain) *Result {
	// Most-constrained-first: big sessions and tight domains go first,
	// while the most capacity and slot choice remains. The sort is stable,
	// so ties keep input order and the pass stays deterministic.
	ordered := make([]Session, len(sessions))
	copy(ordered, sessions)
	slices.SortStableFunc(ordered, func(a, b Session) int {
		if a.Students != b.Students {
			return b.Students - a.Students
		}
		return len(domains[a.Key()]) - len(domains[b.Key()])
	})

	usage := newUsageIndex(s.overlap)
	result := newResult()

	for _, session := range ordered {
		domain := domains[session.Key()]
		if len(domain) == 0 {
			result.fail(session)
			s.logger.Warn("session failed: no candidates",
				zap.String("session", session.Key()),
				zap.Int("students", session.Students))
			continue
		}

		committed := false
		for _, candidate := range s.orderCandidates(domain, session) {
			if !usage.free(usage.roomSlots, candidate.RoomID, candidate.TimeSlotID) ||
				!usage.free(usage.instructorSlots, candidate.InstructorID, candidate.TimeSlotID) ||
				!usage.free(usage.sectionSlots, session.Section, candidate.TimeSlotID) {
				continue
			}
			usage.commit(session, candidate)
			result.commit(session, candidate)
			committed = true
			break
		}
		if !committed {
			result.fail(session)
			s.logger.Warn("session failed: all candidates clashed",
				zap.String("session", session.Key()),
				zap.Int("students", session.Students),
				zap.Int("domainSize", len(domain)))
		}
	}

	return result
}

// orderCandidates ranks a session's domain: preferred staffing first, then
// tightest-fit room to cut capacity waste. Stable, so remaining ties keep
// the builder's enumeration order.
func (s *greedyScheduler) orderCandidates(domain Domain, session Session) Domain {
	ordered := make(Domain, len(domain))
	copy(ordered, domain)
	slices.SortStableFunc(ordered, func(a, b Candidate) int {
		if a.Preferred != b.Preferred {
			if a.Preferred {
				return -1
			}
			return 1
		}
		return s.capacityDiff(a.RoomID, session.Students) - s.capacityDiff(b.RoomID, session.Students)
	})
	return ordered
}

func (s *greedyScheduler) capacityDiff(roomID string, students int) int {
	capacity := unknownRoomCapacity
	if room, ok := s.rooms[roomID]; ok {
		capacity = room.Capacity
	}
	diff := capacity - students
	if diff < 0 {
		return -diff
	}
	return diff
}

func (s *greedyScheduler) Verify(result *Result) bool {
	assignments := result.Assignments()
	for i, a := range assignments {
		for _, b := range assignments[i+1:] {
			shared := a.Candidate.RoomID == b.Candidate.RoomID ||
				a.Candidate.InstructorID == b.Candidate.InstructorID ||
				a.Session.Section == b.Session.Section
			if !shared {
				continue
			}
			if a.Candidate.TimeSlotID == b.Candidate.TimeSlotID ||
				s.overlap.Overlaps(a.Candidate.TimeSlotID, b.Candidate.TimeSlotID) {
				return false
			}
		}
	}
	return true
}

// usageIndex tracks, per resource, the slots already committed in this run.
// It is the sole mutable state of the pass and is discarded with it.
type usageIndex struct {
	overlap         OverlapIndex
	roomSlots       map[string][]string
	instructorSlots map[string][]string
	sectionSlots    map[string][]string
}

func newUsageIndex(overlap OverlapIndex) *usageIndex {
	return &usageIndex{
		overlap:         overlap,
		roomSlots:       make(map[string][]string),
		instructorSlots: make(map[string][]string),
		sectionSlots:    make(map[string][]string),
	}
}

// free reports whether the resource can take the slot: none of its committed
// slots may equal or overlap it.
func (u *usageIndex) free(used map[string][]string, resourceID, slotID string) bool {
	for _, committed := range used[resourceID] {
		if committed == slotID || u.overlap.Overlaps(slotID, committed) {
			return false
		}
	}
	return true
}

func (u *usageIndex) commit(session Session, candidate Candidate) {
	u.roomSlots[candidate.RoomID] = append(u.roomSlots[candidate.RoomID], candidate.TimeSlotID)
	u.instructorSlots[candidate.InstructorID] = append(u.instructorSlots[candidate.InstructorID], candidate.TimeSlotID)
	u.sectionSlots[session.Section] = append(u.sectionSlots[session.Section], candidate.TimeSlotID)
}
