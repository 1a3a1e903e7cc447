package model

import (
	"math"
	"slices"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

type domainBuilderImplementation struct {
	cfg     Config
	dataset *Dataset
	logger  *zap.Logger

	// Sorted id slices so candidate enumeration order is reproducible
	// regardless of map iteration order.
	roomIDs       []string
	instructorIDs []string
}

func newDomainBuilderImplementation(cfg Config, dataset *Dataset, logger *zap.Logger) *domainBuilderImplementation {
	return &domainBuilderImplementation{
		cfg:           cfg,
		dataset:       dataset,
		logger:        logger,
		roomIDs:       sortedKeys(dataset.Rooms),
		instructorIDs: sortedKeys(dataset.Instructors),
	}
}

func (b *domainBuilderImplementation) BuildAll(sessions []Session) ([]Session, map[string]Domain) {
	accepted := make([]Session, 0, len(sessions))
	domains := make(map[string]Domain, len(sessions))

	for _, session := range sessions {
		if session.Students <= 0 {
			b.logger.Warn("skipping session with no students",
				zap.String("session", session.Key()),
				zap.Int("students", session.Students))
			continue
		}
		if _, ok := b.dataset.Courses[session.Course]; !ok {
			b.logger.Warn("skipping session for undefined course",
				zap.String("session", session.Key()),
				zap.String("course", session.Course))
			continue
		}
		accepted = append(accepted, session)
		domains[session.Key()] = b.build(session)
	}

	return accepted, domains
}

func (b *domainBuilderImplementation) build(session Session) Domain {
	qualified := lo.Filter(b.instructorIDs, func(id string, _ int) bool {
		return b.dataset.Instructors[id].QualifiedFor(session.Course)
	})
	if len(qualified) == 0 && b.cfg.AllowUnqualifiedFallback {
		qualified = b.instructorIDs
	}

	preferAssistant := isLabSession(session.SessionType) || isTutorialSession(session.SessionType)
	minCapacity := b.minCapacity(session.Students)

	domain := Domain{}
	for _, slot := range b.dataset.TimeSlots {
		if !b.slotAccepts(slot, session.SessionType) {
			continue
		}
		for _, roomID := range b.roomIDs {
			room := b.dataset.Rooms[roomID]
			if !roomAccepts(session.SessionType, room.Type) {
				continue
			}
			if room.Capacity < minCapacity {
				continue
			}
			for _, instructorID := range qualified {
				instructor := b.dataset.Instructors[instructorID]
				domain = append(domain, Candidate{
					TimeSlotID:   slot.ID,
					RoomID:       roomID,
					InstructorID: instructorID,
					Qualified:    instructor.QualifiedFor(session.Course),
					Preferred:    preferAssistant && assistantRole(instructor.Role),
				})
			}
		}
	}

	if len(domain) == 0 {
		// Enough context to root-cause the data issue without rerunning.
		b.logger.Warn("empty domain",
			zap.String("session", session.Key()),
			zap.Int("students", session.Students),
			zap.Int("qualifiedInstructors", len(lo.Filter(b.instructorIDs, func(id string, _ int) bool {
				return b.dataset.Instructors[id].QualifiedFor(session.Course)
			}))),
			zap.Int("rooms", len(b.roomIDs)),
			zap.Int("roomsWithCapacity", lo.CountBy(b.roomIDs, func(id string) bool {
				return b.dataset.Rooms[id].Capacity >= session.Students
			})),
			zap.Int("timeslots", len(b.dataset.TimeSlots)))
	}

	return domain
}

func (b *domainBuilderImplementation) minCapacity(students int) int {
	if b.cfg.CapacityRelax > 0 {
		return int(math.Round(float64(students) * (1 - b.cfg.CapacityRelax)))
	}
	return students
}

// slotAccepts enforces the slot-type policy: short tutorials need a "short"
// tag or a duration at most the configured ceiling, long tutorials need a
// "long" tag or a duration at least the configured floor, everything else
// takes any slot.
func (b *domainBuilderImplementation) slotAccepts(slot TimeSlot, sessionType string) bool {
	switch {
	case isShortTutorial(sessionType):
		if slot.SlotType != "" && strings.Contains(slot.SlotType, "short") {
			return true
		}
		return slot.Duration <= b.cfg.ShortTutorialMaxMinutes
	case isLongTutorial(sessionType):
		if slot.SlotType != "" && strings.Contains(slot.SlotType, "long") {
			return true
		}
		return slot.Duration >= b.cfg.LongLectureMinMinutes
	default:
		return true
	}
}

// roomAccepts maps session types onto room types. Lab sessions take lab or
// physics-lab rooms primarily, with lecture-style rooms as fallback;
// lectures and tutorials the reverse. Both fallbacks are deliberately
// permissive, so in practice only a wholly unrecognized room type is
// rejected. TODO: confirm with the owners whether the cross fallbacks
// (lab session in a lecture hall and vice versa) are intended.
func roomAccepts(sessionType, roomType string) bool {
	lectureStyle := strings.Contains(roomType, "classroom") ||
		strings.Contains(roomType, "hall") ||
		strings.Contains(roomType, "theater")
	labStyle := strings.Contains(roomType, "lab") || strings.Contains(roomType, "physics")

	if isLabSession(sessionType) {
		return labStyle || lectureStyle
	}
	if isLectureSession(sessionType) || isTutorialSession(sessionType) {
		return lectureStyle || labStyle
	}
	return lectureStyle || labStyle
}

// assistantRole marks junior staff roles preferred for hands-on sessions.
func assistantRole(role string) bool {
	return strings.Contains(role, "assistant") ||
		strings.Contains(role, "ta") ||
		strings.Contains(role, "lab")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := lo.Keys(m)
	slices.Sort(keys)
	return keys
}
