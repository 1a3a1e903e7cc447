package model

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

// Raw table rows as produced by the loaders. Column fuzziness is the
// loaders' concern; by the time rows arrive here every field is typed.

type InstructorRow struct {
	InstructorID string `mapstructure:"instructorId"`
	Name         string `mapstructure:"name"`
	Role         string `mapstructure:"role"`
}

type QualificationRow struct {
	InstructorID string `mapstructure:"instructorId"`
	CourseID     string `mapstructure:"courseId"`
}

type CourseRow struct {
	CourseID    string `mapstructure:"courseId"`
	CourseName  string `mapstructure:"courseName"`
	Type        string `mapstructure:"type"`
	HasLecture  int    `mapstructure:"hasLecture"`
	HasLab      int    `mapstructure:"hasLab"`
	HasLongTut  int    `mapstructure:"hasLongTut"`
	HasShortTut int    `mapstructure:"hasShortTut"`
}

type RoomRow struct {
	RoomID   string `mapstructure:"roomId"`
	RoomType string `mapstructure:"roomType"`
	Capacity int    `mapstructure:"capacity"`
}

type TimeSlotRow struct {
	TimeSlotID string `mapstructure:"timeSlotId"`
	Day        string `mapstructure:"day"`
	StartMin   int    `mapstructure:"startMin"`
	EndMin     int    `mapstructure:"endMin"`
	Duration   int    `mapstructure:"duration"`
	SlotType   string `mapstructure:"slotType"`
}

type SectionRow struct {
	SectionID    string `mapstructure:"sectionId"`
	StudentCount int    `mapstructure:"studentCount"`
	Courses      string `mapstructure:"courses"`
}

type SessionRow struct {
	SectionID   string `mapstructure:"sectionId"`
	CourseID    string `mapstructure:"courseId"`
	SessionType string `mapstructure:"sessionType"`
}

// Tables aggregates the seven input tables of one scheduling problem.
type Tables struct {
	Instructors    []InstructorRow    `mapstructure:"instructors"`
	Qualifications []QualificationRow `mapstructure:"instructorCourses"`
	Courses        []CourseRow        `mapstructure:"courses"`
	Rooms          []RoomRow          `mapstructure:"rooms"`
	TimeSlots      []TimeSlotRow      `mapstructure:"timeSlots"`
	Sections       []SectionRow       `mapstructure:"sections"`
	Sessions       []SessionRow       `mapstructure:"lectureMapping"`
}

// TablesFromJSON reads all seven tables from a single JSON document.
func TablesFromJSON(file string) (Tables, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Tables{}, fmt.Errorf("read %s: %w", file, err)
	}
	var raw map[string]any
	if err := json.Unmarshal(bytes, &raw); err != nil {
		return Tables{}, fmt.Errorf("parse %s: %w", file, err)
	}

	var tables Tables
	if err := mapstructure.Decode(raw, &tables); err != nil {
		return Tables{}, fmt.Errorf("decode %s: %w", file, err)
	}
	return tables, nil
}

const defaultRole = "professor"

// Build normalizes the raw rows into a typed Dataset. The step is total:
// every row either becomes an entity or is dropped here with a warning, so
// the solver never sees partial records.
func (t Tables) Build(logger *zap.Logger) *Dataset {
	if logger == nil {
		logger = zap.NewNop()
	}

	dataset := &Dataset{
		Courses:     make(map[string]Course, len(t.Courses)),
		Instructors: make(map[string]*Instructor, len(t.Instructors)),
		Rooms:       make(map[string]Room, len(t.Rooms)),
		TimeSlots:   make([]TimeSlot, 0, len(t.TimeSlots)),
		Sections:    make(map[string]Section, len(t.Sections)),
		Sessions:    make([]Session, 0, len(t.Sessions)),
	}

	for _, row := range t.Courses {
		id := strings.TrimSpace(row.CourseID)
		if id == "" {
			continue
		}
		dataset.Courses[id] = Course{
			ID:          id,
			Name:        strings.TrimSpace(row.CourseName),
			Type:        strings.ToLower(strings.TrimSpace(row.Type)),
			HasLecture:  row.HasLecture == 1,
			HasLab:      row.HasLab == 1,
			HasLongTut:  row.HasLongTut == 1,
			HasShortTut: row.HasShortTut == 1,
		}
	}

	for _, row := range t.Instructors {
		id := strings.TrimSpace(row.InstructorID)
		if id == "" {
			continue
		}
		instructor := ensureInstructor(dataset.Instructors, id)
		if name := strings.TrimSpace(row.Name); name != "" {
			instructor.Name = name
		}
		if role := strings.ToLower(strings.TrimSpace(row.Role)); role != "" {
			instructor.Role = role
		}
	}

	for _, row := range t.Qualifications {
		iid := strings.TrimSpace(row.InstructorID)
		cid := strings.TrimSpace(row.CourseID)
		if iid == "" || cid == "" {
			continue
		}
		// The instructor table is optional; qualification edges may
		// introduce instructors on their own.
		ensureInstructor(dataset.Instructors, iid).Qualifications[cid] = true
	}

	for _, row := range t.Rooms {
		id := strings.TrimSpace(row.RoomID)
		if id == "" {
			continue
		}
		dataset.Rooms[id] = Room{
			ID:       id,
			Type:     strings.ToLower(strings.TrimSpace(row.RoomType)),
			Capacity: row.Capacity,
		}
	}

	for _, row := range t.TimeSlots {
		id := strings.TrimSpace(row.TimeSlotID)
		if id == "" {
			continue
		}
		slot := TimeSlot{
			ID:       id,
			Day:      strings.TrimSpace(row.Day),
			StartMin: row.StartMin,
			EndMin:   row.EndMin,
			Duration: row.Duration,
			SlotType: strings.ToLower(strings.TrimSpace(row.SlotType)),
		}
		if slot.Duration == 0 && slot.EndMin > slot.StartMin {
			slot.Duration = slot.EndMin - slot.StartMin
		}
		if slot.EndMin == 0 && slot.Duration > 0 {
			slot.EndMin = slot.StartMin + slot.Duration
		}
		dataset.TimeSlots = append(dataset.TimeSlots, slot)
	}

	for _, row := range t.Sections {
		id := strings.TrimSpace(row.SectionID)
		if id == "" {
			continue
		}
		section := Section{ID: id, Students: row.StudentCount}
		for _, course := range strings.Split(row.Courses, ",") {
			if course = strings.TrimSpace(course); course != "" {
				section.Courses = append(section.Courses, course)
			}
		}
		dataset.Sections[id] = section
	}

	seen := make(map[string]bool, len(t.Sessions))
	for _, row := range t.Sessions {
		sid := strings.TrimSpace(row.SectionID)
		cid := strings.TrimSpace(row.CourseID)
		stype := strings.TrimSpace(row.SessionType)
		if sid == "" || cid == "" || stype == "" {
			logger.Warn("dropping incomplete session row",
				zap.String("section", sid),
				zap.String("course", cid),
				zap.String("sessionType", stype))
			continue
		}
		session := Session{
			Course:      cid,
			Section:     sid,
			SessionType: stype,
			Students:    dataset.Sections[sid].Students,
		}
		if seen[session.Key()] {
			logger.Warn("dropping duplicate session", zap.String("session", session.Key()))
			continue
		}
		seen[session.Key()] = true
		dataset.Sessions = append(dataset.Sessions, session)
	}

	return dataset
}

// ensureInstructor returns the record for the given id, inserting one with
// the default role when absent.
func ensureInstructor(instructors map[string]*Instructor, id string) *Instructor {
	if instructor, ok := instructors[id]; ok {
		return instructor
	}
	instructor := &Instructor{
		ID:             id,
		Name:           id,
		Role:           defaultRole,
		Qualifications: make(map[string]bool),
	}
	instructors[id] = instructor
	return instructor
}
