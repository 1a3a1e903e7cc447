// Package csvio reads the scheduling tables from CSV files and writes the
// solution and failure reports back out.
package csvio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"coursetable/internal/model"
)

// Expected file names inside the data directory. Instructor.csv is optional;
// instructors can be introduced by their qualification edges alone.
const (
	InstructorFile        = "Instructor.csv"
	InstructorCoursesFile = "InstructorCourses.csv"
	CoursesFile           = "Courses.csv"
	RoomsFile             = "Rooms.csv"
	TimeSlotsFile         = "TimeSlots.csv"
	SectionsFile          = "Sections.csv"
	LectureMappingFile    = "LectureMapping.csv"
)

type instructorRecord struct {
	InstructorID string `csv:"InstructorID"`
	Name         string `csv:"Name"`
	Role         string `csv:"Role"`
}

type qualificationRecord struct {
	InstructorID string `csv:"InstructorID"`
	CourseID     string `csv:"CourseID"`
}

type courseRecord struct {
	CourseID    string `csv:"CourseID"`
	CourseName  string `csv:"CourseName"`
	Type        string `csv:"Type"`
	HasLecture  int    `csv:"HasLecture"`
	HasLab      int    `csv:"HasLab"`
	HasLongTut  int    `csv:"HasLongTut"`
	HasShortTut int    `csv:"HasShortTut"`
}

type roomRecord struct {
	RoomID   string `csv:"RoomID"`
	RoomType string `csv:"RoomType"`
	Capacity int    `csv:"Capacity"`
}

type timeSlotRecord struct {
	TimeSlotID string `csv:"TimeSlotID"`
	Day        string `csv:"Day"`
	StartMin   int    `csv:"StartMin"`
	EndMin     int    `csv:"EndMin"`
	Duration   int    `csv:"Duration"`
	SlotType   string `csv:"SlotType"`
}

type sectionRecord struct {
	SectionID    string `csv:"SectionID"`
	StudentCount int    `csv:"StudentCount"`
	Courses      string `csv:"Courses"`
}

type mappingRecord struct {
	SectionID   string `csv:"SectionID"`
	CourseID    string `csv:"CourseID"`
	SessionType string `csv:"SessionType"`
}

// LoadTables reads all scheduling tables from the given directory. A missing
// or unparsable required file is fatal for the run; the solver is never
// invoked on partial inputs.
func LoadTables(dir string) (model.Tables, error) {
	var tables model.Tables

	instructors, err := loadRecords[instructorRecord](filepath.Join(dir, InstructorFile))
	if err != nil {
		if !os.IsNotExist(err) {
			return tables, err
		}
		instructors = nil
	}
	for _, r := range instructors {
		tables.Instructors = append(tables.Instructors, model.InstructorRow{
			InstructorID: r.InstructorID,
			Name:         r.Name,
			Role:         r.Role,
		})
	}

	qualifications, err := loadRecords[qualificationRecord](filepath.Join(dir, InstructorCoursesFile))
	if err != nil {
		return tables, err
	}
	for _, r := range qualifications {
		tables.Qualifications = append(tables.Qualifications, model.QualificationRow{
			InstructorID: r.InstructorID,
			CourseID:     r.CourseID,
		})
	}

	courses, err := loadRecords[courseRecord](filepath.Join(dir, CoursesFile))
	if err != nil {
		return tables, err
	}
	for _, r := range courses {
		tables.Courses = append(tables.Courses, model.CourseRow{
			CourseID:    r.CourseID,
			CourseName:  r.CourseName,
			Type:        r.Type,
			HasLecture:  r.HasLecture,
			HasLab:      r.HasLab,
			HasLongTut:  r.HasLongTut,
			HasShortTut: r.HasShortTut,
		})
	}

	rooms, err := loadRecords[roomRecord](filepath.Join(dir, RoomsFile))
	if err != nil {
		return tables, err
	}
	for _, r := range rooms {
		tables.Rooms = append(tables.Rooms, model.RoomRow{
			RoomID:   r.RoomID,
			RoomType: r.RoomType,
			Capacity: r.Capacity,
		})
	}

	slots, err := loadRecords[timeSlotRecord](filepath.Join(dir, TimeSlotsFile))
	if err != nil {
		return tables, err
	}
	for _, r := range slots {
		tables.TimeSlots = append(tables.TimeSlots, model.TimeSlotRow{
			TimeSlotID: r.TimeSlotID,
			Day:        r.Day,
			StartMin:   r.StartMin,
			EndMin:     r.EndMin,
			Duration:   r.Duration,
			SlotType:   r.SlotType,
		})
	}

	sections, err := loadRecords[sectionRecord](filepath.Join(dir, SectionsFile))
	if err != nil {
		return tables, err
	}
	for _, r := range sections {
		tables.Sections = append(tables.Sections, model.SectionRow{
			SectionID:    r.SectionID,
			StudentCount: r.StudentCount,
			Courses:      r.Courses,
		})
	}

	mappings, err := loadRecords[mappingRecord](filepath.Join(dir, LectureMappingFile))
	if err != nil {
		return tables, err
	}
	for _, r := range mappings {
		tables.Sessions = append(tables.Sessions, model.SessionRow{
			SectionID:   r.SectionID,
			CourseID:    r.CourseID,
			SessionType: r.SessionType,
		})
	}

	return tables, nil
}

func loadRecords[T any](path string) ([]*T, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, err
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	records := []*T{}
	if err := gocsv.UnmarshalFile(file, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return records, nil
}
