package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTablesBuild(t *testing.T) {
	t.Run("Qualification edges introduce instructors with default role", func(t *testing.T) {
		// Arrange
		tables := Tables{
			Qualifications: []QualificationRow{
				{InstructorID: "I1", CourseID: "C1"},
				{InstructorID: "I1", CourseID: "C2"},
			},
		}

		// Act
		dataset := tables.Build(nil)

		// Assert
		instructor := dataset.Instructors["I1"]
		assert.NotNil(t, instructor)
		assert.Equal(t, "professor", instructor.Role)
		assert.Equal(t, "I1", instructor.Name)
		assert.True(t, instructor.QualifiedFor("C1"))
		assert.True(t, instructor.QualifiedFor("C2"))
		assert.False(t, instructor.QualifiedFor("C3"))
	})

	t.Run("Instructor rows override name and normalize role", func(t *testing.T) {
		// Arrange
		tables := Tables{
			Instructors: []InstructorRow{
				{InstructorID: " I1 ", Name: "Dr. Ada", Role: "Assistant"},
			},
		}

		// Act
		dataset := tables.Build(nil)

		// Assert
		assert.Equal(t, "Dr. Ada", dataset.Instructors["I1"].Name)
		assert.Equal(t, "assistant", dataset.Instructors["I1"].Role)
	})

	t.Run("Timeslot duration derived from range and vice versa", func(t *testing.T) {
		// Arrange
		tables := Tables{
			TimeSlots: []TimeSlotRow{
				{TimeSlotID: "T1", Day: "Monday", StartMin: 480, EndMin: 570},
				{TimeSlotID: "T2", Day: "Monday", StartMin: 600, Duration: 50},
			},
		}

		// Act
		dataset := tables.Build(nil)

		// Assert
		assert.Equal(t, 90, dataset.TimeSlots[0].Duration)
		assert.Equal(t, 650, dataset.TimeSlots[1].EndMin)
	})

	t.Run("Sections split course lists and sessions inherit student counts", func(t *testing.T) {
		// Arrange
		tables := Tables{
			Sections: []SectionRow{
				{SectionID: "S1", StudentCount: 30, Courses: "C1, C2 ,,C3"},
			},
			Sessions: []SessionRow{
				{SectionID: "S1", CourseID: "C1", SessionType: "Lecture"},
			},
		}

		// Act
		dataset := tables.Build(nil)

		// Assert
		assert.Equal(t, []string{"C1", "C2", "C3"}, dataset.Sections["S1"].Courses)
		assert.Len(t, dataset.Sessions, 1)
		assert.Equal(t, 30, dataset.Sessions[0].Students)
	})

	t.Run("Incomplete and duplicate session rows are dropped", func(t *testing.T) {
		// Arrange
		tables := Tables{
			Sections: []SectionRow{{SectionID: "S1", StudentCount: 25}},
			Sessions: []SessionRow{
				{SectionID: "S1", CourseID: "C1", SessionType: "Lecture"},
				{SectionID: "S1", CourseID: "C1", SessionType: "Lecture"},
				{SectionID: "S1", CourseID: "", SessionType: "Lab"},
				{SectionID: "", CourseID: "C1", SessionType: "Lab"},
				{SectionID: "S1", CourseID: "C1", SessionType: ""},
			},
		}

		// Act
		dataset := tables.Build(nil)

		// Assert
		assert.Len(t, dataset.Sessions, 1)
		assert.Equal(t, "C1_S1_Lecture", dataset.Sessions[0].Key())
	})
}

func TestTablesFromJSON(t *testing.T) {
	// Arrange
	document := `{
		"instructors": [{"instructorId": "I1", "name": "Dr. Ada", "role": "Professor"}],
		"instructorCourses": [{"instructorId": "I1", "courseId": "C1"}],
		"courses": [{"courseId": "C1", "courseName": "Algorithms", "hasLecture": 1}],
		"rooms": [{"roomId": "R1", "roomType": "Classroom", "capacity": 40}],
		"timeSlots": [{"timeSlotId": "T1", "day": "Monday", "startMin": 480, "endMin": 570}],
		"sections": [{"sectionId": "S1", "studentCount": 30, "courses": "C1"}],
		"lectureMapping": [{"sectionId": "S1", "courseId": "C1", "sessionType": "Lecture"}]
	}`
	file := filepath.Join(t.TempDir(), "tables.json")
	assert.NoError(t, os.WriteFile(file, []byte(document), 0o644))

	// Act
	tables, err := TablesFromJSON(file)

	// Assert
	assert.NoError(t, err)
	assert.Len(t, tables.Instructors, 1)
	assert.Len(t, tables.Qualifications, 1)
	assert.Len(t, tables.Courses, 1)
	assert.Len(t, tables.Rooms, 1)
	assert.Len(t, tables.TimeSlots, 1)
	assert.Len(t, tables.Sections, 1)
	assert.Len(t, tables.Sessions, 1)

	dataset := tables.Build(nil)
	assert.Equal(t, 40, dataset.Rooms["R1"].Capacity)
	assert.Equal(t, "classroom", dataset.Rooms["R1"].Type)
}

func TestTablesFromJSONMissingFile(t *testing.T) {
	_, err := TablesFromJSON(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
