package csvio

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"coursetable/internal/model"
)

// SolutionRow is one committed assignment in the exported timetable.
type SolutionRow struct {
	Course              string `csv:"Course"`
	Section             string `csv:"Section"`
	SessionType         string `csv:"SessionType"`
	Students            int    `csv:"Students"`
	Day                 string `csv:"Day"`
	StartMin            int    `csv:"StartMin"`
	EndMin              int    `csv:"EndMin"`
	StartHHMM           string `csv:"StartHHMM"`
	EndHHMM             string `csv:"EndHHMM"`
	SlotType            string `csv:"SlotType"`
	Room                string `csv:"Room"`
	Instructor          string `csv:"Instructor"`
	InstructorQualified bool   `csv:"InstructorQualified"`
	TimeslotIsPreferred bool   `csv:"TimeslotIsPreferred"`
}

// FailureRow is one session that could not be placed. Failed sessions carry
// no resource fields.
type FailureRow struct {
	Course      string `csv:"Course"`
	Section     string `csv:"Section"`
	SessionType string `csv:"SessionType"`
	Students    int    `csv:"Students"`
}

// ExportSolution writes the committed assignments, in commit order, to the
// given path.
func ExportSolution(result *model.Result, dataset *model.Dataset, path string) error {
	rows := SolutionRows(result, dataset)
	return writeCSV(path, &rows)
}

// ExportFailures writes the failed sessions to the given path.
func ExportFailures(result *model.Result, path string) error {
	rows := make([]*FailureRow, 0, len(result.Failures()))
	for _, session := range result.Failures() {
		rows = append(rows, &FailureRow{
			Course:      session.Course,
			Section:     session.Section,
			SessionType: session.SessionType,
			Students:    session.Students,
		})
	}
	return writeCSV(path, &rows)
}

// SolutionRows formats the result for export, resolving slot and instructor
// details from the dataset.
func SolutionRows(result *model.Result, dataset *model.Dataset) []*SolutionRow {
	slots := make(map[string]model.TimeSlot, len(dataset.TimeSlots))
	for _, slot := range dataset.TimeSlots {
		slots[slot.ID] = slot
	}

	rows := make([]*SolutionRow, 0, len(result.Assignments()))
	for _, assignment := range result.Assignments() {
		session, candidate := assignment.Session, assignment.Candidate
		slot := slots[candidate.TimeSlotID]

		instructorName := candidate.InstructorID
		if instructor, ok := dataset.Instructors[candidate.InstructorID]; ok && instructor.Name != "" {
			instructorName = instructor.Name
		}

		rows = append(rows, &SolutionRow{
			Course:              session.Course,
			Section:             session.Section,
			SessionType:         session.SessionType,
			Students:            session.Students,
			Day:                 slot.Day,
			StartMin:            slot.StartMin,
			EndMin:              slot.EndMin,
			StartHHMM:           minutesToHHMM(slot.StartMin),
			EndHHMM:             minutesToHHMM(slot.EndMin),
			SlotType:            slot.SlotType,
			Room:                candidate.RoomID,
			Instructor:          instructorName,
			InstructorQualified: candidate.Qualified,
			TimeslotIsPreferred: candidate.Preferred,
		})
	}
	return rows
}

func writeCSV(path string, rows any) error {
	if _, err := os.Stat(path); err == nil {
		os.Remove(path)
	}
	out, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer out.Close()

	if err := gocsv.MarshalFile(rows, out); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func minutesToHHMM(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
