// Package export serializes a solved Builder into the external JSON shape
// consumers read back. Adapted from the teacher's internal/exporter
// package: same generated-at/summary/detail shape, re-keyed to this
// engine's assignment tuples instead of room-and-section detail.
package export

import (
	"encoding/json"
	"io"
	"sort"
	"time"

	"timetable-scheduler/internal/timetable"
)

// ScheduleExport is the root JSON document produced by Write.
type ScheduleExport struct {
	GeneratedAt string          `json:"generated_at"`
	Summary     ScheduleSummary `json:"summary"`
	Assignments []AssignmentDoc `json:"assignments"`
}

type ScheduleSummary struct {
	Mode              string `json:"mode"`
	SessionsGenerated int    `json:"sessions_generated"`
	SessionsAssigned  int    `json:"sessions_assigned"`
	TimedOut          bool   `json:"timed_out"`
}

type AssignmentDoc struct {
	GroupID     int `json:"group_id"`
	CourseID    int `json:"course_id"`
	ProfessorID int `json:"professor_id"`
	TimeSlotID  int `json:"time_slot_id"`
}

func modeName(m timetable.SolveMode) string {
	if m == timetable.ModeBacktracking {
		return "backtracking"
	}
	return "greedy"
}

// Build assembles the export document from a solved Builder's assignments
// and stats, sorted for reproducible output (group, then course, then
// slot) regardless of the solver's internal iteration order.
func Build(b *timetable.Builder, generatedAt time.Time) ScheduleExport {
	stats := b.Stats()
	assignments := b.GetSolution()

	docs := make([]AssignmentDoc, 0, len(assignments))
	for _, a := range assignments {
		docs = append(docs, AssignmentDoc{
			GroupID:     a.GroupID,
			CourseID:    a.CourseID,
			ProfessorID: a.ProfessorID,
			TimeSlotID:  a.TimeSlotID,
		})
	}
	sort.Slice(docs, func(i, j int) bool {
		if docs[i].GroupID != docs[j].GroupID {
			return docs[i].GroupID < docs[j].GroupID
		}
		if docs[i].CourseID != docs[j].CourseID {
			return docs[i].CourseID < docs[j].CourseID
		}
		return docs[i].TimeSlotID < docs[j].TimeSlotID
	})

	return ScheduleExport{
		GeneratedAt: generatedAt.Format(time.RFC3339),
		Summary: ScheduleSummary{
			Mode:              modeName(stats.Mode),
			SessionsGenerated: stats.SessionsGenerated,
			SessionsAssigned:  stats.SessionsAssigned,
			TimedOut:          stats.TimedOut,
		},
		Assignments: docs,
	}
}

// Write encodes the export document as indented JSON.
func Write(w io.Writer, doc ScheduleExport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
