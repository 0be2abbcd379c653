// Package ingest turns external course-catalog documents (JSON or CSV)
// into a populated timetable.Builder. Adapted from the teacher's
// internal/loader package: same os.ReadFile + encoding/json shape, but
// wrapped with pkg/errors instead of raw fmt.Sprintf strings, and
// validated field-by-field with go-playground/validator instead of the
// teacher's ad-hoc nil checks.
package ingest

import (
	"encoding/json"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"timetable-scheduler/internal/timetable"
)

var validate = validator.New()

// Document is the external JSON shape for a full timetabling instance.
type Document struct {
	TimeSlots  []TimeSlotDoc  `json:"time_slots" validate:"required,min=1,dive"`
	Professors []ProfessorDoc `json:"professors" validate:"required,min=1,dive"`
	Courses    []CourseDoc    `json:"courses" validate:"required,min=1,dive"`
	Groups     []GroupDoc     `json:"groups" validate:"required,min=1,dive"`
}

type TimeSlotDoc struct {
	ID          int `json:"id" validate:"required,ne=0"`
	Day         int `json:"day" validate:"required,min=1,max=5"`
	StartHour   int `json:"start_hour" validate:"min=0,max=23"`
	StartMinute int `json:"start_minute" validate:"min=0,max=59"`
	EndHour     int `json:"end_hour" validate:"min=0,max=23"`
	EndMinute   int `json:"end_minute" validate:"min=0,max=59"`
}

type ProfessorDoc struct {
	ID                   int      `json:"id" validate:"required,ne=0"`
	Name                 string   `json:"name" validate:"required"`
	AvailableSlotIDs     []int    `json:"available_slot_ids"`
	TeachableCourseCodes []string `json:"teachable_course_codes"`
}

type CourseDoc struct {
	ID                int    `json:"id" validate:"required,ne=0"`
	Name              string `json:"name" validate:"required"`
	Code              string `json:"code" validate:"required"`
	Credits           int    `json:"credits" validate:"min=0"`
	Semester          int    `json:"semester"`
	RequiresProfessor bool   `json:"requires_professor"`
}

type GroupDoc struct {
	ID        int   `json:"id" validate:"required,ne=0"`
	Semester  int   `json:"semester"`
	CourseIDs []int `json:"course_ids"`
}

// LoadJSONFile reads a Document from path and populates a fresh Builder.
// Unlike the Builder's own cross-reference checks (silent skip), this
// layer rejects the document outright on structural validation failure —
// the boundary between "malformed input" and "infeasible input" the
// core's error taxonomy draws.
func LoadJSONFile(path string) (*timetable.Builder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading timetable document %s", path)
	}
	return LoadJSON(data)
}

// LoadJSON parses and validates raw JSON, then builds a Builder from it.
func LoadJSON(data []byte) (*timetable.Builder, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "unmarshalling timetable document")
	}
	if err := validate.Struct(doc); err != nil {
		return nil, errors.Wrap(err, "validating timetable document")
	}

	b := timetable.NewBuilder()
	for _, t := range doc.TimeSlots {
		b.AddTimeSlot(t.ID, t.Day, t.StartHour, t.StartMinute, t.EndHour, t.EndMinute)
	}
	for _, p := range doc.Professors {
		b.AddProfessor(p.ID, p.Name, p.AvailableSlotIDs, p.TeachableCourseCodes)
	}
	for _, c := range doc.Courses {
		b.AddCourse(c.ID, c.Name, c.Code, c.Credits, c.Semester, c.RequiresProfessor)
	}
	for _, g := range doc.Groups {
		b.AddGroup(g.ID, g.Semester, g.CourseIDs)
	}
	return b, nil
}
