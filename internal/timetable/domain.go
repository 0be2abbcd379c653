// Package timetable implements the constraint-satisfaction scheduling core:
// session generation from course metadata, the three-dimensional assignment
// tensor, the constraint predicates, the greedy heuristic with relaxation
// tiers, and the backtracking alternative. The package has no external
// dependencies and performs no I/O — callers feed it through the Builder
// API and read results back through GetSolution.
package timetable

// TimeSlot is a fixed weekly time window: a day of the week plus a start
// and end time. Ids are external (caller-supplied) and must be non-zero.
type TimeSlot struct {
	ID      int
	Day     int // 1 = Monday ... 5 = Friday
	StartH  int
	StartM  int
	EndH    int
	EndM    int
}

// Professor can teach a set of course codes and is free during a set of
// timeslots (by external slot id).
type Professor struct {
	ID               int
	Name             string
	AvailableSlots   map[int]struct{} // external TimeSlot id -> present
	TeachableCourses map[string]struct{}
}

// Course is a subject with a credit-driven weekly workload. RequiresProfessor
// false marks residency/"estadía"-style courses that only need a free slot.
type Course struct {
	ID                int
	Name              string
	Code              string
	Credits           int
	Semester          int
	RequiresProfessor bool
}

// Group is a cohort of students taking a fixed list of courses.
type Group struct {
	ID        int
	Semester  int
	CourseIDs []int
}

// ClassSession is one weekly hour of a (group, course) pair — the unit the
// solver assigns to a (professor, timeslot) pair. AssignedSlotID and
// AssignedProfessorID are -1 until placed. A placed session without a
// professor requirement carries AssignedProfessorID == 0 ("no professor"),
// which is distinct from -1 ("not yet placed").
type ClassSession struct {
	ID                  int
	CourseID            int
	GroupID             int
	Credits             int
	SessionNumber       int // 1..N within this (group, course)
	AssignedSlotID      int
	AssignedProfessorID int
}

// Unassigned is the sentinel stored in AssignedSlotID/AssignedProfessorID
// before a session has been placed.
const Unassigned = -1

// NoProfessor is the value stamped into AssignedProfessorID for a session
// whose course does not require one.
const NoProfessor = 0

// IsPlaced reports whether a session has been given a slot (and, when
// required, a professor).
func (s *ClassSession) IsPlaced() bool {
	return s.AssignedSlotID != Unassigned && s.AssignedProfessorID != Unassigned
}

// Assignment is one output tuple of a solved timetable.
type Assignment struct {
	GroupID     int
	CourseID    int
	ProfessorID int
	TimeSlotID  int
}
