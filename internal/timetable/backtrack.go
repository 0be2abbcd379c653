package timetable

import "time"

// resolveBacktracking runs the MRV-style recursive search over the session
// conflict graph. Unlike resolveGreedy it is all-or-nothing: a branch that
// cannot complete unwinds every assignment it made, so a timeout leaves the
// builder's sessions exactly as unassigned as it found them.
func resolveBacktracking(b *Builder, idx *index, deadlineSeconds float64) (assigned int, timedOut bool, err error) {
	graph := buildConflictGraph(b.sessions)
	start := time.Now()

	ok, ranOut := solveRecursive(b, idx, graph, 0, start, deadlineSeconds)
	if ranOut {
		return 0, true, nil
	}
	if !ok {
		return 0, false, nil
	}
	return len(b.sessions), false, nil
}

// solveRecursive mirrors the core's solveRecursive exactly: try every
// candidate for sessions[i] in the master timeslot order (filtered by
// availability, exactly as the original iterates its fixed timeslots
// vector), recurse, undo on failure. The second return value distinguishes
// "no solution" from "ran out of time" so the caller can report
// SolveStats.TimedOut accurately.
func solveRecursive(b *Builder, idx *index, graph *conflictGraph, i int, start time.Time, deadlineSeconds float64) (ok bool, ranOut bool) {
	if deadlineSeconds > 0 && time.Since(start).Seconds() > deadlineSeconds {
		return false, true
	}
	if i >= len(b.sessions) {
		return true, false
	}

	session := b.sessions[i]
	course, found := b.course(session.CourseID)
	if !found {
		return false, false
	}

	if !course.RequiresProfessor {
		for _, slot := range b.timeSlots {
			if neighborHoldsSlot(b.sessions, graph, i, slot.ID) {
				continue
			}
			session.AssignedSlotID = slot.ID
			session.AssignedProfessorID = NoProfessor

			ok, ranOut := solveRecursive(b, idx, graph, i+1, start, deadlineSeconds)
			if ok {
				return true, false
			}
			session.AssignedSlotID = Unassigned
			session.AssignedProfessorID = Unassigned
			if ranOut {
				return false, true
			}
		}
		return false, false
	}

	for _, prof := range b.professors {
		if _, teaches := prof.TeachableCourses[course.Code]; !teaches {
			continue
		}
		for _, slot := range b.timeSlots {
			if _, available := prof.AvailableSlots[slot.ID]; !available {
				continue
			}
			if neighborHoldsSlot(b.sessions, graph, i, slot.ID) {
				continue
			}
			if professorBusyBefore(b.sessions, i, prof.ID, slot.ID) {
				continue
			}

			session.AssignedSlotID = slot.ID
			session.AssignedProfessorID = prof.ID

			ok, ranOut := solveRecursive(b, idx, graph, i+1, start, deadlineSeconds)
			if ok {
				return true, false
			}
			session.AssignedSlotID = Unassigned
			session.AssignedProfessorID = Unassigned
			if ranOut {
				return false, true
			}
		}
	}
	return false, false
}

// neighborHoldsSlot reports whether any session sharing a group with
// sessions[i] is currently (mid-recursion) assigned to slotID.
func neighborHoldsSlot(sessions []*ClassSession, graph *conflictGraph, i, slotID int) bool {
	for _, n := range graph.neighbors[i] {
		if sessions[n].AssignedSlotID == slotID {
			return true
		}
	}
	return false
}

// professorBusyBefore reports whether some earlier session in recursion
// order already holds (professorID, slotID).
func professorBusyBefore(sessions []*ClassSession, i, professorID, slotID int) bool {
	for k := 0; k < i; k++ {
		if sessions[k].AssignedProfessorID == professorID && sessions[k].AssignedSlotID == slotID {
			return true
		}
	}
	return false
}
