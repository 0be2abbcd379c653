package timetable

// The predicates below are pure reads of the tensor and auxiliary state.
// None of them mutate anything; the greedy and backtracking solvers decide
// what to do with the answer.

// availability reports whether slot t (dense index) is in professor p's
// (dense index) availability set.
func availability(idx *index, profDenseIdx, slotDenseIdx int) bool {
	externProf := idx.profIdxToExt[profDenseIdx]
	externSlot := idx.slotIdxToExt[slotDenseIdx]
	prof, ok := idx.professorByExternID[externProf]
	if !ok {
		return false
	}
	_, available := prof.AvailableSlots[externSlot]
	return available
}

// profConflict reports whether professor p already teaches some group at
// slot t.
func profConflict(idx *index, profDenseIdx, slotDenseIdx int) bool {
	for g := 0; g < idx.state.numGroup; g++ {
		if idx.state.tensor[profDenseIdx][slotDenseIdx][g] != 0 {
			return true
		}
	}
	return false
}

// groupConflict reports whether group g already attends some session at
// slot t, with or without a professor.
func groupConflict(idx *index, slotDenseIdx, groupDenseIdx int) bool {
	return idx.state.groupSlotCourse[slotDenseIdx][groupDenseIdx] != 0
}

// diversityOK reports whether professor p may teach course c to group g:
// true iff p currently teaches g no courses, or only c.
func diversityOK(idx *index, profDenseIdx, groupDenseIdx, courseID int) bool {
	set := idx.state.coursesByProfGroup[groupDenseIdx][profDenseIdx]
	if len(set) == 0 {
		return true
	}
	_, onlyThis := set[courseID]
	return onlyThis && len(set) == 1
}

// sessionCohesion reports whether assigning professor p to this session
// would keep every session of (group, course) taught by one professor.
// Session 1 always passes (it establishes cohesion for the rest).
func sessionCohesion(idx *index, groupDenseIdx int, session *ClassSession, profExternID int) bool {
	if session.SessionNumber == 1 {
		return true
	}
	existing, ok := idx.state.cohesionProf[groupDenseIdx][session.CourseID]
	if !ok {
		return true
	}
	return existing == profExternID
}

// perDayQuota reports whether group g has already reached its cap of 2
// assigned sessions of course c on the day containing slot t.
func perDayQuota(idx *index, groupDenseIdx, courseID, slotDenseIdx int) bool {
	day := idx.slotDay[slotDenseIdx]
	count := 0
	for t := 0; t < idx.state.numSlot; t++ {
		if idx.slotDay[t] != day {
			continue
		}
		if idx.state.groupSlotCourse[t][groupDenseIdx] == courseID {
			count++
		}
	}
	return count >= 2
}

// consecutiveOK is the optional v1 constraint, wired in via
// Builder.UseStrictConsecutiveness: any second-or-later session of the
// same course placed on a day that already holds a session of that course
// must land adjacent to one of them (slot[i+1] follows slot[i] iff same
// day and slot[i].end == slot[i+1].start). A day with no prior session of
// the course imposes nothing yet.
func consecutiveOK(idx *index, groupDenseIdx, courseID, slotDenseIdx int) bool {
	day := idx.slotDay[slotDenseIdx]
	sawSameDay := false
	for t := 0; t < idx.state.numSlot; t++ {
		if idx.slotDay[t] != day || idx.state.groupSlotCourse[t][groupDenseIdx] != courseID {
			continue
		}
		sawSameDay = true
		if idx.next[t] == slotDenseIdx || idx.next[slotDenseIdx] == t {
			return true
		}
	}
	return !sawSameDay
}
