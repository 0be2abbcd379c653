package timetable

// state is the three-dimensional occupancy tensor A[p][t][g] plus the
// auxiliary tracking maps described by the core's data model. It is built
// once at solve entry, mutated only by successful assignments, and never
// garbage-collected during a solve. There is no undo path: the greedy
// solver never takes a placement back, and the backtracking solver does not
// use this state.
type state struct {
	// tensor[p][t][g] holds the course id occupying that cell, or 0.
	// Indexed by dense professor/slot/group index. Only ever written for
	// professor-bound placements (RequiresProfessor == true); sessions
	// with no professor never touch this axis.
	tensor [][][]int

	// groupSlotCourse[t][g] holds the course id occupying (slot, group)
	// regardless of whether a professor was assigned — this is what
	// group_conflict and the per-day quota read, since a "no professor"
	// session still occupies the group's time. 0 = free.
	groupSlotCourse [][]int

	// coursesByProfGroup[groupIdx][profIdx] is the set of course ids that
	// professor already teaches to that group (diversity enforcement).
	coursesByProfGroup []map[int]map[int]struct{}

	// loadGroupDay[groupIdx][day] counts assigned sessions for that
	// (group, day) pair, read by the scoring heuristic.
	loadGroupDay []map[int]int

	// cohesionProf[groupIdx] maps course id -> the professor id teaching
	// that (group, course) pair's first assigned session, used to
	// enforce that every later session of the same (group, course)
	// shares the same professor.
	cohesionProf []map[int]int

	numProf, numSlot, numGroup int
}

func newState(numProf, numSlot, numGroup int) *state {
	s := &state{
		numProf:  numProf,
		numSlot:  numSlot,
		numGroup: numGroup,
	}
	s.tensor = make([][][]int, numProf)
	for p := range s.tensor {
		s.tensor[p] = make([][]int, numSlot)
		for t := range s.tensor[p] {
			s.tensor[p][t] = make([]int, numGroup)
		}
	}
	s.groupSlotCourse = make([][]int, numSlot)
	for t := range s.groupSlotCourse {
		s.groupSlotCourse[t] = make([]int, numGroup)
	}
	s.coursesByProfGroup = make([]map[int]map[int]struct{}, numGroup)
	for g := range s.coursesByProfGroup {
		s.coursesByProfGroup[g] = make(map[int]map[int]struct{})
	}
	s.loadGroupDay = make([]map[int]int, numGroup)
	for g := range s.loadGroupDay {
		s.loadGroupDay[g] = make(map[int]int)
	}
	s.cohesionProf = make([]map[int]int, numGroup)
	for g := range s.cohesionProf {
		s.cohesionProf[g] = make(map[int]int)
	}
	return s
}

// assignWithProfessor records a professor-bound placement into the tensor
// and every auxiliary structure. p is the professor's dense index (used for
// the tensor and diversity tracking); profExternID is its external id, the
// only form sessionCohesion ever compares against. day is the calendar day
// of slot t, used by the load tracker.
func (s *state) assignWithProfessor(p, t, g, courseID, day, profExternID int) {
	s.tensor[p][t][g] = courseID
	s.groupSlotCourse[t][g] = courseID

	if s.coursesByProfGroup[g][p] == nil {
		s.coursesByProfGroup[g][p] = make(map[int]struct{})
	}
	s.coursesByProfGroup[g][p][courseID] = struct{}{}

	s.loadGroupDay[g][day]++
	s.cohesionProf[g][courseID] = profExternID
}

// assignWithoutProfessor records a placement for a session whose course
// does not require a professor: only the group/slot occupancy and the
// per-day load are tracked, since there is no professor axis to update.
func (s *state) assignWithoutProfessor(t, g, courseID, day int) {
	s.groupSlotCourse[t][g] = courseID
	s.loadGroupDay[g][day]++
}
