package timetable

// index holds the bidirectional external-id <-> dense-index mappings built
// once per solve, plus the tensor and auxiliary tracking state that the
// greedy solver mutates (the backtracking solver does not touch it).
type index struct {
	profExtToIdx map[int]int
	profIdxToExt []int

	slotExtToIdx map[int]int
	slotIdxToExt []int

	groupExtToIdx map[int]int
	groupIdxToExt []int

	// next[slotIdx] is the dense index of the slot that immediately
	// follows it on the same day (end == start), or -1 if none.
	next []int

	// slotDay[slotIdx] is the calendar day (1..5) of that dense slot.
	slotDay []int

	// professorByExternID is a read-only copy of each Professor keyed by
	// external id, used by the predicates so they never need to scan
	// Builder.professors.
	professorByExternID map[int]Professor

	state *state
}

// buildIndex assigns dense 0-based indices to professors, slots, and groups
// in input order, and allocates the tensor and auxiliary maps. Never
// returns an error for well-formed Builder state; the error return exists
// for internal-fault surfacing per the core's contract.
func buildIndex(b *Builder) (*index, error) {
	idx := &index{
		profExtToIdx:  make(map[int]int, len(b.professors)),
		profIdxToExt:  make([]int, len(b.professors)),
		slotExtToIdx:  make(map[int]int, len(b.timeSlots)),
		slotIdxToExt:  make([]int, len(b.timeSlots)),
		groupExtToIdx: make(map[int]int, len(b.groups)),
		groupIdxToExt: make([]int, len(b.groups)),
	}

	for i, p := range b.professors {
		idx.profExtToIdx[p.ID] = i
		idx.profIdxToExt[i] = p.ID
	}
	for i, t := range b.timeSlots {
		idx.slotExtToIdx[t.ID] = i
		idx.slotIdxToExt[i] = t.ID
	}
	for i, g := range b.groups {
		idx.groupExtToIdx[g.ID] = i
		idx.groupIdxToExt[i] = g.ID
	}

	idx.next = computeNextSlot(b.timeSlots)
	idx.slotDay = make([]int, len(b.timeSlots))
	for i, t := range b.timeSlots {
		idx.slotDay[i] = t.Day
	}
	idx.professorByExternID = make(map[int]Professor, len(b.professors))
	for _, p := range b.professors {
		idx.professorByExternID[p.ID] = p
	}
	idx.state = newState(len(b.professors), len(b.timeSlots), len(b.groups))

	return idx, nil
}

// computeNextSlot computes, for each dense slot index i, the unique j such
// that day(j) == day(i) and start(j) == end(i); -1 if no such slot exists.
func computeNextSlot(slots []TimeSlot) []int {
	next := make([]int, len(slots))
	for i := range next {
		next[i] = -1
	}
	for i, a := range slots {
		for j, c := range slots {
			if i == j {
				continue
			}
			if a.Day == c.Day && a.EndH == c.StartH && a.EndM == c.StartM {
				next[i] = j
				break
			}
		}
	}
	return next
}

func (idx *index) profDense(externID int) (int, bool) {
	i, ok := idx.profExtToIdx[externID]
	return i, ok
}

func (idx *index) slotDense(externID int) (int, bool) {
	i, ok := idx.slotExtToIdx[externID]
	return i, ok
}

func (idx *index) groupDense(externID int) (int, bool) {
	i, ok := idx.groupExtToIdx[externID]
	return i, ok
}
