package timetable

import "sort"

// candidateSlots returns the professor's available slots, as dense slot
// indices, ordered by the scoring comparator for the given group. Slots the
// professor cannot attend are never candidates to begin with.
//
// The base order before scoring is the master dense-slot order (0..numSlot),
// not a map iteration — map order is randomized per run, and the scoring
// comparator itself is frequently tied (e.g. a group's very first session
// has identical zero load/adjacency across every candidate). Starting from
// a fixed base order and sorting with a stable sort means ties resolve the
// same way on every run, per spec.md §9's "no tie-breaking randomness".
func candidateSlots(idx *index, profExternID int, groupDenseIdx int) []int {
	prof, ok := idx.professorByExternID[profExternID]
	if !ok {
		return nil
	}
	var slots []int
	for denseIdx := 0; denseIdx < idx.state.numSlot; denseIdx++ {
		externID := idx.slotIdxToExt[denseIdx]
		if _, available := prof.AvailableSlots[externID]; available {
			slots = append(slots, denseIdx)
		}
	}
	sort.SliceStable(slots, func(i, j int) bool {
		return less(idx, groupDenseIdx, slots[i], slots[j])
	})
	return slots
}

func load(idx *index, groupDenseIdx, slotDenseIdx int) int {
	day := idx.slotDay[slotDenseIdx]
	return idx.state.loadGroupDay[groupDenseIdx][day]
}

// adjacent reports whether slot t has a same-day neighbor (immediately
// before or after) already occupied for group g, by any professor.
func adjacent(idx *index, groupDenseIdx, slotDenseIdx int) bool {
	if n := idx.next[slotDenseIdx]; n != -1 && idx.state.groupSlotCourse[n][groupDenseIdx] != 0 {
		return true
	}
	for t := 0; t < idx.state.numSlot; t++ {
		if idx.next[t] == slotDenseIdx && idx.state.groupSlotCourse[t][groupDenseIdx] != 0 {
			return true
		}
	}
	return false
}

// less implements the slot comparator from the scoring heuristic: every
// day deserves at least 2 classes, then compact blocks (adjacency) are
// preferred within a 1-session load tolerance band, and otherwise the
// lighter day wins.
func less(idx *index, groupDenseIdx, a, b int) bool {
	loadA, loadB := load(idx, groupDenseIdx, a), load(idx, groupDenseIdx, b)
	adjA, adjB := adjacent(idx, groupDenseIdx, a), adjacent(idx, groupDenseIdx, b)

	if loadA < 2 || loadB < 2 {
		if loadA != loadB {
			return loadA < loadB
		}
		if adjA != adjB {
			return adjA
		}
		return loadA < loadB
	}

	diff := loadA - loadB
	if diff < 0 {
		diff = -diff
	}
	if diff <= 1 {
		if adjA != adjB {
			return adjA
		}
		return loadA < loadB
	}

	return loadA < loadB
}
