package timetable

// conflictGraph is the backtracking solver's session-adjacency structure:
// nodes are session indices into the sorted session slice, edges connect
// two sessions that belong to the same group (and therefore can never
// share a slot). Adapted from the teacher's internal/graph package, keyed
// by slice index instead of external session id since the backtracking
// solver never needs to look a session up by anything else.
type conflictGraph struct {
	neighbors [][]int
}

// buildConflictGraph groups session indices by GroupID and wires every pair
// within a group together; O(sessions^2) in the worst case per group but
// groups are small cohorts, not the whole instance.
func buildConflictGraph(sessions []*ClassSession) *conflictGraph {
	byGroup := make(map[int][]int)
	for i, s := range sessions {
		byGroup[s.GroupID] = append(byGroup[s.GroupID], i)
	}

	g := &conflictGraph{neighbors: make([][]int, len(sessions))}
	for _, members := range byGroup {
		for _, i := range members {
			for _, j := range members {
				if i != j {
					g.neighbors[i] = append(g.neighbors[i], j)
				}
			}
		}
	}
	return g
}
