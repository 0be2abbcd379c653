package timetable

// extractSolution flattens every placed session into an output tuple,
// skipping sessions that never got both a slot and (when required) a
// professor. No session is ever half-assigned: a successful placement
// sets both ids together, so IsPlaced is a sufficient filter.
func extractSolution(sessions []*ClassSession) []Assignment {
	out := make([]Assignment, 0, len(sessions))
	for _, s := range sessions {
		if !s.IsPlaced() {
			continue
		}
		out = append(out, Assignment{
			GroupID:     s.GroupID,
			CourseID:    s.CourseID,
			ProfessorID: s.AssignedProfessorID,
			TimeSlotID:  s.AssignedSlotID,
		})
	}
	return out
}
