package timetable

import "sort"

// generateSessions expands each (group, course) pair into N atomic weekly
// sessions. N = 2 for long-form courses (credits >= 600, e.g. industrial
// residencies); otherwise N = max(1, credits / 15). A group referencing a
// course id that was never added is skipped silently — this is a
// configuration error per the core's error taxonomy, not a fault.
func generateSessions(b *Builder) []*ClassSession {
	var sessions []*ClassSession
	counter := 0

	for _, g := range b.groups {
		for _, courseID := range g.CourseIDs {
			course, ok := b.course(courseID)
			if !ok {
				continue
			}
			n := sessionCount(course.Credits)
			for i := 1; i <= n; i++ {
				counter++
				sessions = append(sessions, &ClassSession{
					ID:                  counter,
					CourseID:            courseID,
					GroupID:             g.ID,
					Credits:             course.Credits,
					SessionNumber:       i,
					AssignedSlotID:      Unassigned,
					AssignedProfessorID: Unassigned,
				})
			}
		}
	}
	return sessions
}

// sessionCount implements the credits -> session-count formula.
func sessionCount(credits int) int {
	if credits >= 600 {
		return 2
	}
	n := credits / 15
	if n < 1 {
		return 1
	}
	return n
}

// sortSessionsByPriority orders sessions by (-credits, +course_id,
// +session_number): heavier courses first, sessions of the same course
// adjacent so cohesion can be established on session 1 and propagated.
func sortSessionsByPriority(sessions []*ClassSession) {
	sort.SliceStable(sessions, func(i, j int) bool {
		a, c := sessions[i], sessions[j]
		if a.Credits != c.Credits {
			return a.Credits > c.Credits
		}
		if a.CourseID != c.CourseID {
			return a.CourseID < c.CourseID
		}
		return a.SessionNumber < c.SessionNumber
	})
}
