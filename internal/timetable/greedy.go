package timetable

import "time"

// DeadlineCheckInterval is how many greedy assignments pass between
// wall-clock checks, per the core's "every K greedy assignments" guidance.
const DeadlineCheckInterval = 25

// tierRules is the per-tier relaxation table from the core spec: which
// checks a placement in that tier must satisfy.
type tierRules struct {
	checkCompetency bool
	enforceQuota    bool
	enforceCohesion bool
	enforceDiversity bool
	minSessionNumber int // tier only applies when session.SessionNumber >= this
}

var greedyTiers = []tierRules{
	{checkCompetency: true, enforceQuota: true, enforceCohesion: true, enforceDiversity: true, minSessionNumber: 1},
	{checkCompetency: true, enforceQuota: false, enforceCohesion: true, enforceDiversity: true, minSessionNumber: 2},
	{checkCompetency: false, enforceQuota: true, enforceCohesion: true, enforceDiversity: false, minSessionNumber: 1},
	{checkCompetency: false, enforceQuota: false, enforceCohesion: true, enforceDiversity: false, minSessionNumber: 1},
}

// resolveGreedy runs session generation's output through assign, tier by
// tier, session by session, and returns the count of successful placements
// plus a per-tier breakdown (tier 0 covers sessions whose course doesn't
// require a professor, since the tier table never applies to those).
func resolveGreedy(b *Builder, idx *index, deadlineSeconds float64) (assigned int, timedOut bool, byTier map[int]int, err error) {
	start := time.Now()
	checkEvery := 0
	byTier = make(map[int]int)

	for _, session := range b.sessions {
		if deadlineSeconds > 0 && checkEvery >= DeadlineCheckInterval {
			checkEvery = 0
			if time.Since(start).Seconds() >= deadlineSeconds {
				timedOut = true
				return assigned, timedOut, byTier, nil
			}
		}

		course, ok := b.course(session.CourseID)
		if !ok {
			continue // configuration error: dangling course id, silent skip
		}
		groupDenseIdx, ok := idx.groupDense(session.GroupID)
		if !ok {
			continue
		}

		var placed bool
		var tier int
		if !course.RequiresProfessor {
			placed = assignWithoutProfessor(b, idx, session, course, groupDenseIdx)
		} else {
			placed, tier = assignWithProfessorTiers(b, idx, session, course, groupDenseIdx)
		}
		if placed {
			assigned++
			byTier[tier]++
		}
		checkEvery++
	}
	return assigned, timedOut, byTier, nil
}

// assignWithProfessorTiers tries the four relaxation tiers in order and
// stops at the first successful placement, reporting the 1-based tier
// number that succeeded.
func assignWithProfessorTiers(b *Builder, idx *index, session *ClassSession, course Course, groupDenseIdx int) (bool, int) {
	for i, tier := range greedyTiers {
		if session.SessionNumber < tier.minSessionNumber {
			continue
		}
		if tryTier(b, idx, session, course, groupDenseIdx, tier) {
			return true, i + 1
		}
	}
	return false, 0
}

func tryTier(b *Builder, idx *index, session *ClassSession, course Course, groupDenseIdx int, tier tierRules) bool {
	for _, prof := range b.professors {
		if tier.checkCompetency {
			if _, teaches := prof.TeachableCourses[course.Code]; !teaches {
				continue
			}
		}
		profDenseIdx, ok := idx.profDense(prof.ID)
		if !ok {
			continue
		}

		for _, slotDenseIdx := range candidateSlots(idx, prof.ID, groupDenseIdx) {
			if !availability(idx, profDenseIdx, slotDenseIdx) {
				continue
			}
			if profConflict(idx, profDenseIdx, slotDenseIdx) {
				continue
			}
			if groupConflict(idx, slotDenseIdx, groupDenseIdx) {
				continue
			}
			if tier.enforceDiversity && !diversityOK(idx, profDenseIdx, groupDenseIdx, session.CourseID) {
				continue
			}
			if tier.enforceCohesion && !sessionCohesion(idx, groupDenseIdx, session, prof.ID) {
				continue
			}
			if tier.enforceQuota && perDayQuota(idx, groupDenseIdx, session.CourseID, slotDenseIdx) {
				continue
			}
			if b.strictConsecutiveness && !consecutiveOK(idx, groupDenseIdx, session.CourseID, slotDenseIdx) {
				continue
			}

			day := idx.slotDay[slotDenseIdx]
			idx.state.assignWithProfessor(profDenseIdx, slotDenseIdx, groupDenseIdx, session.CourseID, day, prof.ID)
			session.AssignedSlotID = idx.slotIdxToExt[slotDenseIdx]
			session.AssignedProfessorID = prof.ID
			return true
		}
	}
	return false
}

// assignWithoutProfessor places a session whose course does not require a
// professor into any free slot for the group, honoring only the group
// conflict and per-day quota checks, plus the v1 consecutiveness rule when
// it is enabled (there is no professor to be diverse about, cohesive with,
// or competent for).
func assignWithoutProfessor(b *Builder, idx *index, session *ClassSession, course Course, groupDenseIdx int) bool {
	for slotDenseIdx := 0; slotDenseIdx < idx.state.numSlot; slotDenseIdx++ {
		if groupConflict(idx, slotDenseIdx, groupDenseIdx) {
			continue
		}
		if perDayQuota(idx, groupDenseIdx, session.CourseID, slotDenseIdx) {
			continue
		}
		if b.strictConsecutiveness && !consecutiveOK(idx, groupDenseIdx, session.CourseID, slotDenseIdx) {
			continue
		}
		day := idx.slotDay[slotDenseIdx]
		idx.state.assignWithoutProfessor(slotDenseIdx, groupDenseIdx, session.CourseID, day)
		session.AssignedSlotID = idx.slotIdxToExt[slotDenseIdx]
		session.AssignedProfessorID = NoProfessor
		return true
	}
	return false
}
