package timetable

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// ScenarioSuite runs the canonical feasibility scenarios against the
// greedy solver, plus a few backtracking checks. Each test builds a fresh Builder; testify's suite gives
// us shared assertion helpers without shared solver state between tests.
type ScenarioSuite struct {
	suite.Suite
}

func TestScenarioSuite(t *testing.T) {
	suite.Run(t, new(ScenarioSuite))
}

// S1: trivial-feasible single session, single slot, single professor.
func (s *ScenarioSuite) TestTrivialFeasible() {
	b := NewBuilder()
	b.AddTimeSlot(1, 1, 8, 0, 9, 0)
	b.AddProfessor(1, "P1", []int{1}, []string{"MATH"})
	b.AddCourse(1, "Math I", "MATH", 15, 1, true)
	b.AddGroup(1, 1, []int{1})

	ok, err := b.Solve(ModeGreedy, 0)
	s.Require().NoError(err)
	s.True(ok)

	got := b.GetSolution()
	s.Require().Len(got, 1)
	s.Equal(Assignment{GroupID: 1, CourseID: 1, ProfessorID: 1, TimeSlotID: 1}, got[0])
}

// S2: unsatisfiable availability: professor has no free slots at all.
func (s *ScenarioSuite) TestUnsatisfiableAvailability() {
	b := NewBuilder()
	b.AddTimeSlot(1, 1, 8, 0, 9, 0)
	b.AddProfessor(1, "P1", nil, []string{"MATH"})
	b.AddCourse(1, "Math I", "MATH", 15, 1, true)
	b.AddGroup(1, 1, []int{1})

	ok, err := b.Solve(ModeGreedy, 0)
	s.Require().NoError(err)
	s.False(ok)
	s.Empty(b.GetSolution())
}

// S3: diversity trap. One professor teaches two courses to the same
// group. Tier 1 places the first course and then blocks the second on
// diversity (I5); tier 3 drops diversity entirely, so the second course
// still lands with the same professor once tiers cascade.
func (s *ScenarioSuite) TestDiversityTrapFallsThroughToEmergencyTier() {
	b := NewBuilder()
	b.AddTimeSlot(1, 1, 8, 0, 9, 0)
	b.AddTimeSlot(2, 1, 9, 0, 10, 0)
	b.AddProfessor(1, "P1", []int{1, 2}, []string{"MATH", "PHYS"})
	b.AddCourse(1, "Math I", "MATH", 15, 1, true)
	b.AddCourse(2, "Physics I", "PHYS", 15, 1, true)
	b.AddGroup(1, 1, []int{1, 2})

	ok, err := b.Solve(ModeGreedy, 0)
	s.Require().NoError(err)
	s.True(ok)

	got := b.GetSolution()
	s.Require().Len(got, 2)
	s.Equal(got[0].ProfessorID, got[1].ProfessorID)
}

// TestDiversityOKRejectsASecondCourseDirectly checks the predicate in
// isolation, independent of tier cascading.
func TestDiversityOKRejectsASecondCourseDirectly(t *testing.T) {
	idx := &index{state: newState(1, 1, 1)}
	idx.state.assignWithProfessor(0, 0, 0, 1 /* courseID MATH */, 1, 1)

	if diversityOK(idx, 0, 0, 2 /* courseID PHYS */) {
		t.Fatalf("expected diversity check to reject a second course for the same professor/group")
	}
	if !diversityOK(idx, 0, 0, 1) {
		t.Fatalf("expected diversity check to allow the same course again")
	}
}

// S4: per-day quota. 3 sessions of one course, 3 Monday slots, one
// professor free for all three. Tier 1 caps the group/course/day at 2
// (I6); tier 2 (session_number > 1) drops quota enforcement precisely for
// this case, so the third session lands too once tiers cascade. I6 only
// binds "non-relaxed runs" — this is the relaxed case.
func (s *ScenarioSuite) TestPerDayQuotaRelaxesInTierTwo() {
	b := NewBuilder()
	b.AddTimeSlot(1, 1, 8, 0, 9, 0)
	b.AddTimeSlot(2, 1, 9, 0, 10, 0)
	b.AddTimeSlot(3, 1, 10, 0, 11, 0)
	b.AddProfessor(1, "P1", []int{1, 2, 3}, []string{"MATH"})
	b.AddCourse(1, "Math I", "MATH", 45, 1, true) // credits 45 -> 3 sessions
	b.AddGroup(1, 1, []int{1})

	ok, err := b.Solve(ModeGreedy, 0)
	s.Require().NoError(err)
	s.True(ok)
	s.Len(b.GetSolution(), 3)
}

// TestPerDayQuotaHoldsWithoutARelaxingTier confirms I6's non-relaxed
// guarantee directly against perDayQuota: once two sessions of (group,
// course) occupy a day, a third candidate slot on that same day is
// rejected by the predicate itself, independent of any tier.
func TestPerDayQuotaHoldsWithoutARelaxingTier(t *testing.T) {
	b := NewBuilder()
	b.AddTimeSlot(1, 1, 8, 0, 9, 0)
	b.AddTimeSlot(2, 1, 9, 0, 10, 0)
	b.AddTimeSlot(3, 1, 10, 0, 11, 0)
	b.AddProfessor(1, "P1", []int{1, 2, 3}, []string{"MATH"})
	b.AddCourse(1, "Math I", "MATH", 15, 1, true)
	b.AddGroup(1, 1, []int{1})

	idx, err := buildIndex(b)
	if err != nil {
		t.Fatalf("buildIndex: %v", err)
	}
	groupDenseIdx, _ := idx.groupDense(1)
	slotDenseIdx, _ := idx.slotDense(1)
	day := idx.slotDay[slotDenseIdx]

	idx.state.assignWithoutProfessor(0, groupDenseIdx, 1, day)
	idx.state.assignWithoutProfessor(1, groupDenseIdx, 1, day)

	third, _ := idx.slotDense(3)
	if !perDayQuota(idx, groupDenseIdx, 1, third) {
		t.Fatalf("expected per-day quota to reject a third same-day session")
	}
}

// S5: cohesion. Two sessions of one course, two eligible professors both
// available; both sessions must land on whichever professor session 1
// picked.
func (s *ScenarioSuite) TestCohesionPinsSameProfessor() {
	b := NewBuilder()
	b.AddTimeSlot(1, 1, 8, 0, 9, 0)
	b.AddTimeSlot(2, 1, 9, 0, 10, 0)
	b.AddProfessor(1, "P1", []int{1, 2}, []string{"MATH"})
	b.AddProfessor(2, "P2", []int{1, 2}, []string{"MATH"})
	b.AddCourse(1, "Math I", "MATH", 30, 1, true) // credits 30 -> 2 sessions
	b.AddGroup(1, 1, []int{1})

	ok, err := b.Solve(ModeGreedy, 0)
	s.Require().NoError(err)
	s.True(ok)

	got := b.GetSolution()
	s.Require().Len(got, 2)
	s.Equal(got[0].ProfessorID, got[1].ProfessorID)
}

// S6: deadline. A large instance with a near-zero deadline must return
// promptly with an acceptable (possibly empty or partial) solution and
// never panic.
func (s *ScenarioSuite) TestDeadlineNeverPanics() {
	b := NewBuilder()
	for t := 1; t <= 40; t++ {
		day := ((t - 1) % 5) + 1
		b.AddTimeSlot(t, day, 8, 0, 9, 0)
	}
	var allSlots []int
	for t := 1; t <= 40; t++ {
		allSlots = append(allSlots, t)
	}
	for p := 1; p <= 20; p++ {
		b.AddProfessor(p, "Prof", allSlots, []string{"MATH"})
	}
	for c := 1; c <= 50; c++ {
		b.AddCourse(c, "Course", "MATH", 30, 1, true)
	}
	var courseIDs []int
	for c := 1; c <= 50; c++ {
		courseIDs = append(courseIDs, c)
	}
	for g := 1; g <= 30; g++ {
		b.AddGroup(g, 1, courseIDs)
	}

	s.NotPanics(func() {
		_, err := b.Solve(ModeGreedy, 0.001)
		s.Require().NoError(err)
	})
}

// requiresProfessorFalse sessions must be honored by both solvers (a
// supplement the core spec calls out explicitly).
func (s *ScenarioSuite) TestRequiresProfessorFalseNeedsOnlyAFreeSlot() {
	b := NewBuilder()
	b.AddTimeSlot(1, 1, 8, 0, 9, 0)
	b.AddCourse(1, "Residency", "RESI", 15, 8, false)
	b.AddGroup(1, 8, []int{1})

	ok, err := b.Solve(ModeGreedy, 0)
	s.Require().NoError(err)
	s.True(ok)

	got := b.GetSolution()
	s.Require().Len(got, 1)
	s.Equal(NoProfessor, got[0].ProfessorID)
	s.Equal(1, got[0].TimeSlotID)
}

func (s *ScenarioSuite) TestBacktrackingSolvesTrivialFeasible() {
	b := NewBuilder()
	b.AddTimeSlot(1, 1, 8, 0, 9, 0)
	b.AddProfessor(1, "P1", []int{1}, []string{"MATH"})
	b.AddCourse(1, "Math I", "MATH", 15, 1, true)
	b.AddGroup(1, 1, []int{1})

	ok, err := b.Solve(ModeBacktracking, 0)
	s.Require().NoError(err)
	s.True(ok)
	s.Len(b.GetSolution(), 1)
}

// Stats().SessionsByTier must attribute S1's lone placement to tier 1 (full
// constraints, nothing relaxed), and Elapsed must reflect a real measurement.
func (s *ScenarioSuite) TestStatsReportsTierAndElapsed() {
	b := NewBuilder()
	b.AddTimeSlot(1, 1, 8, 0, 9, 0)
	b.AddProfessor(1, "P1", []int{1}, []string{"MATH"})
	b.AddCourse(1, "Math I", "MATH", 15, 1, true)
	b.AddGroup(1, 1, []int{1})

	ok, err := b.Solve(ModeGreedy, 0)
	s.Require().NoError(err)
	s.True(ok)

	stats := b.Stats()
	s.Equal(map[int]int{1: 1}, stats.SessionsByTier)
	s.GreaterOrEqual(stats.Elapsed.Nanoseconds(), int64(0))
}

// S3's diversity trap only completes once tier 3 drops diversity; the tier
// breakdown must show the second session landing in tier 3, not tier 1.
func (s *ScenarioSuite) TestStatsReportsRelaxedTierOnCascade() {
	b := NewBuilder()
	b.AddTimeSlot(1, 1, 8, 0, 9, 0)
	b.AddTimeSlot(2, 1, 9, 0, 10, 0)
	b.AddProfessor(1, "P1", []int{1, 2}, []string{"MATH", "PHYS"})
	b.AddCourse(1, "Math I", "MATH", 15, 1, true)
	b.AddCourse(2, "Physics I", "PHYS", 15, 1, true)
	b.AddGroup(1, 1, []int{1, 2})

	ok, err := b.Solve(ModeGreedy, 0)
	s.Require().NoError(err)
	s.True(ok)

	stats := b.Stats()
	s.Equal(1, stats.SessionsByTier[1])
	s.Equal(1, stats.SessionsByTier[3])
}

// Backtracking has no tiers, so the breakdown must stay empty even on a
// successful solve.
func (s *ScenarioSuite) TestBacktrackingReportsNoTierBreakdown() {
	b := NewBuilder()
	b.AddTimeSlot(1, 1, 8, 0, 9, 0)
	b.AddProfessor(1, "P1", []int{1}, []string{"MATH"})
	b.AddCourse(1, "Math I", "MATH", 15, 1, true)
	b.AddGroup(1, 1, []int{1})

	ok, err := b.Solve(ModeBacktracking, 0)
	s.Require().NoError(err)
	s.True(ok)
	s.Empty(b.Stats().SessionsByTier)
}

func (s *ScenarioSuite) TestEmptyProfessorListFailsCleanly() {
	b := NewBuilder()
	b.AddTimeSlot(1, 1, 8, 0, 9, 0)
	b.AddCourse(1, "Math I", "MATH", 15, 1, true)
	b.AddGroup(1, 1, []int{1})

	ok, err := b.Solve(ModeGreedy, 0)
	s.Require().NoError(err)
	s.False(ok)
	s.Empty(b.GetSolution())
}

// v1 consecutiveness end-to-end: with only one (non-adjacent) slot pair
// available per day, a 2-session course can only complete once strict
// consecutiveness is relaxed back to v2 default (scoring-only adjacency).
func (s *ScenarioSuite) TestStrictConsecutivenessBlocksWhatV2DefaultAllows() {
	build := func(strict bool) (solved bool, placed int) {
		b := NewBuilder()
		b.AddTimeSlot(1, 1, 8, 0, 9, 0)   // Monday, block 1
		b.AddTimeSlot(2, 1, 11, 0, 12, 0) // Monday, block 2 (gap, not adjacent)
		b.AddProfessor(1, "P1", []int{1, 2}, []string{"MATH"})
		b.AddCourse(1, "Math I", "MATH", 30, 1, true) // 2 sessions
		b.AddGroup(1, 1, []int{1})
		if strict {
			b.UseStrictConsecutiveness()
		}
		ok, err := b.Solve(ModeGreedy, 0)
		s.Require().NoError(err)
		return ok, len(b.GetSolution())
	}

	solvedDefault, placedDefault := build(false)
	s.True(solvedDefault)
	s.Equal(2, placedDefault, "v2 default should place both sessions despite the slot gap")

	solvedStrict, placedStrict := build(true)
	s.True(solvedStrict)
	s.Equal(1, placedStrict, "strict consecutiveness should reject the non-adjacent second slot, leaving the session unplaced through every tier")
}
