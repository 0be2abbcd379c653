package timetable

import (
	"fmt"
	"time"
)

// Builder accumulates domain records during ingest and exposes the
// resolve-and-dump interface described by the external collaborators
// (CSV/JSON loaders, the HTTP ingestion layer, etc). All records are
// append-only and read-only once a solve starts.
//
// Ids are external and must be non-zero: 0 is reserved as the tensor's
// empty-cell sentinel. The Builder neither rejects nor remaps a zero id.
// It also does not validate cross-references, matching the
// "silent skip, not error" contract of the original system.
type Builder struct {
	timeSlots  []TimeSlot
	professors []Professor
	courses    map[int]Course
	courseOrd  []int // insertion order, for deterministic iteration
	groups     []Group

	sessions []*ClassSession
	solved   bool
	stats    SolveStats

	// strictConsecutiveness toggles the optional v1 constraint (two
	// sessions of the same course on the same day must sit in adjacent
	// slots). Off by default: v2 drops it in favor of the per-day quota
	// plus the scoring heuristic's adjacency preference.
	strictConsecutiveness bool
}

// UseStrictConsecutiveness opts a solve into the v1 consecutiveness rule.
// Both the v1 and v2 behaviors are implemented; v2 is the default per the
// core spec's recommendation to favor feasibility over adjacency.
func (b *Builder) UseStrictConsecutiveness() {
	b.strictConsecutiveness = true
}

// NewBuilder returns an empty Builder ready for ingest.
func NewBuilder() *Builder {
	return &Builder{
		courses: make(map[int]Course),
	}
}

// AddTimeSlot registers a weekly time window.
func (b *Builder) AddTimeSlot(id, day, startH, startM, endH, endM int) {
	b.timeSlots = append(b.timeSlots, TimeSlot{
		ID: id, Day: day, StartH: startH, StartM: startM, EndH: endH, EndM: endM,
	})
}

// AddProfessor registers a professor and their availability/competency sets.
func (b *Builder) AddProfessor(id int, name string, availableSlotIDs []int, teachableCodes []string) {
	avail := make(map[int]struct{}, len(availableSlotIDs))
	for _, s := range availableSlotIDs {
		avail[s] = struct{}{}
	}
	codes := make(map[string]struct{}, len(teachableCodes))
	for _, c := range teachableCodes {
		codes[c] = struct{}{}
	}
	b.professors = append(b.professors, Professor{
		ID: id, Name: name, AvailableSlots: avail, TeachableCourses: codes,
	})
}

// AddCourse registers a course and its weekly workload.
func (b *Builder) AddCourse(id int, name, code string, credits, semester int, requiresProfessor bool) {
	if _, exists := b.courses[id]; !exists {
		b.courseOrd = append(b.courseOrd, id)
	}
	b.courses[id] = Course{
		ID: id, Name: name, Code: code, Credits: credits,
		Semester: semester, RequiresProfessor: requiresProfessor,
	}
}

// AddGroup registers a cohort and the courses it must take.
func (b *Builder) AddGroup(id, semester int, courseIDs []int) {
	cids := make([]int, len(courseIDs))
	copy(cids, courseIDs)
	b.groups = append(b.groups, Group{ID: id, Semester: semester, CourseIDs: cids})
}

// SolveMode selects which algorithm Solve runs.
type SolveMode int

const (
	// ModeGreedy is the primary solver: a greedy assignment heuristic
	// with four relaxation tiers. Fast, deterministic, bounded.
	ModeGreedy SolveMode = iota
	// ModeBacktracking is the opt-in alternative: MRV-style recursive
	// search over a conflict graph, used for small instances that
	// demand completeness.
	ModeBacktracking
)

// SolveStats summarizes one Solve call. It is produced by the core but
// consumed only by the ambient logging/metrics layer — no core predicate
// reads from it.
type SolveStats struct {
	Mode              SolveMode
	SessionsGenerated int
	SessionsAssigned  int
	TimedOut          bool

	// SessionsByTier counts greedy placements by the tier that succeeded
	// (1-4, per greedyTiers) plus 0 for sessions whose course doesn't
	// require a professor (the tier table never applies to those). Always
	// empty for ModeBacktracking, which has no tiers.
	SessionsByTier map[int]int

	// Elapsed is the wall-clock duration of the whole Solve call.
	Elapsed time.Duration
}

// Solve runs the configured mode's resolution over every generated session
// and returns true iff at least one session was successfully assigned.
// deadlineSeconds <= 0 disables the wall-clock check.
//
// A dense index produced by the index builder should never address the
// tensor out of bounds; if one somehow does, that is an internal fault, not
// ordinary infeasibility, and Solve recovers it into a *Fault rather than
// letting it crash the caller.
func (b *Builder) Solve(mode SolveMode, deadlineSeconds float64) (solved bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			solved = false
			err = newFault(FaultIndexOutOfRange, fmt.Sprintf("%v", r))
		}
	}()

	start := time.Now()

	idx, err := buildIndex(b)
	if err != nil {
		return false, err
	}

	b.sessions = generateSessions(b)
	sortSessionsByPriority(b.sessions)

	var assigned int
	var timedOut bool
	var byTier map[int]int
	switch mode {
	case ModeBacktracking:
		assigned, timedOut, err = resolveBacktracking(b, idx, deadlineSeconds)
	default:
		assigned, timedOut, byTier, err = resolveGreedy(b, idx, deadlineSeconds)
	}
	if err != nil {
		return false, err
	}

	b.solved = true
	b.stats = SolveStats{
		Mode:              mode,
		SessionsGenerated: len(b.sessions),
		SessionsAssigned:  assigned,
		TimedOut:          timedOut,
		SessionsByTier:    byTier,
		Elapsed:           time.Since(start),
	}
	return assigned > 0, nil
}

// Stats returns the statistics of the most recent Solve call.
func (b *Builder) Stats() SolveStats {
	return b.stats
}

// GetSolution flattens placed sessions into output tuples. Sessions that
// never got both a slot and (when required) a professor are omitted.
func (b *Builder) GetSolution() []Assignment {
	return extractSolution(b.sessions)
}

func (b *Builder) course(id int) (Course, bool) {
	c, ok := b.courses[id]
	return c, ok
}
