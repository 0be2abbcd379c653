package timetable

import "fmt"

// FaultKind labels an internal fault raised by the core engine. These are
// distinct from ordinary infeasibility (a session simply stays unplaced) —
// a Fault means the solver hit a state it should never reach given a
// consistent Builder.
type FaultKind string

const (
	// FaultIndexOutOfRange means a dense index produced by the index
	// builder was used to address the tensor outside its bounds.
	FaultIndexOutOfRange FaultKind = "INDEX_OUT_OF_RANGE"
	// FaultCorruptSession means a session reached the solver with a
	// group or course id that isn't present in the Builder's records.
	FaultCorruptSession FaultKind = "CORRUPT_SESSION"
)

// Fault is the internal-fault error returned from Solve. It is never
// returned for ordinary infeasibility (no tier produced a placement) or a
// deadline expiring — those are reported through the bool return and
// SolveStats, not through error.
type Fault struct {
	Kind    FaultKind
	Detail  string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("timetable: internal fault %s: %s", f.Kind, f.Detail)
}

func newFault(kind FaultKind, detail string) *Fault {
	return &Fault{Kind: kind, Detail: detail}
}
