package takuzu

import (
	"math/bits"
	"time"
)

// Stats describes one Solve call.
type Stats struct {
	// Visits counts states the search descended into, including the
	// starting state.
	Visits int
	// Evals counts Valid checks: one per candidate assignment, plus one
	// confirming re-check on each completely filled state.
	Evals int
	// Duration is wall-clock time spent inside Solve.
	Duration time.Duration
}

// Progress is a point-in-time snapshot posted on Solver.Progress while
// the search runs.
type Progress struct {
	Filled int // assigned cells in the state being explored
	Cells  int // total cells in the grid
	Visits int // states visited so far
}

// Solver runs a depth-first backtracking search over Puzzle values.
// The zero value is ready to use. A Solver is not safe for concurrent
// Solve calls.
type Solver struct {
	// Progress, when non-nil, receives snapshots during the search.
	// Sends never block: if the channel is full the snapshot is
	// dropped, so a slow consumer cannot stall the solver.
	Progress chan<- Progress

	stats Stats
}

// Solve searches for a completion of p that satisfies every rule. It
// returns the first solution found and true, or the zero Puzzle and
// false when no assignment of the open cells works. The input is
// untouched either way; solving an already complete, rule-abiding grid
// returns it unchanged.
//
// Candidates are tried lowest open cell first, value 0 before value 1,
// so the result is deterministic for a given input.
func (s *Solver) Solve(p Puzzle) (Puzzle, bool) {
	s.stats = Stats{}
	start := time.Now()
	solved, ok := s.search(p)
	s.stats.Duration = time.Since(start)
	return solved, ok
}

// Stats returns counters from the most recent Solve call.
func (s *Solver) Stats() Stats {
	return s.stats
}

// Solve is a convenience wrapper around a throwaway Solver.
func Solve(p Puzzle) (Puzzle, bool) {
	var s Solver
	return s.Solve(p)
}

func (s *Solver) search(p Puzzle) (Puzzle, bool) {
	s.stats.Visits++
	s.post(p)
	if p.Complete() {
		s.stats.Evals++
		if p.Valid() {
			return p, true
		}
		return Puzzle{}, false
	}
	i := bits.TrailingZeros64(p.Empty)
	for v := 0; v <= 1; v++ {
		next := p.Assign(i, v)
		s.stats.Evals++
		if !next.Valid() {
			continue
		}
		if solved, ok := s.search(next); ok {
			return solved, true
		}
	}
	return Puzzle{}, false
}

func (s *Solver) post(p Puzzle) {
	if s.Progress == nil {
		return
	}
	select {
	case s.Progress <- Progress{Filled: p.Filled(), Cells: p.Cells(), Visits: s.stats.Visits}:
	default:
	}
}
