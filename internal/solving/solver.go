// Package solving dispatches a puzzle to the DFS or DLX engine by name and
// records the resulting metrics, mirroring the original Solver/Metadata
// split: callers get a solved/unsolved verdict plus separately queryable
// timing and visited-node counters.
package solving

import (
	"fmt"
	"strings"

	"sudokucore/internal/dfs"
	"sudokucore/internal/dlx"
	"sudokucore/internal/metrics"
	"sudokucore/internal/puzzle"
)

// engine is the minimal surface both solving algorithms expose.
type engine interface {
	Solve() (bool, uint64)
}

// Solver wraps a chosen engine plus the puzzle it reads from and writes
// into, and accumulates metrics across the one Solve call it supports.
type Solver struct {
	puzzle  *puzzle.Puzzle
	engine  engine
	metrics metrics.Counters
}

// New selects an engine for p by algorithm, case-insensitively: "dfs"
// chooses the constraint-propagation engine, anything else (including the
// empty string) defaults to Dancing Links. It rejects a puzzle whose given
// clues already break row/column/box uniqueness with ErrConstraintViolation
// before either engine is constructed. A malformed puzzle encoding
// surfaces as the DLX engine's construction error.
func New(p *puzzle.Puzzle, algorithm string) (*Solver, error) {
	if !p.IsValid(puzzle.ScopeWhole{}) {
		return nil, fmt.Errorf("%w: given clues are inconsistent", puzzle.ErrConstraintViolation)
	}

	s := &Solver{puzzle: p}

	switch strings.ToLower(algorithm) {
	case "dfs":
		s.engine = dfs.New(p)
	default:
		eng, err := dlx.New(p)
		if err != nil {
			return nil, err
		}
		s.engine = eng
	}

	return s, nil
}

// Solve runs the selected engine once, recording its metrics, and reports
// whether a solution was found.
func (s *Solver) Solve() bool {
	ok, m := metrics.Observe(s.engine.Solve)
	s.metrics = m
	return ok
}

// TotalCPUTimeMS returns the wall-clock duration of the most recent Solve
// call, in milliseconds. It is 0 before Solve is called.
func (s *Solver) TotalCPUTimeMS() int64 {
	return s.metrics.ElapsedMS
}

// TotalVisitedNodes returns the visited-node count from the most recent
// Solve call.
func (s *Solver) TotalVisitedNodes() uint64 {
	return s.metrics.VisitedNodes
}

// Grid returns the solver's puzzle's current 9x9 digit matrix.
func (s *Solver) Grid() [puzzle.Size][puzzle.Size]int8 {
	var out [puzzle.Size][puzzle.Size]int8
	for r := 0; r < puzzle.Size; r++ {
		for c := 0; c < puzzle.Size; c++ {
			out[r][c] = s.puzzle.Read(r, c)
		}
	}
	return out
}

// GridString returns the solver's puzzle rendered as an 81-character
// row-major digit string, intended for tests and logging rather than
// end-user display.
func (s *Solver) GridString() string {
	return s.puzzle.String()
}
