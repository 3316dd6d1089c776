// Package metrics collects the per-solve counters the original Rust
// implementation exposed as Metadata and the teacher exposed as
// DancingLinksStats: visited-node counts and wall-clock solve time.
package metrics

import "time"

// Counters holds the observations a dispatcher gathers around a single
// solve call.
type Counters struct {
	VisitedNodes uint64
	ElapsedMS    int64
}

// Observe runs fn, timing it, and returns the counters built from fn's own
// reported visited-node count plus the measured elapsed time.
func Observe(fn func() (bool, uint64)) (bool, Counters) {
	start := time.Now()
	ok, visited := fn()
	elapsed := time.Since(start)

	return ok, Counters{
		VisitedNodes: visited,
		ElapsedMS:    elapsed.Milliseconds(),
	}
}
