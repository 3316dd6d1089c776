package dfs

import (
	"sudokucore/internal/logx"
	"sudokucore/internal/peers"
)

// ac3 enforces arc consistency between every still-empty cell and its
// peers: a peer's assigned value is removed from the current cell's
// domain. When that pruning collapses a domain to exactly one candidate,
// the value is written into the grid, the cell is dropped from the
// domain map, and every still-empty peer is pushed back onto the
// worklist for re-examination.
func (e *Engine) ac3() {
	worklist := make([]position, 0, len(e.domains))
	for p := range e.domains {
		worklist = append(worklist, p)
	}

	for len(worklist) > 0 {
		cur := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		collapsed := e.arcReduce(cur)
		if !collapsed {
			continue
		}

		for _, idx := range peers.Of(cur.Row, cur.Col) {
			pr, pc := peers.RowCol(idx)
			peerPos := position{pr, pc}
			if _, ok := e.domains[peerPos]; ok {
				worklist = append(worklist, peerPos)
			}
		}
	}
}

// arcReduce prunes cur's domain against every peer's currently assigned
// value. It returns true if the domain collapsed to a single value, in
// which case that value has already been written to the grid and cur has
// already been removed from the domain map.
func (e *Engine) arcReduce(cur position) bool {
	domain, ok := e.domains[cur]
	if !ok {
		return false
	}

	for _, idx := range peers.Of(cur.Row, cur.Col) {
		pr, pc := peers.RowCol(idx)
		if val := e.puzzle.Read(pr, pc); val != 0 {
			domain.Remove(val)
		}
	}

	if domain.Size() != 1 {
		return false
	}

	last := sortedValues(domain)[0]
	logx.Debug("ac3 domain collapsed", map[string]any{
		"row": cur.Row, "col": cur.Col, "value": last,
	})
	e.puzzle.Write(cur.Row, cur.Col, last)
	delete(e.domains, cur)

	return true
}
