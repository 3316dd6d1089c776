package dlx

import (
	"sudokucore/internal/cover"
	"sudokucore/internal/logx"
	"sudokucore/internal/puzzle"
)

// Engine solves a puzzle by encoding it as an exact-cover matrix and
// running Algorithm X over it.
type Engine struct {
	puzzle *puzzle.Puzzle
	matrix *Matrix
}

// New encodes p's current clues into a fresh matrix. It returns ErrInternal
// if the encoding is malformed, which should be unreachable for any puzzle
// produced by the puzzle package.
func New(p *puzzle.Puzzle) (*Engine, error) {
	rows := cover.Encode(p)

	m, err := Build(rows)
	if err != nil {
		return nil, err
	}

	return &Engine{puzzle: p, matrix: m}, nil
}

// Solve runs Algorithm X and, on success, writes the decoded solution back
// into the puzzle. If decoding fails — an internal invariant breach that
// should be unreachable given a well-formed encoding — Solve logs the
// failure and reports no solution, making no claim about puzzle state.
func (e *Engine) Solve() (bool, uint64) {
	ok, visited := e.matrix.Solve()
	if !ok {
		return false, visited
	}

	labels, err := e.matrix.Decode()
	if err != nil {
		logx.Warn("dlx decode failed after successful search", map[string]any{"error": err.Error()})
		return false, visited
	}

	for _, lbl := range labels {
		e.puzzle.Write(lbl.Row, lbl.Col, int8(lbl.DigitIndex+1))
	}

	return true, visited
}
