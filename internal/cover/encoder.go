// Package cover translates a partially filled Sudoku puzzle into the rows
// of an exact-cover matrix over the four canonical Sudoku constraints:
// cell occupancy, row/digit, column/digit, and box/digit — 324 columns in
// total, numbered 1..324 (column 0 is reserved and never activated).
package cover

import "sudokucore/internal/puzzle"

const (
	n = puzzle.Size

	// NumColumns is the size of the flat constraint-column space,
	// including the unused sentinel column 0.
	NumColumns = 4*n*n + 1
)

// Label identifies which (row, col, digit-1) candidate an emitted Row
// represents.
type Label struct {
	Row, Col, DigitIndex int
}

// Row is one emitted exact-cover subset: the four columns it activates,
// and the candidate it represents.
type Row struct {
	Cols  [4]int
	Label Label
}

// Encode returns one Row per (cell, candidate-digit) pair allowed by p's
// current clues: a clue cell emits only the row for its fixed digit, an
// empty cell emits one row per digit 1..9.
func Encode(p *puzzle.Puzzle) []Row {
	rows := make([]Row, 0, n*n*n)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			clue := p.Read(i, j)
			for k := 1; k <= n; k++ {
				if clue != 0 && int(clue) != k {
					continue
				}
				rows = append(rows, buildRow(i, j, k))
			}
		}
	}

	return rows
}

func buildRow(i, j, k int) Row {
	b := (i/puzzle.BoxDim)*puzzle.BoxDim + j/puzzle.BoxDim

	return Row{
		Cols: [4]int{
			1 + 0*n*n + i + j*n,     // cell occupied
			1 + 1*n*n + i + (k-1)*n, // row contains digit
			1 + 2*n*n + j + (k-1)*n, // column contains digit
			1 + 3*n*n + b + (k-1)*n, // box contains digit
		},
		Label: Label{Row: i, Col: j, DigitIndex: k - 1},
	}
}
