package puzzle

import (
	"fmt"

	"github.com/fatih/color"
)

const (
	borderTop    = "┌───┬───┬───╥───┬───┬───╥───┬───┬───┐"
	borderBot    = "└───┴───┴───╨───┴───┴───╨───┴───┴───┘"
	dividerMinor = "├───┼───┼───╫───┼───┼───╫───┼───┼───┤"
	dividerMajor = "╞═══╪═══╪═══╬═══╪═══╪═══╬═══╪═══╪═══╡"
	edgeMinor    = "│"
	edgeMajor    = "║"
)

var (
	givenColor = color.New(color.Bold, color.FgHiYellow)
	solvedColor = color.New(color.Bold, color.FgHiWhite)
	emptyColor  = color.New(color.FgHiBlack)
)

// Print renders the grid to stdout with box borders, highlighting the
// cells marked true in given (the puzzle's original clues) in a distinct
// color from cells the solver filled in.
func (p *Puzzle) Print(given [Size][Size]bool) {
	color.HiWhite(borderTop)
	for r := 0; r < Size; r++ {
		if r != 0 {
			if r%BoxDim == 0 {
				color.HiWhite(dividerMajor)
			} else {
				color.HiWhite(dividerMinor)
			}
		}
		printRow(p, r, given)
	}
	color.HiWhite(borderBot)
}

func printRow(p *Puzzle, row int, given [Size][Size]bool) {
	for c := 0; c < Size; c++ {
		if c != 0 && c%BoxDim == 0 {
			fmt.Print(color.HiWhiteString(edgeMajor))
		} else {
			fmt.Print(color.HiWhiteString(edgeMinor))
		}

		v := p.grid[row][c]
		switch {
		case v == 0:
			emptyColor.Print(" . ")
		case given[row][c]:
			givenColor.Printf(" %d ", v)
		default:
			solvedColor.Printf(" %d ", v)
		}
	}
	color.HiWhite(edgeMinor)
}
