// Command sudoku reads a puzzle from stdin and solves it with the chosen
// algorithm, printing the result with clues and solved cells in distinct
// colors when attached to a terminal.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"sudokucore/internal/logx"
	"sudokucore/internal/puzzle"
	"sudokucore/internal/solving"
)

func main() {
	algo := flag.String("algo", "dlx", "solving algorithm: dfs or dlx")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	logx.SetVerbose(*verbose)

	if isStdinTTY() {
		fmt.Println("Enter initial board as 9 lines of 9 characters.")
		fmt.Println("Use any character other than the digits 1-9 for empty cells.")
		fmt.Println("(Ctrl+D to finish on Unix/Linux, Ctrl+Z then Enter on Windows):")
	}

	p := puzzle.Read(os.Stdin)

	var given [puzzle.Size][puzzle.Size]bool
	for r := 0; r < puzzle.Size; r++ {
		for c := 0; c < puzzle.Size; c++ {
			given[r][c] = p.Read(r, c) != 0
		}
	}

	s, err := solving.New(p, *algo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	solved := s.Solve()

	if solved {
		color.HiWhite("\nSolution:")
	} else {
		color.HiWhite("\nNo solution found. Partial state:")
	}
	p.Print(given)

	fmt.Printf("\nalgorithm=%s visited_nodes=%d elapsed_ms=%d\n", *algo, s.TotalVisitedNodes(), s.TotalCPUTimeMS())
}

func isStdinTTY() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
