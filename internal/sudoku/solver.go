// Package sudoku implements a 9x9 digit-placement puzzle solver built
// around candidate elimination and backtracking search.
package sudoku

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidPuzzle flags malformed input: a cell outside 0-9 or a
	// duplicate clue in a row, column or block.
	ErrInvalidPuzzle = errors.New("puzzle violates sudoku constraints")
	// ErrContradiction flags a puzzle proven unsatisfiable during
	// elimination, before any search takes place.
	ErrContradiction = errors.New("elimination reached a contradiction")
	// ErrNeedsSearch means elimination alone reached a stable state
	// with open cells remaining. The puzzle is not necessarily
	// unsolvable; it needs backtracking.
	ErrNeedsSearch = errors.New("puzzle cannot be solved by elimination alone")
	// ErrNoSolution means an exhaustive search found no completion.
	ErrNoSolution = errors.New("puzzle has no solution")
)

// AssertionError reports a broken internal invariant, a bug in the
// solver rather than a property of the puzzle.
type AssertionError struct {
	message string
}

func (e AssertionError) Error() string {
	return e.message
}

// Solver computes a completed grid for a puzzle, or reports why it
// cannot. On failure the returned grid carries whatever cells were
// resolved before the attempt gave up, with the rest left blank.
type Solver interface {
	Solve(ctx context.Context, puzzle Grid) (Grid, error)
}

// Algorithm selects a solving strategy.
type Algorithm int

const (
	// Backtracking prunes once via elimination, then searches
	// exhaustively. Complete: it finds a solution whenever one exists.
	Backtracking Algorithm = iota
	// Fixpoint applies pure elimination until stable. Incomplete, but
	// settles easier puzzles without any guessing.
	Fixpoint
)

func (a Algorithm) String() string {
	switch a {
	case Backtracking:
		return "backtracking"
	case Fixpoint:
		return "fixpoint"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(s) {
	case "", "backtracking":
		return Backtracking, nil
	case "fixpoint":
		return Fixpoint, nil
	default:
		return 0, fmt.Errorf("unknown algorithm %q", s)
	}
}

// New returns the solver implementing the given algorithm.
func New(a Algorithm) (Solver, error) {
	switch a {
	case Backtracking:
		return BacktrackingSolver{}, nil
	case Fixpoint:
		return FixpointSolver{}, nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q", a)
	}
}
