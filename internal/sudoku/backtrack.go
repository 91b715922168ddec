package sudoku

import (
	"context"
	"errors"
)

// BacktrackingSolver runs one elimination pass to prune the candidate
// sets, then searches exhaustively over the remaining open cells.
type BacktrackingSolver struct{}

func (BacktrackingSolver) Solve(ctx context.Context, puzzle Grid) (out Grid, err error) {
	defer func() {
		var ae AssertionError
		if r := recover(); r != nil {
			if e, ok := r.(error); ok && errors.As(e, &ae) {
				out, err = puzzle, ae
			} else {
				panic(r)
			}
		}
	}()

	if err := puzzle.Validate(); err != nil {
		return puzzle, err
	}

	pg := NewPossibilityGrid(&puzzle)
	pg.Eliminate()
	if err := pg.Check(); err != nil {
		return pg.Extract(), err
	}

	out = pg.Extract()
	if backtrack(ctx, &out, pg) {
		return out, nil
	}
	// the search undoes every tentative assignment on the way out, so
	// out is back to the post-elimination extraction
	if err := ctx.Err(); err != nil {
		return out, err
	}
	return out, ErrNoSolution
}

// backtrack fills the first blank cell in row-major order, trying its
// pruned candidates in ascending order. Safety is a direct scan of the
// output grid, not of the candidate sets: the grid holds the tentative
// assignments the sets know nothing about. Recursion depth is bounded
// by the cell count.
func backtrack(ctx context.Context, g *Grid, pg *PossibilityGrid) bool {
	if ctx.Err() != nil {
		return false
	}

	i, ok := g.FirstEmpty()
	if !ok {
		return true
	}

	if pg[i].Count() <= 1 {
		// a blank cell with a lone candidate would have been filled in
		// by extraction already
		panic(AssertionError{"open cell reached with a single candidate"})
	}

	for _, v := range pg[i].Digits() {
		if !g.safe(i, v) {
			continue
		}
		g[i] = v
		if backtrack(ctx, g, pg) {
			return true
		}
		g[i] = 0
	}

	return false
}
