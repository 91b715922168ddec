package sudoku

import "context"

// FixpointSolver applies elimination passes until every cell is
// resolved or a pass changes nothing. It never guesses, so a stable
// state with open cells is a NeedsSearch failure, not proof of
// unsolvability.
type FixpointSolver struct{}

func (FixpointSolver) Solve(ctx context.Context, puzzle Grid) (Grid, error) {
	if err := puzzle.Validate(); err != nil {
		return puzzle, err
	}

	pg := NewPossibilityGrid(&puzzle)
	for {
		if err := ctx.Err(); err != nil {
			return pg.Extract(), err
		}

		changed := pg.Eliminate()
		if err := pg.Check(); err != nil {
			return pg.Extract(), err
		}
		if pg.Resolved() {
			return pg.Extract(), nil
		}
		if !changed {
			return pg.Extract(), ErrNeedsSearch
		}
	}
}
