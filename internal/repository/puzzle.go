package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// Puzzle is a stored solve attempt. Grids are kept in their compact
// 81-character text form; solution is null when the attempt failed.
type Puzzle struct {
	PuzzleId  int64
	PlayerId  *int64
	Algorithm string
	Puzzle    string
	Solution  *string
	Solved    bool
	SolveMs   float64
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

type CreatePuzzleParams struct {
	PlayerId  *int64
	Algorithm string
	Puzzle    string
	Solution  *string
	Solved    bool
	SolveMs   float64
}

func (q *Queries) CreatePuzzle(ctx context.Context, params CreatePuzzleParams) (*Puzzle, error) {
	args := pgx.NamedArgs{
		"algorithm": params.Algorithm,
		"puzzle":    params.Puzzle,
		"solution":  params.Solution,
		"solved":    params.Solved,
		"solve_ms":  params.SolveMs,
	}
	if params.PlayerId != nil {
		args["player_id"] = *params.PlayerId
	}

	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO puzzle (
			player_id, algorithm, puzzle, solution, solved, solve_ms
		)
		VALUES (
			@player_id, @algorithm, @puzzle, @solution, @solved, @solve_ms
		)
		RETURNING *;`,
		args,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Puzzle])
}

func (q *Queries) FetchPuzzle(ctx context.Context, puzzleId int64) (*Puzzle, error) {
	rows, _ := q.db.Query(
		ctx, "SELECT * FROM puzzle WHERE puzzle_id = $1", puzzleId,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Puzzle])
}

// PuzzleInfo is a listing row with the owner resolved to a username.
type PuzzleInfo struct {
	PuzzleId  int64   `json:"puzzle_id"`
	Username  *string `json:"username"`
	Algorithm string  `json:"algorithm"`
	Puzzle    string  `json:"puzzle"`
	Solved    bool    `json:"solved"`
	SolveMs   float64 `json:"solve_ms"`
}

type PuzzleFilter struct {
	Username  *string
	Algorithm *string
	Solved    *bool
}

func (f PuzzleFilter) WhereClause() (string, pgx.NamedArgs) {
	clauses := make([]string, 0)
	args := pgx.NamedArgs{}
	if f.Username != nil {
		clauses = append(clauses, "username = @username")
		args["username"] = *f.Username
	}
	if f.Algorithm != nil {
		clauses = append(clauses, "algorithm = @algorithm")
		args["algorithm"] = *f.Algorithm
	}
	if f.Solved != nil {
		clauses = append(clauses, "solved = @solved")
		args["solved"] = *f.Solved
	}
	return strings.Join(clauses, " AND "), args
}

func (q *Queries) ListPuzzles(
	ctx context.Context, filter PuzzleFilter,
) ([]PuzzleInfo, error) {
	query := `
	SELECT
		puzzle_id,
		username,
		algorithm,
		puzzle,
		solved,
		solve_ms
	FROM puzzle
	LEFT JOIN player USING (player_id)`

	where, args := filter.WhereClause()
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY puzzle.created_at DESC"

	rows, _ := q.db.Query(ctx, query, args)
	return pgx.CollectRows(rows, pgx.RowToStructByName[PuzzleInfo])
}
