package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vancomm/sudoku-server/internal/config"
	"github.com/vancomm/sudoku-server/internal/middleware"
	"github.com/vancomm/sudoku-server/internal/repository"
	"github.com/vancomm/sudoku-server/internal/sudoku"
)

type PuzzleHandler struct {
	logger  *slog.Logger
	repo    *repository.Queries
	ws      *config.WebSocket
	timeout time.Duration
}

func NewPuzzleHandler(
	logger *slog.Logger,
	db *pgxpool.Pool,
	ws *config.WebSocket,
) *PuzzleHandler {
	return &PuzzleHandler{
		logger:  logger,
		repo:    repository.New(db),
		ws:      ws,
		timeout: 30 * time.Second,
	}
}

// solveResult is the outcome of one solve attempt, regardless of how it
// ended.
type solveResult struct {
	algorithm sudoku.Algorithm
	puzzle    sudoku.Grid
	output    sudoku.Grid
	solved    bool
	solveMs   float64
	solveErr  error
}

func (res solveResult) DTO() *SolveResultDTO {
	dto := &SolveResultDTO{
		Algorithm: res.algorithm.String(),
		Solved:    res.solved,
		Puzzle:    res.puzzle.Compact(),
		Output:    res.output.Compact(),
		SolveMs:   res.solveMs,
	}
	if res.solveErr != nil {
		dto.Error = res.solveErr.Error()
	}
	return dto
}

// solve runs one attempt. A non-nil error means the request was bad or
// the solver broke; puzzle-property failures (no solution, needs
// search, contradiction) land in solveResult.solveErr instead.
func (h PuzzleHandler) solve(
	ctx context.Context, opts SolveOptionsDTO, puzzle sudoku.Grid,
) (solveResult, error) {
	algorithm, err := sudoku.ParseAlgorithm(opts.Algorithm)
	if err != nil {
		return solveResult{}, err
	}
	solver, err := sudoku.New(algorithm)
	if err != nil {
		return solveResult{}, err
	}

	timeout := h.timeout
	if opts.TimeoutMs > 0 && time.Duration(opts.TimeoutMs)*time.Millisecond < timeout {
		timeout = time.Duration(opts.TimeoutMs) * time.Millisecond
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	out, err := solver.Solve(ctx, puzzle)
	res := solveResult{
		algorithm: algorithm,
		puzzle:    puzzle,
		output:    out,
		solved:    err == nil,
		solveMs:   float64(time.Since(start)) / float64(time.Millisecond),
	}
	switch {
	case err == nil:
	case errors.Is(err, sudoku.ErrNoSolution),
		errors.Is(err, sudoku.ErrNeedsSearch),
		errors.Is(err, sudoku.ErrContradiction),
		errors.Is(err, sudoku.ErrInvalidPuzzle),
		errors.Is(err, context.DeadlineExceeded):
		res.solveErr = err
	default:
		return res, err
	}
	return res, nil
}

func (h PuzzleHandler) Solve(w http.ResponseWriter, r *http.Request) {
	opts, err := ParseSolveOptions(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	puzzle, err := readPuzzle(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	res, err := h.solve(r.Context(), opts, puzzle)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	if errors.Is(res.solveErr, sudoku.ErrInvalidPuzzle) {
		w.WriteHeader(http.StatusBadRequest)
	} else if !res.solved {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}
	sendJSONOrLog(w, h.logger, res.DTO())
}

func (h PuzzleHandler) Create(w http.ResponseWriter, r *http.Request) {
	opts, err := ParseSolveOptions(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	puzzle, err := readPuzzle(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	res, err := h.solve(r.Context(), opts, puzzle)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	if errors.Is(res.solveErr, sudoku.ErrInvalidPuzzle) {
		// malformed puzzles are rejected, not stored
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, res.DTO())
		return
	}

	params := repository.CreatePuzzleParams{
		Algorithm: res.algorithm.String(),
		Puzzle:    res.puzzle.Compact(),
		Solved:    res.solved,
		SolveMs:   res.solveMs,
	}
	var username *string
	if claims, ok := middleware.PlayerClaims(r.Context()); ok {
		params.PlayerId = &claims.PlayerId
		username = &claims.Username
	}
	if res.solved {
		solution := res.output.Compact()
		params.Solution = &solution
	}

	stored, err := h.repo.CreatePuzzle(r.Context(), params)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to store puzzle", "error", err)
		return
	}

	sendJSONOrLog(w, h.logger, NewPuzzleDTO(stored, username))
}

func (h PuzzleHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	puzzleId, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	stored, err := h.repo.FetchPuzzle(r.Context(), puzzleId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to fetch puzzle from db", "error", err)
		return
	}

	sendJSONOrLog(w, h.logger, NewPuzzleDTO(stored, nil))
}

func (h PuzzleHandler) List(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseListPuzzlesDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	puzzles, err := h.repo.ListPuzzles(r.Context(), repository.PuzzleFilter{
		Username:  dto.Username,
		Algorithm: dto.Algorithm,
		Solved:    dto.Solved,
	})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to list puzzles", "error", err)
		return
	}

	sendJSONOrLog(w, h.logger, puzzles)
}
