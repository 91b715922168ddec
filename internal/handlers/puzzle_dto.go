package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/schema"

	"github.com/vancomm/sudoku-server/internal/repository"
	"github.com/vancomm/sudoku-server/internal/sudoku"
)

type SolveOptionsDTO struct {
	Algorithm string `schema:"algorithm"`
	TimeoutMs int    `schema:"timeout_ms"`
}

func ParseSolveOptions(src map[string][]string) (SolveOptionsDTO, error) {
	var dto SolveOptionsDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	if err != nil {
		return dto, err
	}
	if dto.TimeoutMs < 0 {
		return dto, fmt.Errorf("timeout_ms must not be negative")
	}
	return dto, err
}

type ListPuzzlesDTO struct {
	Username  *string `schema:"username"`
	Algorithm *string `schema:"algorithm"`
	Solved    *bool   `schema:"solved"`
}

func ParseListPuzzlesDTO(src map[string][]string) (ListPuzzlesDTO, error) {
	var dto ListPuzzlesDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

// readPuzzle reads a grid in its textual form from a request body.
func readPuzzle(r *http.Request) (sudoku.Grid, error) {
	body, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, 4096))
	if err != nil {
		return sudoku.Grid{}, fmt.Errorf("unable to read request body: %w", err)
	}
	return sudoku.Parse(string(body))
}

type SolveResultDTO struct {
	Algorithm string  `json:"algorithm"`
	Solved    bool    `json:"solved"`
	Puzzle    string  `json:"puzzle"`
	Output    string  `json:"output"`
	SolveMs   float64 `json:"solve_ms"`
	Error     string  `json:"error,omitempty"`
}

type PuzzleDTO struct {
	PuzzleId  string  `json:"puzzle_id"`
	Username  *string `json:"username,omitempty"`
	Algorithm string  `json:"algorithm"`
	Puzzle    string  `json:"puzzle"`
	Solution  *string `json:"solution,omitempty"`
	Solved    bool    `json:"solved"`
	SolveMs   float64 `json:"solve_ms"`
	CreatedAt int64   `json:"created_at"`
}

func NewPuzzleDTO(p *repository.Puzzle, username *string) *PuzzleDTO {
	return &PuzzleDTO{
		PuzzleId:  strconv.FormatInt(p.PuzzleId, 10),
		Username:  username,
		Algorithm: p.Algorithm,
		Puzzle:    p.Puzzle,
		Solution:  p.Solution,
		Solved:    p.Solved,
		SolveMs:   p.SolveMs,
		CreatedAt: p.CreatedAt.Time.UnixMilli(),
	}
}
