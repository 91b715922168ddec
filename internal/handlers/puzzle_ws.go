package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/jackc/pgx/v5"

	"github.com/vancomm/sudoku-server/internal/sudoku"
)

// stepSession is a step-through solve over one websocket connection:
// the client drives the engine one elimination pass at a time and can
// hand the rest over to the full search. State lives only for the
// lifetime of the connection.
type stepSession struct {
	puzzle sudoku.Grid
	pg     *sudoku.PossibilityGrid
	passes int
}

func newStepSession(puzzle sudoku.Grid) *stepSession {
	return &stepSession{
		puzzle: puzzle,
		pg:     sudoku.NewPossibilityGrid(&puzzle),
	}
}

type stepStateDTO struct {
	Grid       string   `json:"grid"`
	Candidates []string `json:"candidates"`
	Passes     int      `json:"passes"`
	Changed    *bool    `json:"changed,omitempty"`
	Resolved   bool     `json:"resolved"`
	Error      string   `json:"error,omitempty"`
}

func (s *stepSession) state(changed *bool, err error) *stepStateDTO {
	candidates := make([]string, sudoku.CellCount)
	for i := range sudoku.CellCount {
		var b strings.Builder
		for _, v := range (*s.pg)[i].Digits() {
			b.WriteByte('0' + v)
		}
		candidates[i] = b.String()
	}
	dto := &stepStateDTO{
		Grid:       s.pg.Extract().Compact(),
		Candidates: candidates,
		Passes:     s.passes,
		Changed:    changed,
		Resolved:   s.pg.Resolved(),
	}
	if err != nil {
		dto.Error = err.Error()
	}
	return dto
}

// Commands: "e" runs one elimination pass, "b" runs the backtracking
// search to the end, "r" resets to the original puzzle, "g" reports
// the current state.
func (s *stepSession) execute(ctx context.Context, c string) (*stepStateDTO, error) {
	switch c {
	case "e":
		changed := s.pg.Eliminate()
		s.passes++
		return s.state(&changed, s.pg.Check()), nil
	case "b":
		out, err := sudoku.BacktrackingSolver{}.Solve(ctx, s.puzzle)
		if err != nil && !errors.Is(err, sudoku.ErrNoSolution) &&
			!errors.Is(err, sudoku.ErrContradiction) {
			return nil, err
		}
		s.pg = sudoku.NewPossibilityGrid(&out)
		return s.state(nil, err), nil
	case "r":
		s.pg = sudoku.NewPossibilityGrid(&s.puzzle)
		s.passes = 0
		return s.state(nil, nil), nil
	case "g":
		return s.state(nil, s.pg.Check()), nil
	}
	return nil, errors.New("unknown command")
}

func (h PuzzleHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
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

	puzzle, err := sudoku.Parse(stored.Puzzle)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("db returned invalid puzzle text", "error", err)
		return
	}

	c, err := h.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("upgrade failed", "error", err)
		return
	}
	defer c.Close()

	session := newStepSession(puzzle)
	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				h.logger.Warn("ws read failed", "error", err)
			}
			break
		}
		if mt != websocket.TextMessage {
			break
		}

		var state *stepStateDTO
		for _, command := range strings.Split(strings.TrimSpace(string(message)), "\n") {
			state, err = session.execute(r.Context(), command)
			if err != nil {
				h.logger.Error("ws command failed", "command", command, "error", err)
				return
			}
		}
		if state == nil {
			continue
		}
		if err := c.WriteJSON(state); err != nil {
			h.logger.Error("ws write failed", "error", err)
			break
		}
	}
}
