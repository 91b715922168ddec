package app

import (
	"github.com/vancomm/sudoku-server/internal/handlers"
)

func (a *App) loadRoutes() {
	auth := handlers.NewAuth(a.logger, a.db, a.cookies)

	a.router.HandleFunc("GET /status", auth.Status)
	a.router.HandleFunc("POST /register", auth.Register)
	a.router.HandleFunc("POST /login", auth.Login)
	a.router.HandleFunc("POST /logout", auth.Logout)

	puzzle := handlers.NewPuzzleHandler(a.logger, a.db, a.ws)

	a.router.HandleFunc("POST /solve", puzzle.Solve)
	a.router.HandleFunc("POST /puzzles", puzzle.Create)
	a.router.HandleFunc("GET /puzzles", puzzle.List)
	a.router.HandleFunc("GET /puzzles/{id}", puzzle.Fetch)
	a.router.HandleFunc("/puzzles/{id}/connect", puzzle.ConnectWS)
}
