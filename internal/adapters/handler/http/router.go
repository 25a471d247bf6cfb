package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewHandler(ballotHandler *BallotHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("welcome"))
		})

		r.Route("/ballots", func(r chi.Router) {
			r.Post("/", ballotHandler.CreateBallot)
			r.Get("/{id}", ballotHandler.GetBallot)
			r.Post("/{id}/options", ballotHandler.AddOption)
			r.Post("/{id}/votes", ballotHandler.CastVote)
			r.Post("/{id}/reset", ballotHandler.ResetBallot)
			r.Get("/{id}/results", ballotHandler.GetResults)
		})
	})

	return r
}
