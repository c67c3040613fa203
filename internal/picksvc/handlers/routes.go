package handlers

import (
	"github.com/go-chi/chi"
	"github.com/go-chi/jwtauth"
)

func (h *Handler) SetRoutes(r *chi.Mux) {
	r.Route("/v1", func(r chi.Router) {

		// public routes
		r.Post("/auth/signup", h.HandleSignUp)
		r.Post("/auth/signin", h.HandleSignIn)
		r.Get("/health", h.HealthHandler)
		r.Get("/games", h.HandleGetGames)
		r.Get("/games/{round}", h.HandleGetRound)
		r.Get("/leaderboard", h.HandleLeaderboard)

		// Secure routes
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(h.tokenAuth))
			r.Use(jwtauth.Authenticator)

			r.Get("/me", h.HandleMe)
			r.Put("/picks/{round}/{gameId}", h.HandleSubmitPick)

			r.Group(func(r chi.Router) {
				r.Use(h.RequireAdmin)

				r.Post("/admin/games/{round}", h.HandleAddGame)
				r.Put("/admin/games/{round}/{gameId}/winner", h.HandleSetWinner)
			})
		})
	})
}
