package handlers

import (
	"net/http"

	"github.com/picksleague/picks-services/internal/picksvc/scoring"
	log "github.com/sirupsen/logrus"
)

// HandleLeaderboard ranks every user by points, highest first. The optional
// category query parameter narrows scoring to "standard" or "nfl" rounds.
func (h *Handler) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	category := scoring.ParseCategory(r.URL.Query().Get("category"))

	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		log.Errorf("Error listing users for leaderboard: %s", err)
		h.CreateResponse(w, Response{Code: http.StatusInternalServerError, Error: "could not load leaderboard"})
		return
	}

	registry, err := h.gameService.GetRegistry(r.Context())
	if err != nil {
		log.Errorf("Error loading registry for leaderboard: %s", err)
		h.CreateResponse(w, Response{Code: http.StatusInternalServerError, Error: "could not load leaderboard"})
		return
	}

	h.CreateResponse(w, Response{Code: http.StatusOK, Data: scoring.BuildLeaderboard(users, registry, category)})
}
