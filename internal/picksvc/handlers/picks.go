package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/picksleague/picks-services/internal/picksvc/models"
	"github.com/picksleague/picks-services/internal/picksvc/service"
	log "github.com/sirupsen/logrus"
)

// HandleSubmitPick records the authenticated user's pick for one game. The
// body is either a bare team name string or a {team, points} object for the
// confidence round; partial confidence submissions merge server-side.
func (h *Handler) HandleSubmitPick(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		h.CreateResponse(w, Response{Code: http.StatusUnauthorized, Error: "unauthorized"})
		return
	}

	round := chi.URLParam(r, "round")
	gameID := chi.URLParam(r, "gameId")

	var pick models.Pick
	if err := json.NewDecoder(r.Body).Decode(&pick); err != nil {
		h.CreateResponse(w, Response{Code: http.StatusBadRequest, Error: "invalid request body"})
		return
	}

	err = h.pickService.SubmitPick(r.Context(), userID, round, gameID, pick)
	switch {
	case err == nil:
		h.CreateResponse(w, Response{Code: http.StatusOK, Message: "pick saved"})
	case errors.Is(err, service.ErrGameLocked), errors.Is(err, service.ErrPointsTaken):
		h.CreateResponse(w, Response{Code: http.StatusConflict, Error: err.Error()})
	case errors.Is(err, service.ErrGameNotFound):
		h.CreateResponse(w, Response{Code: http.StatusNotFound, Error: err.Error()})
	case errors.Is(err, service.ErrUnknownRound),
		errors.Is(err, service.ErrEmptyPick),
		errors.Is(err, service.ErrPointsRange):
		h.CreateResponse(w, Response{Code: http.StatusBadRequest, Error: err.Error()})
	default:
		log.Errorf("Error saving pick for user %s (%s/%s): %s", userID, round, gameID, err)
		h.CreateResponse(w, Response{Code: http.StatusInternalServerError, Error: "could not save pick, please try again"})
	}
}
