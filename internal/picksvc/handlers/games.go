package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/picksleague/picks-services/internal/picksvc/service"
	log "github.com/sirupsen/logrus"
)

// HandleGetGames returns the full registry, keyed by round.
func (h *Handler) HandleGetGames(w http.ResponseWriter, r *http.Request) {
	registry, err := h.gameService.GetRegistry(r.Context())
	if err != nil {
		log.Errorf("Error loading game registry: %s", err)
		h.CreateResponse(w, Response{Code: http.StatusInternalServerError, Error: "could not load games"})
		return
	}

	h.CreateResponse(w, Response{Code: http.StatusOK, Data: registry})
}

// HandleGetRound returns one round's games in insertion order.
func (h *Handler) HandleGetRound(w http.ResponseWriter, r *http.Request) {
	round := chi.URLParam(r, "round")

	games, err := h.gameService.GetRound(r.Context(), round)
	if err != nil {
		if errors.Is(err, service.ErrUnknownRound) {
			h.CreateResponse(w, Response{Code: http.StatusNotFound, Error: "unknown round"})
			return
		}
		log.Errorf("Error loading round %s: %s", round, err)
		h.CreateResponse(w, Response{Code: http.StatusInternalServerError, Error: "could not load games"})
		return
	}

	h.CreateResponse(w, Response{Code: http.StatusOK, Data: games})
}

// HandleAddGame appends a game to a round (admin only).
func (h *Handler) HandleAddGame(w http.ResponseWriter, r *http.Request) {
	round := chi.URLParam(r, "round")

	var in service.NewGameInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.CreateResponse(w, Response{Code: http.StatusBadRequest, Error: "invalid request body"})
		return
	}

	game, err := h.gameService.AddGame(r.Context(), round, in)
	if err != nil {
		if errors.Is(err, service.ErrUnknownRound) {
			h.CreateResponse(w, Response{Code: http.StatusNotFound, Error: "unknown round"})
			return
		}
		log.Errorf("Error adding game to round %s: %s", round, err)
		h.CreateResponse(w, Response{Code: http.StatusBadRequest, Error: err.Error()})
		return
	}

	h.CreateResponse(w, Response{Code: http.StatusCreated, Message: "game added", Data: game})
}

type winnerRequest struct {
	Winner string `json:"winner"`
}

// HandleSetWinner records a concluded game's winner (admin only).
func (h *Handler) HandleSetWinner(w http.ResponseWriter, r *http.Request) {
	round := chi.URLParam(r, "round")

	gameID, err := strconv.ParseInt(chi.URLParam(r, "gameId"), 10, 64)
	if err != nil {
		h.CreateResponse(w, Response{Code: http.StatusBadRequest, Error: "invalid game id"})
		return
	}

	var req winnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.CreateResponse(w, Response{Code: http.StatusBadRequest, Error: "invalid request body"})
		return
	}

	if err := h.gameService.SetWinner(r.Context(), round, gameID, req.Winner); err != nil {
		if errors.Is(err, service.ErrUnknownRound) {
			h.CreateResponse(w, Response{Code: http.StatusNotFound, Error: "unknown round"})
			return
		}
		log.Errorf("Error setting winner for game %d in round %s: %s", gameID, round, err)
		h.CreateResponse(w, Response{Code: http.StatusBadRequest, Error: err.Error()})
		return
	}

	h.CreateResponse(w, Response{Code: http.StatusOK, Message: "winner recorded"})
}
