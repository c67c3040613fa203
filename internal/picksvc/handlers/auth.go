package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/picksleague/picks-services/internal/picksvc/models"
	log "github.com/sirupsen/logrus"
)

type credentials struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName,omitempty"`
}

type session struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// HandleSignUp creates an account and its user document and returns a
// session token. Auth failures surface their message as-is.
func (h *Handler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		h.CreateResponse(w, Response{Code: http.StatusBadRequest, Error: "invalid request body"})
		return
	}

	user, err := h.userService.SignUp(r.Context(), creds.Email, creds.Password, creds.DisplayName)
	if err != nil {
		h.CreateResponse(w, Response{Code: http.StatusBadRequest, Error: err.Error()})
		return
	}

	token, err := h.issueToken(user.ID)
	if err != nil {
		log.Errorf("Error issuing token for %s: %s", user.Email, err)
		h.CreateResponse(w, Response{Code: http.StatusInternalServerError, Error: "could not create session"})
		return
	}

	h.CreateResponse(w, Response{Code: http.StatusCreated, Message: "account created", Data: session{Token: token, User: user}})
}

// HandleSignIn verifies credentials, stamps lastLogin, and returns a session
// token.
func (h *Handler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		h.CreateResponse(w, Response{Code: http.StatusBadRequest, Error: "invalid request body"})
		return
	}

	user, err := h.userService.SignIn(r.Context(), creds.Email, creds.Password)
	if err != nil {
		h.CreateResponse(w, Response{Code: http.StatusUnauthorized, Error: err.Error()})
		return
	}

	token, err := h.issueToken(user.ID)
	if err != nil {
		log.Errorf("Error issuing token for %s: %s", user.Email, err)
		h.CreateResponse(w, Response{Code: http.StatusInternalServerError, Error: "could not create session"})
		return
	}

	h.CreateResponse(w, Response{Code: http.StatusOK, Message: "signed in", Data: session{Token: token, User: user}})
}

// HandleMe returns the authenticated user's document, picks included.
func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		h.CreateResponse(w, Response{Code: http.StatusUnauthorized, Error: "unauthorized"})
		return
	}

	user, err := h.userService.GetUser(r.Context(), userID)
	if err != nil {
		log.Errorf("Error loading user %s: %s", userID, err)
		h.CreateResponse(w, Response{Code: http.StatusInternalServerError, Error: "could not load user"})
		return
	}
	if user == nil {
		h.CreateResponse(w, Response{Code: http.StatusNotFound, Error: "user not found"})
		return
	}

	h.CreateResponse(w, Response{Code: http.StatusOK, Data: user})
}
