package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/jwtauth"
	"github.com/picksleague/picks-services/internal/picksvc/service"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	tokenAuth *jwtauth.JWTAuth

	userService *service.UserService
	gameService *service.GameService
	pickService *service.PickService
}

func NewHandler(userService *service.UserService, gameService *service.GameService, pickService *service.PickService) *Handler {
	return &Handler{
		userService: userService,
		gameService: gameService,
		pickService: pickService,
	}
}

type Response struct {
	Message string      `json:"message"`
	Code    int         `json:"code"`
	Data    interface{} `json:"data"`
	Error   string      `json:"error,omitempty"`
}

func (rs *Handler) CreateResponse(w http.ResponseWriter, rsp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(rsp.Code)

	json.NewEncoder(w).Encode(rsp)
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	rsp := Response{
		Message: "picks service is running at port " + os.Getenv("PICK_SERVICE_PORT"),
		Code:    200,
		Data:    nil,
	}
	json.NewEncoder(w).Encode(rsp)
}

func (h *Handler) InitAuth() {
	var jwtKey = os.Getenv("JWT_SECRET_KEY")
	h.tokenAuth = jwtauth.New("HS256", []byte(jwtKey), nil)
}

// TokenAuth exposes the verifier for route middleware.
func (h *Handler) TokenAuth() *jwtauth.JWTAuth {
	return h.tokenAuth
}

// issueToken mints a 7-day session token for an account.
func (h *Handler) issueToken(userID string) (string, error) {
	expirationTime := time.Now().Add(7 * 24 * time.Hour).Unix()

	_, tokenString, err := h.tokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"exp":     expirationTime,
	})
	return tokenString, err
}

// currentUserID extracts the account id from the verified JWT.
func currentUserID(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", err
	}

	id, ok := claims["user_id"].(string)
	if !ok || id == "" {
		return "", fmt.Errorf("token has no user_id claim")
	}
	return id, nil
}

// RequireAdmin gates admin routes on the user's role attribute.
func (h *Handler) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := currentUserID(r)
		if err != nil {
			h.CreateResponse(w, Response{Code: http.StatusUnauthorized, Error: "unauthorized"})
			return
		}

		user, err := h.userService.GetUser(r.Context(), userID)
		if err != nil {
			log.Errorf("Error loading user %s for admin check: %s", userID, err)
			h.CreateResponse(w, Response{Code: http.StatusInternalServerError, Error: "could not verify permissions"})
			return
		}
		if user == nil || !user.IsAdmin() {
			h.CreateResponse(w, Response{Code: http.StatusForbidden, Error: "admin access required"})
			return
		}

		next.ServeHTTP(w, r)
	})
}
