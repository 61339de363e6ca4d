// Package handlers contains one HTTP handler type per resource. Handlers
// decode request bodies, pull the authenticated user off the context and
// delegate everything else to the services.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/fittrack/fittrack-api/internal/api/httpx"
	"github.com/fittrack/fittrack-api/internal/metrics"
	"github.com/fittrack/fittrack-api/internal/middleware"
	"github.com/fittrack/fittrack-api/internal/models"
	"github.com/fittrack/fittrack-api/internal/services"
)

type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// authUser is the identity subset returned from register/login.
type authUser struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

type authResponse struct {
	Token string   `json:"token"`
	User  authUser `json:"user"`
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := h.users.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	metrics.RegistrationsTotal.Inc()

	httpx.WriteJSON(w, http.StatusCreated, authResponse{
		Token: token,
		User:  authUser{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role},
	})
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		httpx.WriteError(w, err)
		return
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	httpx.WriteJSON(w, http.StatusOK, authResponse{
		Token: token,
		User:  authUser{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role},
	})
}

func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.CurrentUser(r.Context())
	httpx.WriteJSON(w, http.StatusOK, user)
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.CurrentUser(r.Context())

	var upd services.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.users.UpdateProfile(r.Context(), user.ID, upd)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, updated)
}

func (h *UserHandler) Stats(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.CurrentUser(r.Context())

	stats, err := h.users.Stats(r.Context(), user.ID)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, stats)
}
