package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fittrack/fittrack-api/internal/api/httpx"
	"github.com/fittrack/fittrack-api/internal/metrics"
	"github.com/fittrack/fittrack-api/internal/middleware"
	"github.com/fittrack/fittrack-api/internal/models"
	"github.com/fittrack/fittrack-api/internal/services"
)

type WorkoutHandler struct {
	workouts *services.WorkoutService
}

func NewWorkoutHandler(workouts *services.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workouts: workouts}
}

func (h *WorkoutHandler) List(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.CurrentUser(r.Context())

	out, err := h.workouts.List(r.Context(), user.ID)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *WorkoutHandler) Recent(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.CurrentUser(r.Context())

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	out, err := h.workouts.Recent(r.Context(), user.ID, limit)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *WorkoutHandler) Templates(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.CurrentUser(r.Context())

	out, err := h.workouts.Templates(r.Context(), user.ID)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *WorkoutHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.CurrentUser(r.Context())

	workout, err := h.workouts.Get(r.Context(), user, chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, workout)
}

func (h *WorkoutHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.CurrentUser(r.Context())

	var workout models.Workout
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.workouts.Create(r.Context(), user, workout)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	metrics.WorkoutsCreatedTotal.Inc()
	httpx.WriteJSON(w, http.StatusCreated, created)
}

func (h *WorkoutHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.CurrentUser(r.Context())

	var upd services.WorkoutUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.workouts.Update(r.Context(), user, chi.URLParam(r, "id"), upd)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, updated)
}

func (h *WorkoutHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.CurrentUser(r.Context())

	if err := h.workouts.Delete(r.Context(), user, chi.URLParam(r, "id")); err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteMessage(w, http.StatusOK, "Workout removed")
}

func (h *WorkoutHandler) FromTemplate(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.CurrentUser(r.Context())

	created, err := h.workouts.FromTemplate(r.Context(), user, chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	metrics.WorkoutsCreatedTotal.Inc()
	httpx.WriteJSON(w, http.StatusCreated, created)
}
