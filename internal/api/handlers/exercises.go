package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fittrack/fittrack-api/internal/api/httpx"
	"github.com/fittrack/fittrack-api/internal/middleware"
	"github.com/fittrack/fittrack-api/internal/models"
	"github.com/fittrack/fittrack-api/internal/services"
)

type ExerciseHandler struct {
	exercises *services.ExerciseService
}

func NewExerciseHandler(exercises *services.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exercises: exercises}
}

func (h *ExerciseHandler) List(w http.ResponseWriter, r *http.Request) {
	category := models.Category(r.URL.Query().Get("category"))
	search := r.URL.Query().Get("search")

	out, err := h.exercises.List(r.Context(), category, search)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *ExerciseHandler) Get(w http.ResponseWriter, r *http.Request) {
	e, err := h.exercises.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, e)
}

func (h *ExerciseHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.CurrentUser(r.Context())

	var e models.Exercise
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.exercises.Create(r.Context(), user, e)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, created)
}

func (h *ExerciseHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.CurrentUser(r.Context())

	var upd services.ExerciseUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.exercises.Update(r.Context(), user, chi.URLParam(r, "id"), upd)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, updated)
}

func (h *ExerciseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.CurrentUser(r.Context())

	if err := h.exercises.Delete(r.Context(), user, chi.URLParam(r, "id")); err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteMessage(w, http.StatusOK, "Exercise removed")
}
