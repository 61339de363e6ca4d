package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fittrack/fittrack-api/internal/api/httpx"
	"github.com/fittrack/fittrack-api/internal/metrics"
	"github.com/fittrack/fittrack-api/internal/middleware"
	"github.com/fittrack/fittrack-api/internal/models"
	"github.com/fittrack/fittrack-api/internal/services"
)

type MeasurementHandler struct {
	measurements *services.MeasurementService
}

func NewMeasurementHandler(measurements *services.MeasurementService) *MeasurementHandler {
	return &MeasurementHandler{measurements: measurements}
}

func (h *MeasurementHandler) List(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.CurrentUser(r.Context())

	out, err := h.measurements.List(r.Context(), user.ID)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *MeasurementHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.CurrentUser(r.Context())

	m, err := h.measurements.Get(r.Context(), user, chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, m)
}

func (h *MeasurementHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.CurrentUser(r.Context())

	var m models.Measurement
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.measurements.Create(r.Context(), user, m)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	metrics.MeasurementsCreatedTotal.Inc()
	httpx.WriteJSON(w, http.StatusCreated, created)
}

func (h *MeasurementHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.CurrentUser(r.Context())

	var upd services.MeasurementUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.measurements.Update(r.Context(), user, chi.URLParam(r, "id"), upd)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, updated)
}

func (h *MeasurementHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.CurrentUser(r.Context())

	if err := h.measurements.Delete(r.Context(), user, chi.URLParam(r, "id")); err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteMessage(w, http.StatusOK, "Measurement removed")
}

func (h *MeasurementHandler) Stats(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.CurrentUser(r.Context())

	stats, err := h.measurements.Stats(r.Context(), user.ID)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, stats)
}
