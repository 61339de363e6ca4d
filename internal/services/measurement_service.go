package services

import (
	"context"
	"errors"
	"time"

	"github.com/fittrack/fittrack-api/internal/apperr"
	"github.com/fittrack/fittrack-api/internal/models"
	"github.com/fittrack/fittrack-api/internal/repository"
)

type MeasurementService struct {
	measurements repository.Measurements
}

func NewMeasurementService(measurements repository.Measurements) *MeasurementService {
	return &MeasurementService{measurements: measurements}
}

func (s *MeasurementService) List(ctx context.Context, userID string) ([]models.Measurement, error) {
	out, err := s.measurements.List(ctx, userID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return out, nil
}

func (s *MeasurementService) Get(ctx context.Context, requester models.User, id string) (models.Measurement, error) {
	m, err := s.measurements.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return models.Measurement{}, apperr.NotFound("Measurement not found")
	}
	if err != nil {
		return models.Measurement{}, apperr.Internal(err)
	}
	if !CanAccess(m.UserID, requester) {
		return models.Measurement{}, apperr.Forbidden("You are not authorized to access this measurement")
	}
	return m, nil
}

func (s *MeasurementService) Create(ctx context.Context, owner models.User, m models.Measurement) (models.Measurement, error) {
	m.UserID = owner.ID
	if m.Date.IsZero() {
		m.Date = time.Now()
	}
	created, err := s.measurements.Create(ctx, m)
	if err != nil {
		return models.Measurement{}, apperr.Internal(err)
	}
	return created, nil
}

// MeasurementUpdate carries the mutable fields; nil leaves a field
// unchanged, a present zero is stored.
type MeasurementUpdate struct {
	Date      *time.Time `json:"date"`
	Weight    *float64   `json:"weight"`
	BodyFat   *float64   `json:"bodyFat"`
	Chest     *float64   `json:"chest"`
	Waist     *float64   `json:"waist"`
	Hips      *float64   `json:"hips"`
	Arms      *float64   `json:"arms"`
	Thighs    *float64   `json:"thighs"`
	Calves    *float64   `json:"calves"`
	Shoulders *float64   `json:"shoulders"`
	Notes     *string    `json:"notes"`
}

func (s *MeasurementService) Update(ctx context.Context, requester models.User, id string, upd MeasurementUpdate) (models.Measurement, error) {
	m, err := s.Get(ctx, requester, id)
	if err != nil {
		return models.Measurement{}, err
	}

	if upd.Date != nil {
		m.Date = *upd.Date
	}
	if upd.Weight != nil {
		m.Weight = upd.Weight
	}
	if upd.BodyFat != nil {
		m.BodyFat = upd.BodyFat
	}
	if upd.Chest != nil {
		m.Chest = upd.Chest
	}
	if upd.Waist != nil {
		m.Waist = upd.Waist
	}
	if upd.Hips != nil {
		m.Hips = upd.Hips
	}
	if upd.Arms != nil {
		m.Arms = upd.Arms
	}
	if upd.Thighs != nil {
		m.Thighs = upd.Thighs
	}
	if upd.Calves != nil {
		m.Calves = upd.Calves
	}
	if upd.Shoulders != nil {
		m.Shoulders = upd.Shoulders
	}
	if upd.Notes != nil {
		m.Notes = *upd.Notes
	}

	saved, err := s.measurements.Update(ctx, m)
	if err != nil {
		return models.Measurement{}, apperr.Internal(err)
	}
	return saved, nil
}

func (s *MeasurementService) Delete(ctx context.Context, requester models.User, id string) error {
	if _, err := s.Get(ctx, requester, id); err != nil {
		return err
	}
	if err := s.measurements.Delete(ctx, id); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

type MeasurementStats struct {
	Latest  *models.Measurement        `json:"latest"`
	Changes *models.MeasurementChanges `json:"changes"`
}

// Stats reports the user's latest measurement and the per-metric delta
// between latest and earliest. Changes is null when no records exist.
func (s *MeasurementService) Stats(ctx context.Context, userID string) (MeasurementStats, error) {
	latest, err := s.measurements.Latest(ctx, userID)
	if err != nil {
		return MeasurementStats{}, apperr.Internal(err)
	}
	earliest, err := s.measurements.Earliest(ctx, userID)
	if err != nil {
		return MeasurementStats{}, apperr.Internal(err)
	}
	return MeasurementStats{Latest: latest, Changes: models.Changes(latest, earliest)}, nil
}
