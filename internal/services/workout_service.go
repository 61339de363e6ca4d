package services

import (
	"context"
	"errors"
	"time"

	"github.com/fittrack/fittrack-api/internal/apperr"
	"github.com/fittrack/fittrack-api/internal/models"
	"github.com/fittrack/fittrack-api/internal/repository"
)

type WorkoutService struct {
	workouts repository.Workouts
}

func NewWorkoutService(workouts repository.Workouts) *WorkoutService {
	return &WorkoutService{workouts: workouts}
}

func (s *WorkoutService) List(ctx context.Context, userID string) ([]models.Workout, error) {
	out, err := s.workouts.List(ctx, repository.WorkoutFilter{UserID: userID})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return out, nil
}

const defaultRecentLimit = 5

func (s *WorkoutService) Recent(ctx context.Context, userID string, limit int) ([]models.Workout, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	out, err := s.workouts.List(ctx, repository.WorkoutFilter{UserID: userID, Limit: limit})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return out, nil
}

func (s *WorkoutService) Templates(ctx context.Context, userID string) ([]models.Workout, error) {
	out, err := s.workouts.List(ctx, repository.WorkoutFilter{UserID: userID, TemplatesOnly: true})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return out, nil
}

// Get enforces existence before ownership so a missing record is always a
// 404 and a foreign one always a 403.
func (s *WorkoutService) Get(ctx context.Context, requester models.User, id string) (models.Workout, error) {
	w, err := s.workouts.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return models.Workout{}, apperr.NotFound("Workout not found")
	}
	if err != nil {
		return models.Workout{}, apperr.Internal(err)
	}
	if !CanAccess(w.UserID, requester) {
		return models.Workout{}, apperr.Forbidden("You are not authorized to access this workout")
	}
	return w, nil
}

func (s *WorkoutService) Create(ctx context.Context, owner models.User, w models.Workout) (models.Workout, error) {
	w.UserID = owner.ID
	if w.Date.IsZero() {
		w.Date = time.Now()
	}
	if err := w.Validate(); err != nil {
		return models.Workout{}, err
	}
	created, err := s.workouts.Create(ctx, w)
	if err != nil {
		return models.Workout{}, apperr.Internal(err)
	}
	return created, nil
}

// WorkoutUpdate carries the mutable fields; nil leaves a field unchanged.
// Exercises is a pointer to distinguish "absent" from "replace with empty".
type WorkoutUpdate struct {
	Name      *string                   `json:"name"`
	Date      *time.Time                `json:"date"`
	Exercises *[]models.WorkoutExercise `json:"exercises"`
	Notes     *string                   `json:"notes"`
	Duration  *int                      `json:"duration"`
}

func (s *WorkoutService) Update(ctx context.Context, requester models.User, id string, upd WorkoutUpdate) (models.Workout, error) {
	w, err := s.Get(ctx, requester, id)
	if err != nil {
		return models.Workout{}, err
	}

	if upd.Name != nil {
		w.Name = *upd.Name
	}
	if upd.Date != nil {
		w.Date = *upd.Date
	}
	if upd.Exercises != nil {
		w.Exercises = *upd.Exercises
	}
	if upd.Notes != nil {
		w.Notes = *upd.Notes
	}
	if upd.Duration != nil {
		w.Duration = upd.Duration
	}
	if err := w.Validate(); err != nil {
		return models.Workout{}, err
	}

	saved, err := s.workouts.Update(ctx, w)
	if err != nil {
		return models.Workout{}, apperr.Internal(err)
	}
	return saved, nil
}

func (s *WorkoutService) Delete(ctx context.Context, requester models.User, id string) error {
	if _, err := s.Get(ctx, requester, id); err != nil {
		return err
	}
	if err := s.workouts.Delete(ctx, id); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// FromTemplate clones a template's exercise list into a fresh non-template
// workout dated now and owned by the requester. Existence and ownership are
// checked under the same rules as Get.
func (s *WorkoutService) FromTemplate(ctx context.Context, requester models.User, templateID string) (models.Workout, error) {
	tpl, err := s.workouts.GetByID(ctx, templateID)
	if errors.Is(err, repository.ErrNotFound) {
		return models.Workout{}, apperr.NotFound("Template not found")
	}
	if err != nil {
		return models.Workout{}, apperr.Internal(err)
	}
	if !CanAccess(tpl.UserID, requester) {
		return models.Workout{}, apperr.Forbidden("You are not authorized to use this template")
	}

	exercises := make([]models.WorkoutExercise, len(tpl.Exercises))
	copy(exercises, tpl.Exercises)

	w := models.Workout{
		Name:      tpl.Name,
		UserID:    requester.ID,
		Date:      time.Now(),
		Exercises: exercises,
	}
	created, err := s.workouts.Create(ctx, w)
	if err != nil {
		return models.Workout{}, apperr.Internal(err)
	}
	return created, nil
}
