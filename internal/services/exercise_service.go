package services

import (
	"context"
	"errors"

	"github.com/fittrack/fittrack-api/internal/apperr"
	"github.com/fittrack/fittrack-api/internal/models"
	"github.com/fittrack/fittrack-api/internal/repository"
)

type ExerciseService struct {
	exercises repository.Exercises
}

func NewExerciseService(exercises repository.Exercises) *ExerciseService {
	return &ExerciseService{exercises: exercises}
}

// List is public; category "all" means no category restriction.
func (s *ExerciseService) List(ctx context.Context, category models.Category, search string) ([]models.Exercise, error) {
	if category == "all" {
		category = ""
	}
	out, err := s.exercises.List(ctx, repository.ExerciseFilter{Category: category, Search: search})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return out, nil
}

func (s *ExerciseService) GetByID(ctx context.Context, id string) (models.Exercise, error) {
	e, err := s.exercises.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return models.Exercise{}, apperr.NotFound("Exercise not found")
	}
	if err != nil {
		return models.Exercise{}, apperr.Internal(err)
	}
	return e, nil
}

// Create stores a custom exercise stamped with the caller as creator.
func (s *ExerciseService) Create(ctx context.Context, creator models.User, e models.Exercise) (models.Exercise, error) {
	e.ID = ""
	e.CreatedBy = creator.ID
	e.IsCustom = true
	if err := e.Validate(); err != nil {
		return models.Exercise{}, err
	}
	created, err := s.exercises.Create(ctx, e)
	if err != nil {
		return models.Exercise{}, apperr.Internal(err)
	}
	return created, nil
}

// ExerciseUpdate carries the mutable fields; nil leaves a field unchanged.
type ExerciseUpdate struct {
	Name             *string            `json:"name"`
	Category         *models.Category   `json:"category"`
	Instructions     *string            `json:"instructions"`
	MainMuscles      []string           `json:"mainMuscles"`
	SecondaryMuscles []string           `json:"secondaryMuscles"`
	Equipment        *string            `json:"equipment"`
	Difficulty       *models.Difficulty `json:"difficulty"`
}

func (s *ExerciseService) Update(ctx context.Context, requester models.User, id string, upd ExerciseUpdate) (models.Exercise, error) {
	e, err := s.GetByID(ctx, id)
	if err != nil {
		return models.Exercise{}, err
	}
	if !CanAccess(e.CreatedBy, requester) {
		return models.Exercise{}, apperr.Forbidden("You are not authorized to update this exercise")
	}

	if upd.Name != nil {
		e.Name = *upd.Name
	}
	if upd.Category != nil {
		e.Category = *upd.Category
	}
	if upd.Instructions != nil {
		e.Instructions = *upd.Instructions
	}
	if upd.MainMuscles != nil {
		e.MainMuscles = upd.MainMuscles
	}
	if upd.SecondaryMuscles != nil {
		e.SecondaryMuscles = upd.SecondaryMuscles
	}
	if upd.Equipment != nil {
		e.Equipment = *upd.Equipment
	}
	if upd.Difficulty != nil {
		e.Difficulty = *upd.Difficulty
	}
	if err := e.Validate(); err != nil {
		return models.Exercise{}, err
	}

	saved, err := s.exercises.Update(ctx, e)
	if err != nil {
		return models.Exercise{}, apperr.Internal(err)
	}
	return saved, nil
}

func (s *ExerciseService) Delete(ctx context.Context, requester models.User, id string) error {
	e, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !CanAccess(e.CreatedBy, requester) {
		return apperr.Forbidden("You are not authorized to delete this exercise")
	}
	if err := s.exercises.Delete(ctx, id); err != nil {
		return apperr.Internal(err)
	}
	return nil
}
