// Package repository defines the persistence contracts the services depend
// on. Each resource type gets its own collection interface queried by
// filter, sort key and limit; implementations live in postgres/ and memory/.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/fittrack/fittrack-api/internal/models"
)

// ErrNotFound is returned when no record matches the given id or filter.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when an insert violates a uniqueness rule
// (currently only the user email).
var ErrDuplicate = errors.New("duplicate record")

type Users interface {
	Create(ctx context.Context, u models.User) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	// GetByEmail matches case-insensitively; emails are stored lowercased.
	GetByEmail(ctx context.Context, email string) (models.User, error)
	Update(ctx context.Context, u models.User) (models.User, error)
}

// ExerciseFilter narrows the public exercise listing. Zero values mean
// "no restriction"; results are ordered by name ascending.
type ExerciseFilter struct {
	Category models.Category
	Search   string
}

type Exercises interface {
	Create(ctx context.Context, e models.Exercise) (models.Exercise, error)
	GetByID(ctx context.Context, id string) (models.Exercise, error)
	List(ctx context.Context, f ExerciseFilter) ([]models.Exercise, error)
	Update(ctx context.Context, e models.Exercise) (models.Exercise, error)
	Delete(ctx context.Context, id string) error
	// DeleteStock removes all non-custom exercises; used by the seeder.
	DeleteStock(ctx context.Context) error
}

// WorkoutFilter is always owner-scoped. TemplatesOnly selects saved
// templates ordered by name ascending; otherwise ordering is date
// descending. Limit <= 0 means no limit.
type WorkoutFilter struct {
	UserID        string
	TemplatesOnly bool
	Limit         int
}

type Workouts interface {
	Create(ctx context.Context, w models.Workout) (models.Workout, error)
	GetByID(ctx context.Context, id string) (models.Workout, error)
	List(ctx context.Context, f WorkoutFilter) ([]models.Workout, error)
	Update(ctx context.Context, w models.Workout) (models.Workout, error)
	Delete(ctx context.Context, id string) error
	// Count returns the number of the user's workouts dated at or after
	// since; a zero since counts them all.
	Count(ctx context.Context, userID string, since time.Time) (int, error)
}

type Measurements interface {
	Create(ctx context.Context, m models.Measurement) (models.Measurement, error)
	GetByID(ctx context.Context, id string) (models.Measurement, error)
	// List returns the user's measurements ordered by date descending.
	List(ctx context.Context, userID string) ([]models.Measurement, error)
	Update(ctx context.Context, m models.Measurement) (models.Measurement, error)
	Delete(ctx context.Context, id string) error
	// Latest and Earliest return nil (no error) when the user has no records.
	Latest(ctx context.Context, userID string) (*models.Measurement, error)
	Earliest(ctx context.Context, userID string) (*models.Measurement, error)
}
