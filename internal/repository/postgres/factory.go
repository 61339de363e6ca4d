// Package postgres implements the repository contracts over pgx. Records
// are stored as JSONB documents with the filterable keys (owner, date,
// name, category) extracted into indexed columns.
package postgres

import (
	"github.com/fittrack/fittrack-api/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	Users        repository.Users
	Exercises    repository.Exercises
	Workouts     repository.Workouts
	Measurements repository.Measurements
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Users:        &usersRepo{pool},
		Exercises:    &exercisesRepo{pool},
		Workouts:     &workoutsRepo{pool},
		Measurements: &measurementsRepo{pool},
	}
}
