package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/fittrack/fittrack-api/internal/models"
	"github.com/fittrack/fittrack-api/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type workoutsRepo struct{ pool *pgxpool.Pool }

func (r *workoutsRepo) Create(ctx context.Context, w models.Workout) (models.Workout, error) {
	w.ID = uuid.NewString()
	if w.CreatedAt.IsZero() {
		w.CreatedAt = time.Now()
	}
	doc, err := json.Marshal(w)
	if err != nil {
		return models.Workout{}, err
	}
	_, err = r.pool.Exec(ctx,
		`INSERT INTO workouts(id, owner, date, name, is_template, doc) VALUES($1,$2,$3,$4,$5,$6)`,
		w.ID, w.UserID, w.Date, w.Name, w.IsTemplate, doc,
	)
	if err != nil {
		return models.Workout{}, err
	}
	return w, nil
}

func (r *workoutsRepo) GetByID(ctx context.Context, id string) (models.Workout, error) {
	var doc []byte
	err := r.pool.QueryRow(ctx, `SELECT doc FROM workouts WHERE id=$1`, id).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Workout{}, repository.ErrNotFound
	}
	if err != nil {
		return models.Workout{}, err
	}
	var w models.Workout
	if err := json.Unmarshal(doc, &w); err != nil {
		return models.Workout{}, err
	}
	return w, nil
}

func (r *workoutsRepo) List(ctx context.Context, f repository.WorkoutFilter) ([]models.Workout, error) {
	q := `SELECT doc FROM workouts WHERE owner=$1 ORDER BY date DESC`
	if f.TemplatesOnly {
		q = `SELECT doc FROM workouts WHERE owner=$1 AND is_template = true ORDER BY lower(name) ASC`
	}
	args := []any{f.UserID}
	if f.Limit > 0 {
		q += ` LIMIT $2`
		args = append(args, f.Limit)
	}

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Workout{}
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var w models.Workout
		if err := json.Unmarshal(doc, &w); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (r *workoutsRepo) Update(ctx context.Context, w models.Workout) (models.Workout, error) {
	doc, err := json.Marshal(w)
	if err != nil {
		return models.Workout{}, err
	}
	tag, err := r.pool.Exec(ctx,
		`UPDATE workouts SET date=$2, name=$3, is_template=$4, doc=$5 WHERE id=$1`,
		w.ID, w.Date, w.Name, w.IsTemplate, doc,
	)
	if err != nil {
		return models.Workout{}, err
	}
	if tag.RowsAffected() == 0 {
		return models.Workout{}, repository.ErrNotFound
	}
	return w, nil
}

func (r *workoutsRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM workouts WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *workoutsRepo) Count(ctx context.Context, userID string, since time.Time) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM workouts WHERE owner=$1 AND ($2::timestamptz IS NULL OR date >= $2)`,
		userID, nullableTime(since),
	).Scan(&n)
	return n, err
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
