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

type exercisesRepo struct{ pool *pgxpool.Pool }

func (r *exercisesRepo) Create(ctx context.Context, e models.Exercise) (models.Exercise, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	doc, err := json.Marshal(e)
	if err != nil {
		return models.Exercise{}, err
	}
	_, err = r.pool.Exec(ctx,
		`INSERT INTO exercises(id, name, category, is_custom, doc) VALUES($1,$2,$3,$4,$5)`,
		e.ID, e.Name, string(e.Category), e.IsCustom, doc,
	)
	if err != nil {
		return models.Exercise{}, err
	}
	return e, nil
}

func (r *exercisesRepo) GetByID(ctx context.Context, id string) (models.Exercise, error) {
	var doc []byte
	err := r.pool.QueryRow(ctx, `SELECT doc FROM exercises WHERE id=$1`, id).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Exercise{}, repository.ErrNotFound
	}
	if err != nil {
		return models.Exercise{}, err
	}
	var e models.Exercise
	if err := json.Unmarshal(doc, &e); err != nil {
		return models.Exercise{}, err
	}
	return e, nil
}

func (r *exercisesRepo) List(ctx context.Context, f repository.ExerciseFilter) ([]models.Exercise, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT doc FROM exercises WHERE ($1 = '' OR category = $1) ORDER BY lower(name) ASC`,
		string(f.Category),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Exercise{}
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var e models.Exercise
		if err := json.Unmarshal(doc, &e); err != nil {
			return nil, err
		}
		// Free-text matching spans muscle lists inside the document, so
		// it runs here rather than in SQL; the catalog is small.
		if f.Search != "" && !e.MatchesSearch(f.Search) {
			continue
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *exercisesRepo) Update(ctx context.Context, e models.Exercise) (models.Exercise, error) {
	doc, err := json.Marshal(e)
	if err != nil {
		return models.Exercise{}, err
	}
	tag, err := r.pool.Exec(ctx,
		`UPDATE exercises SET name=$2, category=$3, is_custom=$4, doc=$5 WHERE id=$1`,
		e.ID, e.Name, string(e.Category), e.IsCustom, doc,
	)
	if err != nil {
		return models.Exercise{}, err
	}
	if tag.RowsAffected() == 0 {
		return models.Exercise{}, repository.ErrNotFound
	}
	return e, nil
}

func (r *exercisesRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM exercises WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *exercisesRepo) DeleteStock(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM exercises WHERE is_custom = false`)
	return err
}
