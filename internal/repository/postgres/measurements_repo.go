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

type measurementsRepo struct{ pool *pgxpool.Pool }

func (r *measurementsRepo) Create(ctx context.Context, m models.Measurement) (models.Measurement, error) {
	m.ID = uuid.NewString()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	doc, err := json.Marshal(m)
	if err != nil {
		return models.Measurement{}, err
	}
	_, err = r.pool.Exec(ctx,
		`INSERT INTO measurements(id, owner, date, doc) VALUES($1,$2,$3,$4)`,
		m.ID, m.UserID, m.Date, doc,
	)
	if err != nil {
		return models.Measurement{}, err
	}
	return m, nil
}

func (r *measurementsRepo) GetByID(ctx context.Context, id string) (models.Measurement, error) {
	return r.scanOne(r.pool.QueryRow(ctx, `SELECT doc FROM measurements WHERE id=$1`, id))
}

func (r *measurementsRepo) List(ctx context.Context, userID string) ([]models.Measurement, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT doc FROM measurements WHERE owner=$1 ORDER BY date DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Measurement{}
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var m models.Measurement
		if err := json.Unmarshal(doc, &m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *measurementsRepo) Update(ctx context.Context, m models.Measurement) (models.Measurement, error) {
	doc, err := json.Marshal(m)
	if err != nil {
		return models.Measurement{}, err
	}
	tag, err := r.pool.Exec(ctx,
		`UPDATE measurements SET date=$2, doc=$3 WHERE id=$1`,
		m.ID, m.Date, doc,
	)
	if err != nil {
		return models.Measurement{}, err
	}
	if tag.RowsAffected() == 0 {
		return models.Measurement{}, repository.ErrNotFound
	}
	return m, nil
}

func (r *measurementsRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM measurements WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *measurementsRepo) Latest(ctx context.Context, userID string) (*models.Measurement, error) {
	return r.endpoint(ctx, userID, "DESC")
}

func (r *measurementsRepo) Earliest(ctx context.Context, userID string) (*models.Measurement, error) {
	return r.endpoint(ctx, userID, "ASC")
}

func (r *measurementsRepo) endpoint(ctx context.Context, userID, dir string) (*models.Measurement, error) {
	m, err := r.scanOne(r.pool.QueryRow(ctx,
		`SELECT doc FROM measurements WHERE owner=$1 ORDER BY date `+dir+` LIMIT 1`, userID))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *measurementsRepo) scanOne(row pgx.Row) (models.Measurement, error) {
	var doc []byte
	err := row.Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Measurement{}, repository.ErrNotFound
	}
	if err != nil {
		return models.Measurement{}, err
	}
	var m models.Measurement
	if err := json.Unmarshal(doc, &m); err != nil {
		return models.Measurement{}, err
	}
	return m, nil
}
