package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/fittrack/fittrack-api/internal/models"
	"github.com/fittrack/fittrack-api/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type usersRepo struct{ pool *pgxpool.Pool }

// The password hash lives in its own column, never in the document, so a
// serialized doc can go to a client as-is.
func (r *usersRepo) Create(ctx context.Context, u models.User) (models.User, error) {
	u.ID = uuid.NewString()
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	doc, err := json.Marshal(u)
	if err != nil {
		return models.User{}, err
	}
	_, err = r.pool.Exec(ctx,
		`INSERT INTO users(id, email, password_hash, doc) VALUES($1,$2,$3,$4)`,
		u.ID, u.Email, u.PasswordHash, doc,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return models.User{}, repository.ErrDuplicate
		}
		return models.User{}, err
	}
	return u, nil
}

func (r *usersRepo) GetByID(ctx context.Context, id string) (models.User, error) {
	return r.getOne(ctx, `SELECT doc, password_hash FROM users WHERE id=$1`, id)
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (models.User, error) {
	return r.getOne(ctx, `SELECT doc, password_hash FROM users WHERE email=$1`, strings.ToLower(email))
}

func (r *usersRepo) getOne(ctx context.Context, q, arg string) (models.User, error) {
	var doc []byte
	var hash string
	err := r.pool.QueryRow(ctx, q, arg).Scan(&doc, &hash)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, repository.ErrNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	var u models.User
	if err := json.Unmarshal(doc, &u); err != nil {
		return models.User{}, err
	}
	u.PasswordHash = hash
	return u, nil
}

func (r *usersRepo) Update(ctx context.Context, u models.User) (models.User, error) {
	u.UpdatedAt = time.Now()
	doc, err := json.Marshal(u)
	if err != nil {
		return models.User{}, err
	}
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET email=$2, password_hash=$3, doc=$4 WHERE id=$1`,
		u.ID, u.Email, u.PasswordHash, doc,
	)
	if err != nil {
		return models.User{}, err
	}
	if tag.RowsAffected() == 0 {
		return models.User{}, repository.ErrNotFound
	}
	return u, nil
}
