package services

import (
	"context"
	"errors"
	"time"

	"github.com/fittrack/fittrack-api/internal/apperr"
	"github.com/fittrack/fittrack-api/internal/auth"
	"github.com/fittrack/fittrack-api/internal/models"
	"github.com/fittrack/fittrack-api/internal/repository"
)

type UserService struct {
	users    repository.Users
	workouts repository.Workouts
	tokens   *auth.TokenManager
}

func NewUserService(users repository.Users, workouts repository.Workouts, tokens *auth.TokenManager) *UserService {
	return &UserService{users: users, workouts: workouts, tokens: tokens}
}

// Register creates a user and returns it with a fresh bearer token.
// Duplicate email is reported as a field validation error; the plaintext
// password is hashed before the record ever reaches the store.
func (s *UserService) Register(ctx context.Context, name, email, password string) (models.User, string, error) {
	u := models.User{Name: name, Email: email, Role: models.RoleUser}
	u.Normalize()
	if err := u.Validate(); err != nil {
		return models.User{}, "", err
	}
	if len(password) < 6 {
		return models.User{}, "", apperr.ValidationField("password", "Password must be at least 6 characters")
	}

	if _, err := s.users.GetByEmail(ctx, u.Email); err == nil {
		return models.User{}, "", apperr.ValidationField("email", "User already exists")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return models.User{}, "", apperr.Internal(err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, "", apperr.Internal(err)
	}
	u.PasswordHash = hash

	created, err := s.users.Create(ctx, u)
	if errors.Is(err, repository.ErrDuplicate) {
		return models.User{}, "", apperr.ValidationField("email", "User already exists")
	}
	if err != nil {
		return models.User{}, "", apperr.Internal(err)
	}

	token, err := s.tokens.Generate(created.ID)
	if err != nil {
		return models.User{}, "", apperr.Internal(err)
	}
	return created, token, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password both surface as the same invalid-credentials outcome.
func (s *UserService) Login(ctx context.Context, email, password string) (models.User, string, error) {
	if email == "" || password == "" {
		return models.User{}, "", apperr.Validation("Please provide an email and password")
	}

	u, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return models.User{}, "", apperr.ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, "", apperr.Internal(err)
	}
	if auth.VerifyPassword(password, u.PasswordHash) != nil {
		return models.User{}, "", apperr.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(u.ID)
	if err != nil {
		return models.User{}, "", apperr.Internal(err)
	}
	return u, token, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (models.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return models.User{}, apperr.NotFound("User not found")
	}
	if err != nil {
		return models.User{}, apperr.Internal(err)
	}
	return u, nil
}

// ProfileUpdate carries the mutable profile fields. Nil means the field was
// absent from the request and stays unchanged; a present zero is stored.
type ProfileUpdate struct {
	Name    *string  `json:"name"`
	Height  *float64 `json:"height"`
	Weight  *float64 `json:"weight"`
	BodyFat *float64 `json:"bodyFat"`
	Goals   *string  `json:"goals"`
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, upd ProfileUpdate) (models.User, error) {
	u, err := s.GetByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Height != nil {
		u.Height = upd.Height
	}
	if upd.Weight != nil {
		u.Weight = upd.Weight
	}
	if upd.BodyFat != nil {
		u.BodyFat = upd.BodyFat
	}
	if upd.Goals != nil {
		u.Goals = *upd.Goals
	}
	u.Normalize()
	if err := u.Validate(); err != nil {
		return models.User{}, err
	}

	saved, err := s.users.Update(ctx, u)
	if err != nil {
		return models.User{}, apperr.Internal(err)
	}
	return saved, nil
}

type UserStats struct {
	TotalWorkouts    int `json:"totalWorkouts"`
	WorkoutsThisWeek int `json:"workoutsThisWeek"`
	TotalExercises   int `json:"totalExercises"`
}

// startOfWeek returns the most recent Sunday at midnight local time.
func startOfWeek(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d-int(now.Weekday()), 0, 0, 0, 0, now.Location())
}

func (s *UserService) Stats(ctx context.Context, userID string) (UserStats, error) {
	total, err := s.workouts.Count(ctx, userID, time.Time{})
	if err != nil {
		return UserStats{}, apperr.Internal(err)
	}
	thisWeek, err := s.workouts.Count(ctx, userID, startOfWeek(time.Now()))
	if err != nil {
		return UserStats{}, apperr.Internal(err)
	}

	all, err := s.workouts.List(ctx, repository.WorkoutFilter{UserID: userID})
	if err != nil {
		return UserStats{}, apperr.Internal(err)
	}
	exercises := 0
	for _, w := range all {
		exercises += len(w.Exercises)
	}

	return UserStats{TotalWorkouts: total, WorkoutsThisWeek: thisWeek, TotalExercises: exercises}, nil
}
