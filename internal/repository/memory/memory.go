// Package memory provides map-backed repository implementations. They back
// the handler and service tests so nothing in the suite needs a database,
// and they honor the same ordering and not-found semantics as postgres.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fittrack/fittrack-api/internal/models"
	"github.com/fittrack/fittrack-api/internal/repository"
	"github.com/google/uuid"
)

type Users struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewUsers() *Users { return &Users{users: map[string]models.User{}} }

func (s *Users) Create(_ context.Context, u models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return models.User{}, repository.ErrDuplicate
		}
	}
	u.ID = uuid.NewString()
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	s.users[u.ID] = u
	return u, nil
}

func (s *Users) GetByID(_ context.Context, id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return models.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (s *Users) GetByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	email = strings.ToLower(email)
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, repository.ErrNotFound
}

func (s *Users) Update(_ context.Context, u models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.ID]; !ok {
		return models.User{}, repository.ErrNotFound
	}
	u.UpdatedAt = time.Now()
	s.users[u.ID] = u
	return u, nil
}

type Exercises struct {
	mu        sync.RWMutex
	exercises map[string]models.Exercise
}

func NewExercises() *Exercises { return &Exercises{exercises: map[string]models.Exercise{}} }

func (s *Exercises) Create(_ context.Context, e models.Exercise) (models.Exercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	s.exercises[e.ID] = e
	return e, nil
}

func (s *Exercises) GetByID(_ context.Context, id string) (models.Exercise, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.exercises[id]
	if !ok {
		return models.Exercise{}, repository.ErrNotFound
	}
	return e, nil
}

func (s *Exercises) List(_ context.Context, f repository.ExerciseFilter) ([]models.Exercise, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Exercise{}
	for _, e := range s.exercises {
		if f.Category != "" && e.Category != f.Category {
			continue
		}
		if f.Search != "" && !e.MatchesSearch(f.Search) {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, nil
}

func (s *Exercises) Update(_ context.Context, e models.Exercise) (models.Exercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.exercises[e.ID]; !ok {
		return models.Exercise{}, repository.ErrNotFound
	}
	s.exercises[e.ID] = e
	return e, nil
}

func (s *Exercises) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.exercises[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.exercises, id)
	return nil
}

func (s *Exercises) DeleteStock(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, e := range s.exercises {
		if !e.IsCustom {
			delete(s.exercises, id)
		}
	}
	return nil
}

type Workouts struct {
	mu       sync.RWMutex
	workouts map[string]models.Workout
}

func NewWorkouts() *Workouts { return &Workouts{workouts: map[string]models.Workout{}} }

func (s *Workouts) Create(_ context.Context, w models.Workout) (models.Workout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w.ID = uuid.NewString()
	if w.CreatedAt.IsZero() {
		w.CreatedAt = time.Now()
	}
	s.workouts[w.ID] = w
	return w, nil
}

func (s *Workouts) GetByID(_ context.Context, id string) (models.Workout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.workouts[id]
	if !ok {
		return models.Workout{}, repository.ErrNotFound
	}
	return w, nil
}

func (s *Workouts) List(_ context.Context, f repository.WorkoutFilter) ([]models.Workout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Workout{}
	for _, w := range s.workouts {
		if w.UserID != f.UserID {
			continue
		}
		if f.TemplatesOnly && !w.IsTemplate {
			continue
		}
		out = append(out, w)
	}
	if f.TemplatesOnly {
		sort.Slice(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		})
	} else {
		sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	}
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (s *Workouts) Update(_ context.Context, w models.Workout) (models.Workout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.workouts[w.ID]; !ok {
		return models.Workout{}, repository.ErrNotFound
	}
	s.workouts[w.ID] = w
	return w, nil
}

func (s *Workouts) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.workouts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.workouts, id)
	return nil
}

func (s *Workouts) Count(_ context.Context, userID string, since time.Time) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, w := range s.workouts {
		if w.UserID != userID {
			continue
		}
		if !since.IsZero() && w.Date.Before(since) {
			continue
		}
		n++
	}
	return n, nil
}

type Measurements struct {
	mu           sync.RWMutex
	measurements map[string]models.Measurement
}

func NewMeasurements() *Measurements {
	return &Measurements{measurements: map[string]models.Measurement{}}
}

func (s *Measurements) Create(_ context.Context, m models.Measurement) (models.Measurement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = uuid.NewString()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	s.measurements[m.ID] = m
	return m, nil
}

func (s *Measurements) GetByID(_ context.Context, id string) (models.Measurement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.measurements[id]
	if !ok {
		return models.Measurement{}, repository.ErrNotFound
	}
	return m, nil
}

func (s *Measurements) List(_ context.Context, userID string) ([]models.Measurement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Measurement{}
	for _, m := range s.measurements {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (s *Measurements) Update(_ context.Context, m models.Measurement) (models.Measurement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.measurements[m.ID]; !ok {
		return models.Measurement{}, repository.ErrNotFound
	}
	s.measurements[m.ID] = m
	return m, nil
}

func (s *Measurements) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.measurements[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.measurements, id)
	return nil
}

func (s *Measurements) Latest(ctx context.Context, userID string) (*models.Measurement, error) {
	all, _ := s.List(ctx, userID)
	if len(all) == 0 {
		return nil, nil
	}
	m := all[0]
	return &m, nil
}

func (s *Measurements) Earliest(ctx context.Context, userID string) (*models.Measurement, error) {
	all, _ := s.List(ctx, userID)
	if len(all) == 0 {
		return nil, nil
	}
	m := all[len(all)-1]
	return &m, nil
}
