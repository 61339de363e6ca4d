package models

import (
	"strings"
	"time"

	"github.com/fittrack/fittrack-api/internal/apperr"
)

// Set is one performed (or planned) set inside a workout exercise entry.
// Numeric fields are pointers: nil means "not tracked for this set".
type Set struct {
	SetNumber int      `json:"setNumber"`
	Reps      *int     `json:"reps"`
	Weight    *float64 `json:"weight"`
	Duration  *int     `json:"duration"` // seconds
	Distance  *float64 `json:"distance"` // meters
	Completed bool     `json:"completed"`
}

// WorkoutExercise references a library exercise and the sets performed for it.
// The name is denormalized so workouts stay readable if the library entry
// is renamed.
type WorkoutExercise struct {
	ExerciseID string `json:"exerciseId"`
	Name       string `json:"name"`
	Sets       []Set  `json:"sets"`
	Notes      string `json:"notes"`
}

type Workout struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	UserID       string            `json:"userId"`
	Date         time.Time         `json:"date"`
	Duration     *int              `json:"duration"` // minutes
	Exercises    []WorkoutExercise `json:"exercises"`
	Notes        string            `json:"notes"`
	IsTemplate   bool              `json:"isTemplate"`
	TemplateName string            `json:"templateName,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
}

func (w *Workout) Validate() error {
	w.Name = strings.TrimSpace(w.Name)
	if w.Name == "" {
		return apperr.ValidationField("name", "Please provide a workout name")
	}
	for _, ex := range w.Exercises {
		if ex.ExerciseID == "" {
			return apperr.ValidationField("exercises", "Each exercise entry needs an exercise id")
		}
		if strings.TrimSpace(ex.Name) == "" {
			return apperr.ValidationField("exercises", "Each exercise entry needs a name")
		}
	}
	if w.Exercises == nil {
		w.Exercises = []WorkoutExercise{}
	}
	return nil
}

// TotalVolume sums weight x reps over completed sets that track both.
func (w *Workout) TotalVolume() float64 {
	var total float64
	for _, ex := range w.Exercises {
		for _, s := range ex.Sets {
			if s.Completed && s.Weight != nil && s.Reps != nil {
				total += *s.Weight * float64(*s.Reps)
			}
		}
	}
	return total
}
