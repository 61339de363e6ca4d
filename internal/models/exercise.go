package models

import (
	"strings"
	"time"

	"github.com/fittrack/fittrack-api/internal/apperr"
)

type Category string

const (
	CategoryChest     Category = "chest"
	CategoryBack      Category = "back"
	CategoryLegs      Category = "legs"
	CategoryShoulders Category = "shoulders"
	CategoryArms      Category = "arms"
	CategoryCore      Category = "core"
	CategoryCardio    Category = "cardio"
	CategoryFullBody  Category = "full body"
	CategoryOther     Category = "other"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryChest, CategoryBack, CategoryLegs, CategoryShoulders,
		CategoryArms, CategoryCore, CategoryCardio, CategoryFullBody, CategoryOther:
		return true
	}
	return false
}

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// Exercise is a library entry. Stock exercises have no creator and an unset
// IsCustom flag; user-submitted ones carry the creator's id.
type Exercise struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Category         Category   `json:"category"`
	Instructions     string     `json:"instructions"`
	MainMuscles      []string   `json:"mainMuscles"`
	SecondaryMuscles []string   `json:"secondaryMuscles"`
	Equipment        string     `json:"equipment"`
	Difficulty       Difficulty `json:"difficulty"`
	CreatedBy        string     `json:"createdBy,omitempty"`
	IsCustom         bool       `json:"isCustom"`
	CreatedAt        time.Time  `json:"createdAt"`
}

func (e *Exercise) Validate() error {
	e.Name = strings.TrimSpace(e.Name)
	if e.Name == "" {
		return apperr.ValidationField("name", "Please provide an exercise name")
	}
	if !e.Category.Valid() {
		return apperr.ValidationField("category", "Please provide a category")
	}
	if strings.TrimSpace(e.Instructions) == "" {
		return apperr.ValidationField("instructions", "Please provide exercise instructions")
	}
	if len(e.MainMuscles) == 0 {
		return apperr.ValidationField("mainMuscles", "Please specify main muscles worked")
	}
	if strings.TrimSpace(e.Equipment) == "" {
		return apperr.ValidationField("equipment", "Please specify equipment needed")
	}
	if e.Difficulty == "" {
		e.Difficulty = DifficultyIntermediate
	}
	if !e.Difficulty.Valid() {
		return apperr.ValidationField("difficulty", "Invalid difficulty")
	}
	if e.SecondaryMuscles == nil {
		e.SecondaryMuscles = []string{}
	}
	return nil
}

// MatchesSearch reports whether the exercise matches a free-text query over
// name, category and muscle lists, case-insensitively.
func (e *Exercise) MatchesSearch(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(e.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(string(e.Category)), q) {
		return true
	}
	for _, m := range e.MainMuscles {
		if strings.Contains(strings.ToLower(m), q) {
			return true
		}
	}
	for _, m := range e.SecondaryMuscles {
		if strings.Contains(strings.ToLower(m), q) {
			return true
		}
	}
	return false
}
