// Package seed holds the stock exercise catalog and the routine that loads
// it. Stock entries carry no creator and are replaced wholesale on re-seed;
// custom exercises are left untouched.
package seed

import (
	"context"

	"github.com/fittrack/fittrack-api/internal/models"
	"github.com/fittrack/fittrack-api/internal/repository"
)

func StockExercises() []models.Exercise {
	return []models.Exercise{
		{
			Name:         "Bench Press",
			Category:     models.CategoryChest,
			Instructions: "Lie on a flat bench with your feet on the ground. Grip the barbell with hands slightly wider than shoulder-width apart. Lower the bar to your chest, then press it back up to starting position.",
			MainMuscles:  []string{"chest", "shoulders", "triceps"},
			Equipment:    "barbell",
			Difficulty:   models.DifficultyIntermediate,
		},
		{
			Name:         "Squat",
			Category:     models.CategoryLegs,
			Instructions: "Stand with feet shoulder-width apart, holding a barbell across your upper back. Bend your knees and hips to lower your body, keeping your chest up. Push through your heels to return to starting position.",
			MainMuscles:  []string{"quadriceps", "hamstrings", "glutes"},
			Equipment:    "barbell",
			Difficulty:   models.DifficultyIntermediate,
		},
		{
			Name:         "Deadlift",
			Category:     models.CategoryBack,
			Instructions: "Stand with feet hip-width apart, barbell over your feet. Bend at the hips and knees to grip the bar. Keeping your back straight, stand up tall, lifting the bar to hip level. Lower the bar by hinging at the hips and bending the knees.",
			MainMuscles:  []string{"back", "hamstrings", "glutes"},
			Equipment:    "barbell",
			Difficulty:   models.DifficultyIntermediate,
		},
		{
			Name:         "Pull-up",
			Category:     models.CategoryBack,
			Instructions: "Hang from a pull-up bar with palms facing away from you, hands slightly wider than shoulder-width. Pull your body up until your chin clears the bar, then lower back down with control.",
			MainMuscles:  []string{"back", "biceps"},
			Equipment:    "pull-up bar",
			Difficulty:   models.DifficultyIntermediate,
		},
		{
			Name:         "Overhead Press",
			Category:     models.CategoryShoulders,
			Instructions: "Stand holding a barbell at shoulder height with palms facing forward. Press the bar overhead until your arms are fully extended, then lower it back to shoulder height.",
			MainMuscles:  []string{"shoulders", "triceps"},
			Equipment:    "barbell",
			Difficulty:   models.DifficultyIntermediate,
		},
		{
			Name:         "Barbell Row",
			Category:     models.CategoryBack,
			Instructions: "Bend at the hips with a slight knee bend, holding a barbell with an overhand grip. Pull the bar to your lower chest, squeezing your shoulder blades together, then lower it back down.",
			MainMuscles:  []string{"back", "biceps"},
			Equipment:    "barbell",
			Difficulty:   models.DifficultyIntermediate,
		},
		{
			Name:         "Bicep Curl",
			Category:     models.CategoryArms,
			Instructions: "Stand holding dumbbells at your sides with palms facing forward. Keeping your elbows close to your body, curl the weights up to shoulder height, then lower them back down.",
			MainMuscles:  []string{"biceps"},
			Equipment:    "dumbbells",
			Difficulty:   models.DifficultyBeginner,
		},
		{
			Name:         "Tricep Dip",
			Category:     models.CategoryArms,
			Instructions: "Support your body on parallel bars with arms extended. Lower your body by bending your elbows until your upper arms are parallel to the floor, then push back up.",
			MainMuscles:  []string{"triceps", "chest"},
			Equipment:    "parallel bars",
			Difficulty:   models.DifficultyIntermediate,
		},
		{
			Name:         "Plank",
			Category:     models.CategoryCore,
			Instructions: "Hold a push-up position with your weight on your forearms, keeping your body in a straight line from head to heels. Engage your core and hold.",
			MainMuscles:  []string{"core"},
			Equipment:    "bodyweight",
			Difficulty:   models.DifficultyBeginner,
		},
		{
			Name:         "Lunge",
			Category:     models.CategoryLegs,
			Instructions: "Stand tall, then step forward with one leg and lower your hips until both knees are bent at about 90 degrees. Push back up to standing and repeat with the other leg.",
			MainMuscles:  []string{"quadriceps", "glutes", "hamstrings"},
			Equipment:    "bodyweight",
			Difficulty:   models.DifficultyBeginner,
		},
		{
			Name:         "Running",
			Category:     models.CategoryCardio,
			Instructions: "Run at a steady pace, keeping an upright posture and a relaxed arm swing. Adjust speed and distance to your fitness level.",
			MainMuscles:  []string{"legs", "core"},
			Equipment:    "none",
			Difficulty:   models.DifficultyBeginner,
		},
		{
			Name:         "Burpee",
			Category:     models.CategoryFullBody,
			Instructions: "From standing, drop into a squat and place your hands on the floor. Kick your feet back into a push-up position, perform a push-up, jump your feet back to your hands, then jump up with arms overhead.",
			MainMuscles:  []string{"chest", "legs", "core"},
			Equipment:    "bodyweight",
			Difficulty:   models.DifficultyAdvanced,
		},
	}
}

// Run replaces every stock exercise with the current catalog.
func Run(ctx context.Context, exercises repository.Exercises) (int, error) {
	if err := exercises.DeleteStock(ctx); err != nil {
		return 0, err
	}
	n := 0
	for _, e := range StockExercises() {
		if _, err := exercises.Create(ctx, e); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
