package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func fptr(f float64) *float64 { return &f }
func iptr(i int) *int         { return &i }

func TestTotalVolume(t *testing.T) {
	w := Workout{
		Exercises: []WorkoutExercise{
			{
				ExerciseID: "ex-1",
				Name:       "Bench Press",
				Sets: []Set{
					{SetNumber: 1, Weight: fptr(100), Reps: iptr(5), Completed: true},
				},
			},
			{
				ExerciseID: "ex-2",
				Name:       "Squat",
				Sets: []Set{
					{SetNumber: 1, Weight: fptr(100), Reps: iptr(5), Completed: true},
				},
			},
		},
	}
	require.Equal(t, 1000.0, w.TotalVolume())
}

func TestTotalVolumeSkipsIncompleteAndUntrackedSets(t *testing.T) {
	w := Workout{
		Exercises: []WorkoutExercise{
			{
				ExerciseID: "ex-1",
				Name:       "Bench Press",
				Sets: []Set{
					{SetNumber: 1, Weight: fptr(80), Reps: iptr(10), Completed: true},
					{SetNumber: 2, Weight: fptr(80), Reps: iptr(10), Completed: false},
					{SetNumber: 3, Weight: nil, Reps: iptr(10), Completed: true},
					{SetNumber: 4, Weight: fptr(80), Reps: nil, Completed: true},
					{SetNumber: 5, Duration: iptr(60), Completed: true},
				},
			},
		},
	}
	require.Equal(t, 800.0, w.TotalVolume())
}

func TestTotalVolumeEmptyWorkout(t *testing.T) {
	require.Equal(t, 0.0, (&Workout{}).TotalVolume())
}

func TestWorkoutValidate(t *testing.T) {
	w := Workout{Name: "  "}
	require.Error(t, w.Validate())

	w = Workout{Name: "Push Day", Exercises: []WorkoutExercise{{Name: "Bench"}}}
	require.Error(t, w.Validate(), "entry without exercise id")

	w = Workout{Name: "Push Day", Exercises: []WorkoutExercise{{ExerciseID: "ex-1", Name: "Bench"}}}
	require.NoError(t, w.Validate())
}
