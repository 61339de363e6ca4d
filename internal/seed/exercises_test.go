package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fittrack/fittrack-api/internal/models"
	"github.com/fittrack/fittrack-api/internal/repository"
	"github.com/fittrack/fittrack-api/internal/repository/memory"
)

func TestStockCatalogIsValid(t *testing.T) {
	for _, e := range StockExercises() {
		require.NoError(t, e.Validate(), "exercise %q", e.Name)
		require.False(t, e.IsCustom)
		require.Empty(t, e.CreatedBy)
	}
}

func TestRunReplacesStockAndKeepsCustom(t *testing.T) {
	ctx := context.Background()
	exercises := memory.NewExercises()

	custom, err := exercises.Create(ctx, models.Exercise{
		Name: "Alice's Special", Category: models.CategoryOther,
		Instructions: "Do the thing.", MainMuscles: []string{"core"},
		Equipment: "none", Difficulty: models.DifficultyBeginner,
		CreatedBy: "u1", IsCustom: true,
	})
	require.NoError(t, err)

	n, err := Run(ctx, exercises)
	require.NoError(t, err)
	require.Equal(t, len(StockExercises()), n)

	// re-seeding is idempotent in count
	n2, err := Run(ctx, exercises)
	require.NoError(t, err)
	require.Equal(t, n, n2)

	all, err := exercises.List(ctx, repository.ExerciseFilter{})
	require.NoError(t, err)
	require.Len(t, all, n+1)

	kept, err := exercises.GetByID(ctx, custom.ID)
	require.NoError(t, err)
	require.Equal(t, "Alice's Special", kept.Name)
}
