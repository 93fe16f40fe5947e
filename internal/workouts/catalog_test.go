package workouts_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/vstanisic/fitpal/internal/store"
	"github.com/vstanisic/fitpal/internal/workouts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// INFO: https://github.com/go-redis/redis/issues/1029
		goleak.IgnoreTopFunction(
			"github.com/go-redis/redis/v8/internal/pool.(*ConnPool).reaper",
		),
	)
}

func TestCatalog_EffectiveProgram_default(t *testing.T) {
	ctx := context.Background()
	catalog := workouts.NewCatalog(store.NewInMemory())

	program := catalog.EffectiveProgram(ctx)
	assert.Equal(t, workouts.DefaultProgram(), program)
	require.Len(t, program, 4)
	assert.Equal(t, "upper-body", program[0].ID)
	assert.Equal(t, "lower-body", program[1].ID)
	assert.Equal(t, "push-day", program[2].ID)
	assert.Equal(t, "pull-day", program[3].ID)
}

func TestCatalog_EffectiveProgram_corruptBlobFallsBackToDefault(t *testing.T) {
	ctx := context.Background()
	s := store.NewInMemory()
	require.NoError(t, s.Set(ctx, store.KeyCustomWorkouts, "{not json"))

	catalog := workouts.NewCatalog(s)
	assert.Equal(t, workouts.DefaultProgram(), catalog.EffectiveProgram(ctx))
}

func TestCatalog_EffectiveProgram_brokenStoreFallsBackToDefault(t *testing.T) {
	ctx := context.Background()
	s := store.NewInMemory()
	s.GetErr = errors.New("connection refused")

	catalog := workouts.NewCatalog(s)
	assert.Equal(t, workouts.DefaultProgram(), catalog.EffectiveProgram(ctx))
}

func TestCatalog_SaveProgram(t *testing.T) {
	ctx := context.Background()
	s := store.NewInMemory()
	catalog := workouts.NewCatalog(s)

	custom := []workouts.WorkoutDay{
		{
			ID:    "full-body",
			Day:   "Day 1",
			Title: "Full Body",
			Sections: []workouts.WorkoutSection{
				{
					Name: "Strength",
					Exercises: []workouts.Exercise{
						{ID: "fb-squat", Name: "Barbell Squat", Sets: 5, Reps: "5"},
						{ID: "fb-pullups", Name: "Assisted Pull-ups", Sets: 5, Reps: "5"},
					},
				},
			},
		},
	}

	require.NoError(t, catalog.SaveProgram(ctx, custom))
	assert.Equal(t, custom, catalog.EffectiveProgram(ctx))

	// persisted as a whole-array replacement
	value, err := s.Get(ctx, store.KeyCustomWorkouts)
	require.NoError(t, err)
	var persisted []workouts.WorkoutDay
	require.NoError(t, json.Unmarshal([]byte(value), &persisted))
	assert.Equal(t, custom, persisted)
}

func TestCatalog_SaveProgram_duplicateExerciseID(t *testing.T) {
	ctx := context.Background()
	catalog := workouts.NewCatalog(store.NewInMemory())

	custom := []workouts.WorkoutDay{
		{
			ID: "day-a",
			Sections: []workouts.WorkoutSection{
				{Name: "S", Exercises: []workouts.Exercise{{ID: "dup", Name: "One"}}},
			},
		},
		{
			ID: "day-b",
			Sections: []workouts.WorkoutSection{
				{Name: "S", Exercises: []workouts.Exercise{{ID: "dup", Name: "Two"}}},
			},
		},
	}

	err := catalog.SaveProgram(ctx, custom)
	require.ErrorIs(t, err, workouts.ErrDuplicateExerciseID)

	// nothing persisted
	assert.Equal(t, workouts.DefaultProgram(), catalog.EffectiveProgram(ctx))
}

func TestCatalog_ResetToDefault(t *testing.T) {
	ctx := context.Background()
	s := store.NewInMemory()
	catalog := workouts.NewCatalog(s)

	custom := []workouts.WorkoutDay{
		{
			ID: "custom-day",
			Sections: []workouts.WorkoutSection{
				{Name: "S", Exercises: []workouts.Exercise{{ID: "c-1", Name: "Plank"}}},
			},
		},
	}
	require.NoError(t, catalog.SaveProgram(ctx, custom))
	require.NotEqual(t, workouts.DefaultProgram(), catalog.EffectiveProgram(ctx))

	require.NoError(t, catalog.ResetToDefault(ctx))
	assert.Equal(t, workouts.DefaultProgram(), catalog.EffectiveProgram(ctx))

	value, err := s.Get(ctx, store.KeyCustomWorkouts)
	require.NoError(t, err)
	assert.Equal(t, "[]", value)
}

func TestCatalog_AddExercise(t *testing.T) {
	ctx := context.Background()
	catalog := workouts.NewCatalog(store.NewInMemory())

	newEx := workouts.Exercise{ID: "ub-chest-fly", Name: "Chest Fly", Sets: 3, Reps: "12"}
	require.NoError(t, catalog.AddExercise(ctx, "upper-body", "Strength", newEx))

	program := catalog.EffectiveProgram(ctx)
	day := program[0]
	require.Equal(t, "upper-body", day.ID)
	assert.Contains(t, day.ExerciseIDs(), "ub-chest-fly")

	// added to the requested section, not the first one
	strength := day.Sections[1]
	require.Equal(t, "Strength", strength.Name)
	assert.Equal(t, newEx, strength.Exercises[len(strength.Exercises)-1])
}

func TestCatalog_AddExercise_unknownSectionGoesToFirst(t *testing.T) {
	ctx := context.Background()
	catalog := workouts.NewCatalog(store.NewInMemory())

	newEx := workouts.Exercise{ID: "ub-row-machine", Name: "Row Machine", Time: "5 min"}
	require.NoError(t, catalog.AddExercise(ctx, "upper-body", "No Such Section", newEx))

	day := catalog.EffectiveProgram(ctx)[0]
	first := day.Sections[0]
	assert.Equal(t, newEx, first.Exercises[len(first.Exercises)-1])
}

func TestCatalog_AddExercise_errors(t *testing.T) {
	ctx := context.Background()
	catalog := workouts.NewCatalog(store.NewInMemory())

	err := catalog.AddExercise(ctx, "no-such-day", "", workouts.Exercise{ID: "x", Name: "X"})
	assert.ErrorIs(t, err, workouts.ErrWorkoutDayNotFound)

	// id already taken by a default program exercise
	err = catalog.AddExercise(ctx, "upper-body", "", workouts.Exercise{ID: "ub-seated-row", Name: "X"})
	assert.ErrorIs(t, err, workouts.ErrDuplicateExerciseID)
}

func TestCatalog_UpdateExercise(t *testing.T) {
	ctx := context.Background()
	catalog := workouts.NewCatalog(store.NewInMemory())

	updated := workouts.Exercise{ID: "ub-seated-row", Name: "Seated Row", Sets: 4, Reps: "8-10", Weight: "40 kg"}
	require.NoError(t, catalog.UpdateExercise(ctx, "upper-body", updated))

	day := catalog.EffectiveProgram(ctx)[0]
	var found *workouts.Exercise
	for _, section := range day.Sections {
		for i := range section.Exercises {
			if section.Exercises[i].ID == "ub-seated-row" {
				found = &section.Exercises[i]
			}
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, updated, *found)
}

func TestCatalog_UpdateExercise_missingIDIsError(t *testing.T) {
	ctx := context.Background()
	catalog := workouts.NewCatalog(store.NewInMemory())

	err := catalog.UpdateExercise(ctx, "upper-body", workouts.Exercise{ID: "no-such-exercise", Name: "X"})
	require.ErrorIs(t, err, workouts.ErrExerciseNotFound)

	// program untouched
	assert.Equal(t, workouts.DefaultProgram(), catalog.EffectiveProgram(ctx))
}

func TestCatalog_DeleteExercise(t *testing.T) {
	ctx := context.Background()
	catalog := workouts.NewCatalog(store.NewInMemory())

	require.NoError(t, catalog.DeleteExercise(ctx, "upper-body", "ub-bicep-curl"))

	day := catalog.EffectiveProgram(ctx)[0]
	assert.NotContains(t, day.ExerciseIDs(), "ub-bicep-curl")

	err := catalog.DeleteExercise(ctx, "upper-body", "ub-bicep-curl")
	assert.ErrorIs(t, err, workouts.ErrExerciseNotFound)
}

func TestGuideFor(t *testing.T) {
	guide := workouts.GuideFor("Barbell Squat")
	assert.Equal(t, "Quads, Glutes, Hamstrings", guide.Muscles)
	assert.Len(t, guide.Steps, 4)

	unknown := workouts.GuideFor("Underwater Basket Weaving")
	assert.Equal(t, "generic", unknown.AnimationType)
	assert.NotEmpty(t, unknown.Steps)
}
