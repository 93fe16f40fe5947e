package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/vstanisic/fitpal/internal/store"
	"github.com/vstanisic/fitpal/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// Catalog resolves the effective workout program: the user-customized
// program when one is saved, the built-in default otherwise. All
// mutations are whole-program read-modify-write operations, serialized
// with a mutex so two rapid edits cannot lose each other's write.
type Catalog struct {
	store store.Store
	mutex sync.Mutex
}

func NewCatalog(s store.Store) *Catalog {
	return &Catalog{
		store: s,
	}
}

// EffectiveProgram never fails: a missing, empty or corrupt custom
// program falls back to the built-in default.
func (c *Catalog) EffectiveProgram(ctx context.Context) []WorkoutDay {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workouts.effectiveProgram")
	defer span.End()

	value, err := c.store.Get(ctx, store.KeyCustomWorkouts)
	if errors.Is(err, store.ErrKeyNotFound) {
		return DefaultProgram()
	}
	if err != nil {
		log.Errorf("load custom workouts: %s", err)
		return DefaultProgram()
	}

	var program []WorkoutDay
	if err := json.Unmarshal([]byte(value), &program); err != nil {
		log.Errorf("unmarshal custom workouts, falling back to default: %s", err)
		return DefaultProgram()
	}
	if len(program) == 0 {
		return DefaultProgram()
	}

	return program
}

// SaveProgram replaces the whole custom program. Exercise ids must be
// unique across the entire program, since progress tracking keys on them.
func (c *Catalog) SaveProgram(ctx context.Context, program []WorkoutDay) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workouts.saveProgram")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("program.days", len(program)))

	if err := validateProgram(program); err != nil {
		return err
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	return c.saveProgram(ctx, program)
}

// ResetToDefault persists an empty custom program, which makes
// subsequent reads fall back to the built-in default.
func (c *Catalog) ResetToDefault(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workouts.resetToDefault")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	c.mutex.Lock()
	defer c.mutex.Unlock()

	return c.store.Set(ctx, store.KeyCustomWorkouts, "[]")
}

// AddExercise appends the exercise to the named section of the given day
// (or to the day's first section when the section name is not found),
// and persists the resulting program.
func (c *Catalog) AddExercise(ctx context.Context, dayID, sectionName string, exercise Exercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workouts.addExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("day.id", dayID),
		attribute.String("exercise.id", exercise.ID),
	)

	c.mutex.Lock()
	defer c.mutex.Unlock()

	program := c.EffectiveProgram(ctx)

	for _, day := range program {
		for _, id := range day.ExerciseIDs() {
			if id == exercise.ID {
				return fmt.Errorf("%w: %s", ErrDuplicateExerciseID, exercise.ID)
			}
		}
	}

	day := findDay(program, dayID)
	if day == nil {
		return fmt.Errorf("%w: %s", ErrWorkoutDayNotFound, dayID)
	}
	if len(day.Sections) == 0 {
		day.Sections = append(day.Sections, WorkoutSection{Name: "Exercises"})
	}

	sectionIndex := 0
	for i := range day.Sections {
		if day.Sections[i].Name == sectionName {
			sectionIndex = i
			break
		}
	}
	day.Sections[sectionIndex].Exercises = append(day.Sections[sectionIndex].Exercises, exercise)

	return c.saveProgram(ctx, program)
}

// UpdateExercise replaces the exercise with a matching id within the
// given day. A missing id is an error, not a silent append.
func (c *Catalog) UpdateExercise(ctx context.Context, dayID string, exercise Exercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workouts.updateExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("day.id", dayID),
		attribute.String("exercise.id", exercise.ID),
	)

	c.mutex.Lock()
	defer c.mutex.Unlock()

	program := c.EffectiveProgram(ctx)
	day := findDay(program, dayID)
	if day == nil {
		return fmt.Errorf("%w: %s", ErrWorkoutDayNotFound, dayID)
	}

	for si := range day.Sections {
		for ei := range day.Sections[si].Exercises {
			if day.Sections[si].Exercises[ei].ID == exercise.ID {
				day.Sections[si].Exercises[ei] = exercise
				return c.saveProgram(ctx, program)
			}
		}
	}

	return fmt.Errorf("%w: %s", ErrExerciseNotFound, exercise.ID)
}

// DeleteExercise removes the exercise from every section of the given day.
func (c *Catalog) DeleteExercise(ctx context.Context, dayID, exerciseID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workouts.deleteExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("day.id", dayID),
		attribute.String("exercise.id", exerciseID),
	)

	c.mutex.Lock()
	defer c.mutex.Unlock()

	program := c.EffectiveProgram(ctx)
	day := findDay(program, dayID)
	if day == nil {
		return fmt.Errorf("%w: %s", ErrWorkoutDayNotFound, dayID)
	}

	found := false
	for si := range day.Sections {
		exercises := day.Sections[si].Exercises[:0]
		for _, e := range day.Sections[si].Exercises {
			if e.ID == exerciseID {
				found = true
				continue
			}
			exercises = append(exercises, e)
		}
		day.Sections[si].Exercises = exercises
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrExerciseNotFound, exerciseID)
	}

	return c.saveProgram(ctx, program)
}

func (c *Catalog) saveProgram(ctx context.Context, program []WorkoutDay) error {
	programJson, err := json.Marshal(program)
	if err != nil {
		return fmt.Errorf("marshal program: %w", err)
	}
	return c.store.Set(ctx, store.KeyCustomWorkouts, string(programJson))
}

func findDay(program []WorkoutDay, dayID string) *WorkoutDay {
	for i := range program {
		if program[i].ID == dayID {
			return &program[i]
		}
	}
	return nil
}

func validateProgram(program []WorkoutDay) error {
	seen := make(map[string]struct{})
	for _, day := range program {
		if day.ID == "" {
			return errors.New("workout day id empty")
		}
		for _, id := range day.ExerciseIDs() {
			if id == "" {
				return fmt.Errorf("workout day %s: exercise id empty", day.ID)
			}
			if _, ok := seen[id]; ok {
				return fmt.Errorf("%w: %s", ErrDuplicateExerciseID, id)
			}
			seen[id] = struct{}{}
		}
	}
	return nil
}
