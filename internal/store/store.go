package store

import (
	"context"
	"errors"
)

// Keys under which the app state blobs are persisted. All values are
// whole JSON blobs, rewritten on every change.
const (
	KeyWorkoutHistory  = "workout-history"
	KeyCustomWorkouts  = "custom-workouts"
	KeyWorkoutSchedule = "workout-schedule"
	KeyWaterIntake     = "water-intake"
	KeyWaterGoal       = "water-goal"

	// KeyWorkoutProgress is the superseded pre-history progress blob,
	// kept only so old state can be recognized and ignored.
	KeyWorkoutProgress = "workout-progress"
)

var ErrKeyNotFound = errors.New("key not found")

// Store is the only I/O boundary for the app state. Get returns
// ErrKeyNotFound for keys never written.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
