package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/vstanisic/fitpal/internal/store"
	"github.com/vstanisic/fitpal/internal/telemetry/tracing"
	"github.com/vstanisic/fitpal/internal/workouts"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// Entry is one scheduled workout in the weekly display.
type Entry struct {
	WorkoutDay   workouts.WorkoutDay `json:"workoutDay"`
	WeekdayIndex int                 `json:"weekdayIndex"` // 0=Sunday .. 6=Saturday
	IsToday      bool                `json:"isToday"`
}

// Resolver maps calendar weekdays to workout days. Two modes exist:
// an explicitly persisted WeekSchedule, and a legacy fallback where
// program[i] is assigned to weekday i+1 (Monday onwards).
type Resolver struct {
	store store.Store
	mutex sync.Mutex
}

func NewResolver(s store.Store) *Resolver {
	return &Resolver{
		store: s,
	}
}

// load returns the persisted schedule, or nil when none (or a corrupt one)
// is stored, which means legacy mode.
func (r *Resolver) load(ctx context.Context) *WeekSchedule {
	value, err := r.store.Get(ctx, store.KeyWorkoutSchedule)
	if errors.Is(err, store.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		log.Errorf("load workout schedule: %s", err)
		return nil
	}

	var ws WeekSchedule
	if err := json.Unmarshal([]byte(value), &ws); err != nil {
		log.Errorf("unmarshal workout schedule, falling back to legacy mode: %s", err)
		return nil
	}
	return &ws
}

// DisplaySchedule resolves the given program against the persisted schedule
// for display. Only enabled days with a workout index resolving to an
// existing program entry are included. In legacy mode the mapping is capped
// at Saturday, so an oversized program never maps past the week's end.
func (r *Resolver) DisplaySchedule(ctx context.Context, program []workouts.WorkoutDay, now time.Time) []Entry {
	ctx, span := tracing.GlobalTracer.Start(ctx, "schedule.display")
	defer span.End()

	today := int(now.Weekday())
	var entries []Entry

	ws := r.load(ctx)
	if ws == nil {
		days := len(program)
		if days > 6 {
			days = 6
		}
		for i := 0; i < days; i++ {
			weekday := i + 1 // Monday onwards
			entries = append(entries, Entry{
				WorkoutDay:   program[i],
				WeekdayIndex: weekday,
				IsToday:      weekday == today,
			})
		}
		return entries
	}

	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		day := ws.Day(weekday)
		if !day.Enabled {
			continue
		}
		if day.WorkoutIndex < 0 || day.WorkoutIndex >= len(program) {
			continue
		}
		entries = append(entries, Entry{
			WorkoutDay:   program[day.WorkoutIndex],
			WeekdayIndex: int(weekday),
			IsToday:      int(weekday) == today,
		})
	}
	return entries
}

// SetDay updates exactly one weekday's assignment and persists the whole
// schedule. When no schedule was persisted yet, the default schedule is
// materialized first.
func (r *Resolver) SetDay(ctx context.Context, weekday time.Weekday, day DaySchedule) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "schedule.setDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("weekday", weekday.String()),
		attribute.Int("workout.index", day.WorkoutIndex),
		attribute.Bool("enabled", day.Enabled),
	)

	if day.WorkoutIndex < -1 {
		return fmt.Errorf("invalid workout index: %d", day.WorkoutIndex)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	ws := r.load(ctx)
	if ws == nil {
		defaultWs := DefaultWeekSchedule()
		ws = &defaultWs
	}

	if err := ws.SetDay(weekday, day); err != nil {
		return err
	}

	return r.save(ctx, *ws)
}

// Reset persists the default schedule.
func (r *Resolver) Reset(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "schedule.reset")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.save(ctx, DefaultWeekSchedule())
}

// Week returns the persisted schedule, or the default when none is stored.
func (r *Resolver) Week(ctx context.Context) WeekSchedule {
	if ws := r.load(ctx); ws != nil {
		return *ws
	}
	return DefaultWeekSchedule()
}

func (r *Resolver) save(ctx context.Context, ws WeekSchedule) error {
	wsJson, err := json.Marshal(ws)
	if err != nil {
		return fmt.Errorf("marshal schedule: %w", err)
	}
	return r.store.Set(ctx, store.KeyWorkoutSchedule, string(wsJson))
}
