package water

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/vstanisic/fitpal/internal/store"
	"github.com/vstanisic/fitpal/internal/telemetry/metrics"
	"github.com/vstanisic/fitpal/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	DateFormat = "2006-01-02"

	MinGoal     = 1
	MaxGoal     = 20
	DefaultGoal = 8
)

var ErrInvalidGoal = fmt.Errorf("daily goal must be between %d and %d", MinGoal, MaxGoal)

// State is the persisted daily water intake. Glasses resets to zero
// whenever the stored date differs from the current local date.
type State struct {
	Date    string `json:"date"`
	Glasses int    `json:"glasses"`
}

// Tracker counts glasses of water per calendar day. All operations take
// an explicit now so the midnight rollover is deterministic.
type Tracker struct {
	store   store.Store
	metrics *metrics.Manager
	mutex   sync.Mutex
}

func NewTracker(s store.Store, metricsManager *metrics.Manager) *Tracker {
	return &Tracker{
		store:   s,
		metrics: metricsManager,
	}
}

// Today returns the current day's state, applying the midnight rollover
// if the persisted date is stale. Safe to call redundantly: re-checking
// an already rolled-over date is a no-op.
func (t *Tracker) Today(ctx context.Context, now time.Time) (State, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "water.today")
	defer span.End()

	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.loadToday(ctx, now)
}

// AddGlass increments today's count by one, refusing increments at or
// above the daily goal. goalReached is true only on the increment that
// hits the goal exactly, for a one-shot celebration effect.
func (t *Tracker) AddGlass(ctx context.Context, now time.Time) (_ State, goalReached bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "water.addGlass")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	t.mutex.Lock()
	defer t.mutex.Unlock()

	state, err := t.loadToday(ctx, now)
	if err != nil {
		return State{}, false, err
	}

	goal := t.goal(ctx)
	if state.Glasses >= goal {
		return state, false, nil
	}

	state.Glasses++
	if err := t.save(ctx, state); err != nil {
		return State{}, false, err
	}

	t.metrics.CounterWaterGlasses.Inc()
	span.SetAttributes(attribute.Int("glasses", state.Glasses))

	return state, state.Glasses == goal, nil
}

// RemoveGlass decrements today's count by one, never below zero.
func (t *Tracker) RemoveGlass(ctx context.Context, now time.Time) (_ State, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "water.removeGlass")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	t.mutex.Lock()
	defer t.mutex.Unlock()

	state, err := t.loadToday(ctx, now)
	if err != nil {
		return State{}, err
	}

	if state.Glasses <= 0 {
		return state, nil
	}

	state.Glasses--
	if err := t.save(ctx, state); err != nil {
		return State{}, err
	}

	return state, nil
}

// SetGoal persists the daily goal. Already-logged glasses above a newly
// lowered goal are not clamped.
func (t *Tracker) SetGoal(ctx context.Context, goal int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "water.setGoal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("goal", goal))

	if goal < MinGoal || goal > MaxGoal {
		return ErrInvalidGoal
	}

	return t.store.Set(ctx, store.KeyWaterGoal, strconv.Itoa(goal))
}

// Goal returns the persisted daily goal, or the default when absent
// or unreadable.
func (t *Tracker) Goal(ctx context.Context) int {
	ctx, span := tracing.GlobalTracer.Start(ctx, "water.goal")
	defer span.End()

	return t.goal(ctx)
}

// RunRolloverChecks re-applies the midnight rollover on every tick until
// the context is cancelled. Meant to run in its own goroutine.
func (t *Tracker) RunRolloverChecks(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debugln("water rollover checks stopped")
			return
		case <-ticker.C:
			if _, err := t.Today(ctx, time.Now()); err != nil {
				log.Errorf("water rollover check: %s", err)
			}
		}
	}
}

func (t *Tracker) goal(ctx context.Context) int {
	value, err := t.store.Get(ctx, store.KeyWaterGoal)
	if errors.Is(err, store.ErrKeyNotFound) {
		return DefaultGoal
	}
	if err != nil {
		log.Errorf("load water goal: %s", err)
		return DefaultGoal
	}

	goal, err := strconv.Atoi(value)
	if err != nil || goal < MinGoal || goal > MaxGoal {
		log.Errorf("invalid persisted water goal %q, using default", value)
		return DefaultGoal
	}
	return goal
}

// loadToday must be called with the mutex held.
func (t *Tracker) loadToday(ctx context.Context, now time.Time) (State, error) {
	today := now.Format(DateFormat)

	value, err := t.store.Get(ctx, store.KeyWaterIntake)
	if err != nil && !errors.Is(err, store.ErrKeyNotFound) {
		log.Errorf("load water intake: %s", err)
	}

	var state State
	if err == nil {
		if err := json.Unmarshal([]byte(value), &state); err != nil {
			log.Errorf("unmarshal water intake, resetting: %s", err)
			state = State{}
		}
	}

	if state.Date == today {
		return state, nil
	}

	// midnight rollover (or first ever load)
	state = State{
		Date:    today,
		Glasses: 0,
	}
	if err := t.save(ctx, state); err != nil {
		return State{}, err
	}
	return state, nil
}

func (t *Tracker) save(ctx context.Context, state State) error {
	stateJson, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal water state: %w", err)
	}
	return t.store.Set(ctx, store.KeyWaterIntake, string(stateJson))
}
