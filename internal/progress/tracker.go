package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/vstanisic/fitpal/internal/store"
	"github.com/vstanisic/fitpal/internal/telemetry/metrics"
	"github.com/vstanisic/fitpal/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// DateFormat is the local calendar date format used throughout
// the progress history.
const DateFormat = "2006-01-02"

// HistoryEntry records completed exercises for one (date, dayId) pair.
// At most one entry exists per pair.
type HistoryEntry struct {
	Date               string   `json:"date"`
	DayID              string   `json:"dayId"`
	CompletedExercises []string `json:"completedExercises"`
}

type WeeklyStats struct {
	TotalWorkoutSessions    int            `json:"totalWorkoutSessions"`
	TotalExercisesCompleted int            `json:"totalExercisesCompleted"`
	SessionsByDayID         map[string]int `json:"sessionsByDayId"`
}

// WeeklyChart holds the last 7 calendar dates ending today (ascending)
// and the total completed-exercise count per date, for bar chart display.
type WeeklyChart struct {
	Dates  []string `json:"dates"`
	Counts []int    `json:"counts"`
}

// Tracker owns the workout history blob: every mutation loads the whole
// history, modifies it and writes it back, serialized with a mutex.
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

// ToggleExercise flips the completion state of the exercise for
// (today, dayId) and reports the new state. Toggling twice restores
// the previous state.
func (t *Tracker) ToggleExercise(ctx context.Context, dayID, exerciseID string, now time.Time) (completed bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progress.toggle")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("day.id", dayID),
		attribute.String("exercise.id", exerciseID),
	)

	today := now.Format(DateFormat)

	t.mutex.Lock()
	defer t.mutex.Unlock()

	history := t.loadHistory(ctx)
	entry := findEntry(history, today, dayID)
	if entry == nil {
		history = append(history, HistoryEntry{
			Date:  today,
			DayID: dayID,
		})
		entry = &history[len(history)-1]
	}

	completed = true
	for i, id := range entry.CompletedExercises {
		if id == exerciseID {
			entry.CompletedExercises = append(
				entry.CompletedExercises[:i],
				entry.CompletedExercises[i+1:]...,
			)
			completed = false
			break
		}
	}
	if completed {
		entry.CompletedExercises = append(entry.CompletedExercises, exerciseID)
	}

	if err := t.saveHistory(ctx, history); err != nil {
		return false, err
	}

	t.metrics.CounterExerciseToggles.With(map[string]string{
		"completed": strconv.FormatBool(completed),
	}).Inc()

	return completed, nil
}

// TodayCompleted returns the completed exercise ids for (today, dayId),
// empty when there is no entry or the store is unreachable.
func (t *Tracker) TodayCompleted(ctx context.Context, dayID string, now time.Time) []string {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progress.todayCompleted")
	defer span.End()

	entry := findEntry(t.loadHistory(ctx), now.Format(DateFormat), dayID)
	if entry == nil {
		return []string{}
	}
	if entry.CompletedExercises == nil {
		return []string{}
	}
	return entry.CompletedExercises
}

// ResetDay clears the completed set for (today, dayId). The entry itself
// is kept (or created empty), matching the toggle semantics.
func (t *Tracker) ResetDay(ctx context.Context, dayID string, now time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progress.resetDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("day.id", dayID))

	today := now.Format(DateFormat)

	t.mutex.Lock()
	defer t.mutex.Unlock()

	history := t.loadHistory(ctx)
	entry := findEntry(history, today, dayID)
	if entry == nil {
		history = append(history, HistoryEntry{
			Date:  today,
			DayID: dayID,
		})
		entry = &history[len(history)-1]
	}
	entry.CompletedExercises = nil

	return t.saveHistory(ctx, history)
}

// WeeklyStats aggregates the history entries of the 7 calendar days
// ending today. Entries 7 or more days old are excluded.
func (t *Tracker) WeeklyStats(ctx context.Context, now time.Time) WeeklyStats {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progress.weeklyStats")
	defer span.End()

	window := weekWindow(now)
	stats := WeeklyStats{
		SessionsByDayID: make(map[string]int),
	}

	for _, entry := range t.loadHistory(ctx) {
		if _, ok := window[entry.Date]; !ok {
			continue
		}
		stats.TotalWorkoutSessions++
		stats.TotalExercisesCompleted += len(entry.CompletedExercises)
		stats.SessionsByDayID[entry.DayID]++
	}

	return stats
}

// CurrentStreak counts consecutive calendar days with at least one
// history entry, walking backward from today. No entry today means 0.
func (t *Tracker) CurrentStreak(ctx context.Context, now time.Time) int {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progress.currentStreak")
	defer span.End()

	distinct := make(map[string]struct{})
	for _, entry := range t.loadHistory(ctx) {
		distinct[entry.Date] = struct{}{}
	}

	dates := make([]string, 0, len(distinct))
	for date := range distinct {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	streak := 0
	for i, date := range dates {
		expected := now.AddDate(0, 0, -i).Format(DateFormat)
		if date != expected {
			break
		}
		streak++
	}
	return streak
}

// WeeklyChart returns the completed-exercise totals for the last 7
// calendar days ending today, in ascending date order. The window is the
// same one WeeklyStats uses, so the two always agree.
func (t *Tracker) WeeklyChart(ctx context.Context, now time.Time) WeeklyChart {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progress.weeklyChart")
	defer span.End()

	countPerDate := make(map[string]int)
	for _, entry := range t.loadHistory(ctx) {
		countPerDate[entry.Date] += len(entry.CompletedExercises)
	}

	chart := WeeklyChart{
		Dates:  make([]string, 0, 7),
		Counts: make([]int, 0, 7),
	}
	for i := 6; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format(DateFormat)
		chart.Dates = append(chart.Dates, date)
		chart.Counts = append(chart.Counts, countPerDate[date])
	}
	return chart
}

func (t *Tracker) loadHistory(ctx context.Context) []HistoryEntry {
	value, err := t.store.Get(ctx, store.KeyWorkoutHistory)
	if errors.Is(err, store.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		log.Errorf("load workout history: %s", err)
		return nil
	}

	var history []HistoryEntry
	if err := json.Unmarshal([]byte(value), &history); err != nil {
		log.Errorf("unmarshal workout history, treating as empty: %s", err)
		return nil
	}
	return history
}

func (t *Tracker) saveHistory(ctx context.Context, history []HistoryEntry) error {
	historyJson, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	return t.store.Set(ctx, store.KeyWorkoutHistory, string(historyJson))
}

func findEntry(history []HistoryEntry, date, dayID string) *HistoryEntry {
	for i := range history {
		if history[i].Date == date && history[i].DayID == dayID {
			return &history[i]
		}
	}
	return nil
}

// weekWindow returns the set of the 7 calendar dates ending today.
func weekWindow(now time.Time) map[string]struct{} {
	window := make(map[string]struct{}, 7)
	for i := 0; i < 7; i++ {
		window[now.AddDate(0, 0, -i).Format(DateFormat)] = struct{}{}
	}
	return window
}
