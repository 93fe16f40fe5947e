package schedule

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/vstanisic/fitpal/internal/telemetry/tracing"
	"github.com/vstanisic/fitpal/internal/workouts"
	"github.com/vstanisic/fitpal/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type programResolver interface {
	EffectiveProgram(ctx context.Context) []workouts.WorkoutDay
}

type DisplayScheduleResponse struct {
	Entries []Entry `json:"entries"`
	Total   int     `json:"total"`
}

type Handler struct {
	resolver *Resolver
	catalog  programResolver
	now      func() time.Time
}

func NewHandler(resolver *Resolver, catalog programResolver, now func() time.Time) *Handler {
	return &Handler{
		resolver: resolver,
		catalog:  catalog,
		now:      now,
	}
}

func (handler *Handler) HandleGetDisplaySchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.display")
	defer span.End()

	program := handler.catalog.EffectiveProgram(ctx)
	entries := handler.resolver.DisplaySchedule(ctx, program, handler.now())
	if entries == nil {
		entries = []Entry{}
	}

	respJson, err := json.Marshal(DisplayScheduleResponse{
		Entries: entries,
		Total:   len(entries),
	})
	if err != nil {
		log.Errorf("marshal display schedule error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleGetWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.week")
	defer span.End()

	weekJson, err := json.Marshal(handler.resolver.Week(ctx))
	if err != nil {
		log.Errorf("marshal week schedule error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, weekJson, http.StatusOK)
}

func (handler *Handler) HandleSetDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.setDay")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	weekdayName := mux.Vars(r)["weekday"]
	weekday, err := ParseWeekday(weekdayName)
	if err != nil {
		http.Error(w, "error, invalid weekday", http.StatusBadRequest)
		return
	}

	var day DaySchedule
	if err := json.NewDecoder(r.Body).Decode(&day); err != nil {
		log.Tracef("set day schedule, unmarshal json params: %s", err)
		http.Error(w, "set day schedule failed", http.StatusBadRequest)
		return
	}

	if day.WorkoutIndex < -1 {
		http.Error(w, "error, invalid workout index", http.StatusBadRequest)
		return
	}

	if err := handler.resolver.SetDay(ctx, weekday, day); err != nil {
		log.Errorf("failed to set day schedule [%s]: %s", weekdayName, err)
		http.Error(w, "error, failed to set day schedule", http.StatusInternalServerError)
		return
	}

	log.Debugf("schedule updated: %s -> index %d, enabled %t", weekdayName, day.WorkoutIndex, day.Enabled)
	pkg.WriteJSONResponseOK(w, `{"updated":true}`)
}

func (handler *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.reset")
	defer span.End()

	if err := handler.resolver.Reset(ctx); err != nil {
		log.Errorf("failed to reset schedule: %s", err)
		http.Error(w, "error, failed to reset schedule", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"reset":true}`)
}
