package progress

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/vstanisic/fitpal/internal/telemetry/tracing"
	"github.com/vstanisic/fitpal/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type ToggleResponse struct {
	ExerciseID string `json:"exerciseId"`
	Completed  bool   `json:"completed"`
}

type TodayCompletedResponse struct {
	DayID              string   `json:"dayId"`
	CompletedExercises []string `json:"completedExercises"`
}

type StreakResponse struct {
	Streak int `json:"streak"`
}

type Handler struct {
	tracker *Tracker
	now     func() time.Time
}

func NewHandler(tracker *Tracker, now func() time.Time) *Handler {
	return &Handler{
		tracker: tracker,
		now:     now,
	}
}

func (handler *Handler) HandleToggleExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.toggle")
	defer span.End()

	vars := mux.Vars(r)
	dayID := vars["dayId"]
	exerciseID := vars["exerciseId"]
	if dayID == "" || exerciseID == "" {
		http.Error(w, "error, day id or exercise id empty", http.StatusBadRequest)
		return
	}

	completed, err := handler.tracker.ToggleExercise(ctx, dayID, exerciseID, handler.now())
	if err != nil {
		log.Errorf("failed to toggle exercise [%s] for day [%s]: %s", exerciseID, dayID, err)
		http.Error(w, "error, failed to toggle exercise", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ToggleResponse{
		ExerciseID: exerciseID,
		Completed:  completed,
	})
	if err != nil {
		log.Errorf("failed to marshal toggle response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	log.Debugf("exercise [%s] toggled for day [%s]: completed=%t", exerciseID, dayID, completed)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleTodayCompleted(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.today")
	defer span.End()

	dayID := mux.Vars(r)["dayId"]
	if dayID == "" {
		http.Error(w, "error, day id empty", http.StatusBadRequest)
		return
	}

	completed := handler.tracker.TodayCompleted(ctx, dayID, handler.now())

	respJson, err := json.Marshal(TodayCompletedResponse{
		DayID:              dayID,
		CompletedExercises: completed,
	})
	if err != nil {
		log.Errorf("failed to marshal today completed response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleResetDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.resetDay")
	defer span.End()

	dayID := mux.Vars(r)["dayId"]
	if dayID == "" {
		http.Error(w, "error, day id empty", http.StatusBadRequest)
		return
	}

	if err := handler.tracker.ResetDay(ctx, dayID, handler.now()); err != nil {
		log.Errorf("failed to reset day [%s]: %s", dayID, err)
		http.Error(w, "error, failed to reset day progress", http.StatusInternalServerError)
		return
	}

	log.Debugf("progress reset for day [%s]", dayID)
	pkg.WriteJSONResponseOK(w, fmt.Sprintf(`{"dayId":%q,"reset":true}`, dayID))
}

func (handler *Handler) HandleWeeklyStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.weeklyStats")
	defer span.End()

	statsJson, err := json.Marshal(handler.tracker.WeeklyStats(ctx, handler.now()))
	if err != nil {
		log.Errorf("failed to marshal weekly stats: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, statsJson, http.StatusOK)
}

func (handler *Handler) HandleStreak(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.streak")
	defer span.End()

	respJson, err := json.Marshal(StreakResponse{
		Streak: handler.tracker.CurrentStreak(ctx, handler.now()),
	})
	if err != nil {
		log.Errorf("failed to marshal streak response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleWeeklyChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.weeklyChart")
	defer span.End()

	chartJson, err := json.Marshal(handler.tracker.WeeklyChart(ctx, handler.now()))
	if err != nil {
		log.Errorf("failed to marshal weekly chart: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, chartJson, http.StatusOK)
}
