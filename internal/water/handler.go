package water

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/vstanisic/fitpal/internal/telemetry/tracing"
	"github.com/vstanisic/fitpal/pkg"

	log "github.com/sirupsen/logrus"
)

type TodayResponse struct {
	Date    string `json:"date"`
	Glasses int    `json:"glasses"`
	Goal    int    `json:"goal"`
}

type AddGlassResponse struct {
	TodayResponse
	GoalReached bool `json:"goalReached"`
}

type SetGoalRequest struct {
	Goal int `json:"goal"`
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

func (handler *Handler) HandleToday(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.water.today")
	defer span.End()

	state, err := handler.tracker.Today(ctx, handler.now())
	if err != nil {
		log.Errorf("failed to load water state: %s", err)
		http.Error(w, "error, failed to load water state", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(TodayResponse{
		Date:    state.Date,
		Glasses: state.Glasses,
		Goal:    handler.tracker.Goal(ctx),
	})
	if err != nil {
		log.Errorf("failed to marshal water state: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleAddGlass(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.water.addGlass")
	defer span.End()

	state, goalReached, err := handler.tracker.AddGlass(ctx, handler.now())
	if err != nil {
		log.Errorf("failed to add glass: %s", err)
		http.Error(w, "error, failed to add glass", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(AddGlassResponse{
		TodayResponse: TodayResponse{
			Date:    state.Date,
			Glasses: state.Glasses,
			Goal:    handler.tracker.Goal(ctx),
		},
		GoalReached: goalReached,
	})
	if err != nil {
		log.Errorf("failed to marshal add glass response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if goalReached {
		log.Debugf("water goal reached: %d glasses", state.Glasses)
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleRemoveGlass(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.water.removeGlass")
	defer span.End()

	state, err := handler.tracker.RemoveGlass(ctx, handler.now())
	if err != nil {
		log.Errorf("failed to remove glass: %s", err)
		http.Error(w, "error, failed to remove glass", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(TodayResponse{
		Date:    state.Date,
		Glasses: state.Glasses,
		Goal:    handler.tracker.Goal(ctx),
	})
	if err != nil {
		log.Errorf("failed to marshal remove glass response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleSetGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.water.setGoal")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req SetGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("set water goal, unmarshal json params: %s", err)
		http.Error(w, "set water goal failed", http.StatusBadRequest)
		return
	}

	if err := handler.tracker.SetGoal(ctx, req.Goal); err != nil {
		if errors.Is(err, ErrInvalidGoal) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("failed to set water goal: %s", err)
		http.Error(w, "error, failed to set water goal", http.StatusInternalServerError)
		return
	}

	log.Debugf("water goal set to %d", req.Goal)
	pkg.WriteJSONResponseOK(w, `{"updated":true}`)
}
