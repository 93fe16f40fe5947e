package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vstanisic/fitpal/internal/telemetry/tracing"
	"github.com/vstanisic/fitpal/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=catalog_mocks_test.go -package=workouts_test

type workoutsCatalog interface {
	EffectiveProgram(ctx context.Context) []WorkoutDay
	SaveProgram(ctx context.Context, program []WorkoutDay) error
	ResetToDefault(ctx context.Context) error
	AddExercise(ctx context.Context, dayID, sectionName string, exercise Exercise) error
	UpdateExercise(ctx context.Context, dayID string, exercise Exercise) error
	DeleteExercise(ctx context.Context, dayID, exerciseID string) error
}

type ProgramResponse struct {
	Program []WorkoutDay `json:"program"`
	Total   int          `json:"total"`
}

type Handler struct {
	catalog workoutsCatalog
}

func NewHandler(catalog workoutsCatalog) *Handler {
	return &Handler{
		catalog: catalog,
	}
}

func (handler *Handler) HandleGetProgram(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.program")
	defer span.End()

	program := handler.catalog.EffectiveProgram(ctx)

	programJson, err := json.Marshal(ProgramResponse{
		Program: program,
		Total:   len(program),
	})
	if err != nil {
		log.Errorf("marshal program error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, programJson, http.StatusOK)
}

func (handler *Handler) HandleSaveProgram(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.save")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var program []WorkoutDay
	if err := json.NewDecoder(r.Body).Decode(&program); err != nil {
		log.Tracef("save program, unmarshal json params: %s", err)
		http.Error(w, "save program failed", http.StatusBadRequest)
		return
	}

	if err := handler.catalog.SaveProgram(ctx, program); err != nil {
		if errors.Is(err, ErrDuplicateExerciseID) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("failed to save program: %s", err)
		http.Error(w, "error, failed to save program", http.StatusInternalServerError)
		return
	}

	log.Debugf("custom program saved, %d days", len(program))
	pkg.WriteJSONResponseOK(w, `{"saved":true}`)
}

func (handler *Handler) HandleResetProgram(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.reset")
	defer span.End()

	if err := handler.catalog.ResetToDefault(ctx); err != nil {
		log.Errorf("failed to reset program: %s", err)
		http.Error(w, "error, failed to reset program", http.StatusInternalServerError)
		return
	}

	log.Debugln("custom program reset to default")
	pkg.WriteJSONResponseOK(w, `{"reset":true}`)
}

type AddExerciseRequest struct {
	Section  string   `json:"section"`
	Exercise Exercise `json:"exercise"`
}

func (handler *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.addExercise")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	dayID := mux.Vars(r)["dayId"]
	if dayID == "" {
		http.Error(w, "error, day id empty", http.StatusBadRequest)
		return
	}

	var req AddExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("add exercise, unmarshal json params: %s", err)
		http.Error(w, "add exercise failed", http.StatusBadRequest)
		return
	}

	if req.Exercise.ID == "" || req.Exercise.Name == "" {
		http.Error(w, "error, exercise id or name empty", http.StatusBadRequest)
		return
	}

	if err := handler.catalog.AddExercise(ctx, dayID, req.Section, req.Exercise); err != nil {
		switch {
		case errors.Is(err, ErrWorkoutDayNotFound):
			http.Error(w, "workout day not found", http.StatusNotFound)
		case errors.Is(err, ErrDuplicateExerciseID):
			http.Error(w, "exercise id already in use", http.StatusBadRequest)
		default:
			log.Errorf("failed to add exercise [%s] to day [%s]: %s", req.Exercise.ID, dayID, err)
			http.Error(w, "error, failed to add exercise", http.StatusInternalServerError)
		}
		return
	}

	log.Debugf("exercise added: [%s] to day [%s]", req.Exercise.ID, dayID)
	pkg.WriteResponse(w, pkg.ContentType.JSON, `{"added":true}`, http.StatusCreated)
}

func (handler *Handler) HandleUpdateExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.updateExercise")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	dayID := mux.Vars(r)["dayId"]
	if dayID == "" {
		http.Error(w, "error, day id empty", http.StatusBadRequest)
		return
	}

	var exercise Exercise
	if err := json.NewDecoder(r.Body).Decode(&exercise); err != nil {
		log.Tracef("update exercise, unmarshal json params: %s", err)
		http.Error(w, "update exercise failed", http.StatusBadRequest)
		return
	}

	if exercise.ID == "" || exercise.Name == "" {
		http.Error(w, "error, exercise id or name empty", http.StatusBadRequest)
		return
	}

	if err := handler.catalog.UpdateExercise(ctx, dayID, exercise); err != nil {
		switch {
		case errors.Is(err, ErrWorkoutDayNotFound):
			http.Error(w, "workout day not found", http.StatusNotFound)
		case errors.Is(err, ErrExerciseNotFound):
			http.Error(w, "exercise not found", http.StatusNotFound)
		default:
			log.Errorf("failed to update exercise [%s] in day [%s]: %s", exercise.ID, dayID, err)
			http.Error(w, "error, failed to update exercise", http.StatusInternalServerError)
		}
		return
	}

	log.Debugf("exercise updated: [%s] in day [%s]", exercise.ID, dayID)
	pkg.WriteJSONResponseOK(w, `{"updated":true}`)
}

func (handler *Handler) HandleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.deleteExercise")
	defer span.End()

	vars := mux.Vars(r)
	dayID := vars["dayId"]
	exerciseID := vars["id"]
	if dayID == "" || exerciseID == "" {
		http.Error(w, "error, day id or exercise id empty", http.StatusBadRequest)
		return
	}

	if err := handler.catalog.DeleteExercise(ctx, dayID, exerciseID); err != nil {
		switch {
		case errors.Is(err, ErrWorkoutDayNotFound):
			http.Error(w, "workout day not found", http.StatusNotFound)
		case errors.Is(err, ErrExerciseNotFound):
			http.Error(w, "exercise not found", http.StatusNotFound)
		default:
			log.Errorf("failed to delete exercise [%s] from day [%s]: %s", exerciseID, dayID, err)
			http.Error(w, "error, failed to delete exercise", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSONResponseOK(w, `{"deleted":true}`)
}

func (handler *Handler) HandleGetGuide(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.guide")
	defer span.End()

	name := mux.Vars(r)["name"]
	if name == "" {
		http.Error(w, "error, exercise name empty", http.StatusBadRequest)
		return
	}

	guideJson, err := json.Marshal(GuideFor(name))
	if err != nil {
		log.Errorf("marshal guide error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, guideJson, http.StatusOK)
}
