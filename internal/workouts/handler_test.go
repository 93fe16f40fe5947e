package workouts_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vstanisic/fitpal/internal/workouts"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_HandleGetProgram(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalogMock := NewMockworkoutsCatalog(ctrl)
	h := workouts.NewHandler(catalogMock)

	catalogMock.EXPECT().
		EffectiveProgram(gomock.Any()).
		Return(workouts.DefaultProgram())

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("GET", "/workouts", nil)
	require.NoError(t, err)

	h.HandleGetProgram(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp workouts.ProgramResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.Total)
	assert.Equal(t, workouts.DefaultProgram(), resp.Program)
}

func TestHandler_HandleSaveProgram(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalogMock := NewMockworkoutsCatalog(ctrl)
	h := workouts.NewHandler(catalogMock)

	program := []workouts.WorkoutDay{
		{
			ID: "full-body",
			Sections: []workouts.WorkoutSection{
				{Name: "S", Exercises: []workouts.Exercise{{ID: "fb-1", Name: "Barbell Squat"}}},
			},
		},
	}
	programJson, err := json.Marshal(program)
	require.NoError(t, err)

	catalogMock.EXPECT().
		SaveProgram(gomock.Any(), program).
		Return(nil)

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("POST", "/workouts", bytes.NewReader(programJson))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	h.HandleSaveProgram(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"saved":true}`, rec.Body.String())
}

func TestHandler_HandleSaveProgram_duplicateID(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalogMock := NewMockworkoutsCatalog(ctrl)
	h := workouts.NewHandler(catalogMock)

	catalogMock.EXPECT().
		SaveProgram(gomock.Any(), gomock.Any()).
		Return(workouts.ErrDuplicateExerciseID)

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("POST", "/workouts", bytes.NewReader([]byte(`[]`)))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	h.HandleSaveProgram(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_HandleSaveProgram_invalidContentType(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalogMock := NewMockworkoutsCatalog(ctrl)
	h := workouts.NewHandler(catalogMock)

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("POST", "/workouts", bytes.NewReader([]byte(`[]`)))
	require.NoError(t, err)

	h.HandleSaveProgram(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_HandleResetProgram(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalogMock := NewMockworkoutsCatalog(ctrl)
	h := workouts.NewHandler(catalogMock)

	catalogMock.EXPECT().
		ResetToDefault(gomock.Any()).
		Return(nil)

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("DELETE", "/workouts", nil)
	require.NoError(t, err)

	h.HandleResetProgram(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"reset":true}`, rec.Body.String())
}

func TestHandler_HandleAddExercise(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalogMock := NewMockworkoutsCatalog(ctrl)
	h := workouts.NewHandler(catalogMock)

	newEx := workouts.Exercise{ID: "ub-chest-fly", Name: "Chest Fly", Sets: 3, Reps: "12"}
	reqBody, err := json.Marshal(workouts.AddExerciseRequest{
		Section:  "Strength",
		Exercise: newEx,
	})
	require.NoError(t, err)

	catalogMock.EXPECT().
		AddExercise(gomock.Any(), "upper-body", "Strength", newEx).
		Return(nil)

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("POST", "/workouts/day/upper-body/exercises", bytes.NewReader(reqBody))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req = mux.SetURLVars(req, map[string]string{"dayId": "upper-body"})

	h.HandleAddExercise(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, `{"added":true}`, rec.Body.String())
}

func TestHandler_HandleUpdateExercise_notFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalogMock := NewMockworkoutsCatalog(ctrl)
	h := workouts.NewHandler(catalogMock)

	exercise := workouts.Exercise{ID: "no-such", Name: "Ghost Exercise"}
	exerciseJson, err := json.Marshal(exercise)
	require.NoError(t, err)

	catalogMock.EXPECT().
		UpdateExercise(gomock.Any(), "upper-body", exercise).
		Return(workouts.ErrExerciseNotFound)

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("PUT", "/workouts/day/upper-body/exercises", bytes.NewReader(exerciseJson))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req = mux.SetURLVars(req, map[string]string{"dayId": "upper-body"})

	h.HandleUpdateExercise(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_HandleDeleteExercise(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalogMock := NewMockworkoutsCatalog(ctrl)
	h := workouts.NewHandler(catalogMock)

	catalogMock.EXPECT().
		DeleteExercise(gomock.Any(), "upper-body", "ub-bicep-curl").
		Return(nil)

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("DELETE", "/workouts/day/upper-body/exercises/ub-bicep-curl", nil)
	require.NoError(t, err)
	req = mux.SetURLVars(req, map[string]string{"dayId": "upper-body", "id": "ub-bicep-curl"})

	h.HandleDeleteExercise(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"deleted":true}`, rec.Body.String())
}

func TestHandler_HandleGetGuide(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalogMock := NewMockworkoutsCatalog(ctrl)
	h := workouts.NewHandler(catalogMock)

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("GET", "/workouts/guide/Plank", nil)
	require.NoError(t, err)
	req = mux.SetURLVars(req, map[string]string{"name": "Plank"})

	h.HandleGetGuide(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var guide workouts.Guide
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &guide))
	assert.Equal(t, "Core, Abs, Shoulders", guide.Muscles)
}
