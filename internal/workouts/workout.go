package workouts

import "errors"

var (
	ErrWorkoutDayNotFound  = errors.New("workout day not found")
	ErrExerciseNotFound    = errors.New("exercise not found")
	ErrDuplicateExerciseID = errors.New("duplicate exercise id")
)

type Exercise struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Sets         int    `json:"sets,omitempty"`
	Reps         string `json:"reps,omitempty"`
	Weight       string `json:"weight,omitempty"`
	Time         string `json:"time,omitempty"`
	Speed        string `json:"speed,omitempty"`
	Incline      string `json:"incline,omitempty"`
	Instructions string `json:"instructions,omitempty"`
	// Completed is part of the persisted shape for backwards compatibility,
	// but the actual completion state lives in the progress history.
	Completed bool `json:"completed"`
}

type WorkoutSection struct {
	Name      string     `json:"name"`
	Exercises []Exercise `json:"exercises"`
}

type WorkoutDay struct {
	ID       string           `json:"id"`
	Day      string           `json:"day"`
	Title    string           `json:"title"`
	Sections []WorkoutSection `json:"sections"`
	Icon     string           `json:"icon,omitempty"`
	Gradient []string         `json:"gradient,omitempty"`
	Image    string           `json:"image,omitempty"`
}

// ExerciseIDs returns the ids of all exercises in the day, in display order.
func (d WorkoutDay) ExerciseIDs() []string {
	var ids []string
	for _, section := range d.Sections {
		for _, exercise := range section.Exercises {
			ids = append(ids, exercise.ID)
		}
	}
	return ids
}
