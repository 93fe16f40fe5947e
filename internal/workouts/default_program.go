package workouts

// DefaultProgram returns a fresh copy of the built-in 4 day split.
// Callers get their own copy, so mutating the result is safe.
func DefaultProgram() []WorkoutDay {
	return []WorkoutDay{
		{
			ID:       "upper-body",
			Day:      "Day 1",
			Title:    "Upper Body",
			Icon:     "barbell",
			Gradient: []string{"#667eea", "#764ba2"},
			Sections: []WorkoutSection{
				{
					Name: "Warm Up",
					Exercises: []Exercise{
						{ID: "ub-warmup", Name: "Warm Up", Time: "10 min", Speed: "5.5", Incline: "2"},
					},
				},
				{
					Name: "Strength",
					Exercises: []Exercise{
						{ID: "ub-lat-pulldown", Name: "Lat Pulldown", Sets: 3, Reps: "10-12", Weight: "40 kg"},
						{ID: "ub-seated-row", Name: "Seated Row", Sets: 3, Reps: "10-12", Weight: "35 kg"},
						{ID: "ub-shoulder-press", Name: "DB Shoulder Press", Sets: 3, Reps: "8-10", Weight: "2x12 kg"},
						{ID: "ub-bicep-curl", Name: "DB Bicep Curl", Sets: 3, Reps: "10-12", Weight: "2x10 kg"},
						{ID: "ub-triceps-pushdown", Name: "Triceps Pushdown", Sets: 3, Reps: "10-12", Weight: "25 kg"},
					},
				},
				{
					Name: "Cool Down",
					Exercises: []Exercise{
						{ID: "ub-cardio", Name: "Cardio", Time: "15 min", Speed: "6.0", Incline: "1"},
					},
				},
			},
		},
		{
			ID:       "lower-body",
			Day:      "Day 2",
			Title:    "Lower Body",
			Icon:     "walk",
			Gradient: []string{"#f093fb", "#f5576c"},
			Sections: []WorkoutSection{
				{
					Name: "Warm Up",
					Exercises: []Exercise{
						{ID: "lb-warmup", Name: "Warm Up", Time: "10 min", Speed: "5.5", Incline: "3"},
					},
				},
				{
					Name: "Strength",
					Exercises: []Exercise{
						{ID: "lb-squat", Name: "Barbell Squat", Sets: 4, Reps: "8-10", Weight: "50 kg"},
						{ID: "lb-romanian-deadlift", Name: "Romanian Deadlift", Sets: 3, Reps: "10-12", Weight: "40 kg"},
						{ID: "lb-leg-press", Name: "Leg Press", Sets: 3, Reps: "10-12", Weight: "90 kg"},
					},
				},
				{
					Name: "Core",
					Exercises: []Exercise{
						{ID: "lb-plank", Name: "Plank", Sets: 3, Time: "45 sec"},
						{ID: "lb-cardio", Name: "Cardio", Time: "15 min", Speed: "6.0", Incline: "1"},
					},
				},
			},
		},
		{
			ID:       "push-day",
			Day:      "Day 3",
			Title:    "Push Day",
			Icon:     "fitness",
			Gradient: []string{"#4facfe", "#00f2fe"},
			Sections: []WorkoutSection{
				{
					Name: "Warm Up",
					Exercises: []Exercise{
						{ID: "pd-warmup", Name: "Warm Up", Time: "10 min", Speed: "5.5", Incline: "2"},
					},
				},
				{
					Name: "Strength",
					Exercises: []Exercise{
						{ID: "pd-incline-press", Name: "Incline BB Press", Sets: 4, Reps: "8-10", Weight: "40 kg"},
						{ID: "pd-arnold-press", Name: "Arnold Press", Sets: 3, Reps: "10-12", Weight: "2x10 kg"},
						{ID: "pd-triceps-pushdown", Name: "Triceps Pushdown", Sets: 3, Reps: "10-12", Weight: "25 kg"},
					},
				},
				{
					Name: "Cool Down",
					Exercises: []Exercise{
						{ID: "pd-cardio", Name: "Cardio", Time: "15 min", Speed: "6.0", Incline: "1"},
					},
				},
			},
		},
		{
			ID:       "pull-day",
			Day:      "Day 4",
			Title:    "Pull Day",
			Icon:     "body",
			Gradient: []string{"#43e97b", "#38f9d7"},
			Sections: []WorkoutSection{
				{
					Name: "Warm Up",
					Exercises: []Exercise{
						{ID: "pl-warmup", Name: "Warm Up", Time: "10 min", Speed: "5.5", Incline: "2"},
					},
				},
				{
					Name: "Strength",
					Exercises: []Exercise{
						{ID: "pl-pullups", Name: "Assisted Pull-ups", Sets: 4, Reps: "6-8"},
						{ID: "pl-seated-row", Name: "Seated Row", Sets: 3, Reps: "10-12", Weight: "35 kg"},
						{ID: "pl-face-pulls", Name: "Face Pulls", Sets: 3, Reps: "12-15", Weight: "15 kg"},
						{ID: "pl-bicep-curl", Name: "DB Bicep Curl", Sets: 3, Reps: "10-12", Weight: "2x10 kg"},
					},
				},
				{
					Name: "Core",
					Exercises: []Exercise{
						{ID: "pl-plank", Name: "Plank", Sets: 3, Time: "45 sec"},
					},
				},
			},
		},
	}
}
