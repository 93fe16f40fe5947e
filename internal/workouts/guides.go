package workouts

// Guide describes how an exercise is performed. Keyed by exercise name,
// not id, so custom exercises reusing a known name get a guide for free.
type Guide struct {
	Icon          string   `json:"icon"`
	AnimationType string   `json:"animationType"`
	Muscles       string   `json:"muscles"`
	Steps         []string `json:"steps"`
	Tips          string   `json:"tips"`
}

var defaultGuide = Guide{
	Icon:          "💪",
	AnimationType: "generic",
	Muscles:       "Multiple muscle groups",
	Steps: []string{
		"Set up with proper form",
		"Perform the movement with control",
		"Focus on the target muscles",
		"Complete all reps with good technique",
	},
	Tips: "Ask a trainer if you are unsure about proper form.",
}

var exerciseGuides = map[string]Guide{
	"Lat Pulldown": {
		Icon:          "💪",
		AnimationType: "vertical",
		Muscles:       "Back, Lats, Biceps",
		Steps: []string{
			"Sit at pulldown machine, grip bar wider than shoulders",
			"Pull bar down to chest level, lean slightly back",
			"Squeeze shoulder blades together at bottom",
			"Slowly return to starting position with full stretch",
		},
		Tips: "Keep core tight. Don't use momentum. Focus on back muscles.",
	},
	"Seated Row": {
		Icon:          "🚣",
		AnimationType: "row",
		Muscles:       "Mid Back, Lats, Rhomboids",
		Steps: []string{
			"Sit with feet on platform, knees slightly bent",
			"Grip handles, sit upright with chest out",
			"Pull handles to torso, squeeze shoulder blades",
			"Slowly extend arms back to start",
		},
		Tips: "Don't round your back. Think about pulling your elbows back.",
	},
	"DB Shoulder Press": {
		Icon:          "🏋️",
		AnimationType: "push",
		Muscles:       "Shoulders, Triceps",
		Steps: []string{
			"Sit with dumbbells at shoulder height",
			"Press weights overhead until arms are straight",
			"Lower slowly back to shoulders",
			"Keep core engaged throughout",
		},
		Tips: "Don't arch your back. Control the weight on the way down.",
	},
	"DB Bicep Curl": {
		Icon:          "💪",
		AnimationType: "curl",
		Muscles:       "Biceps, Forearms",
		Steps: []string{
			"Stand with dumbbells at your sides, palms forward",
			"Curl weights up toward shoulders",
			"Squeeze at the top for 1 second",
			"Lower slowly back to start",
		},
		Tips: "Keep elbows at your sides. No swinging or momentum.",
	},
	"Triceps Pushdown": {
		Icon:          "🔻",
		AnimationType: "push",
		Muscles:       "Triceps",
		Steps: []string{
			"Stand at cable machine, grip bar overhead",
			"Push bar down until arms are fully extended",
			"Squeeze triceps at bottom",
			"Slowly return to start position",
		},
		Tips: "Keep elbows close to body. Don't lean forward.",
	},
	"Barbell Squat": {
		Icon:          "🦵",
		AnimationType: "squat",
		Muscles:       "Quads, Glutes, Hamstrings",
		Steps: []string{
			"Bar on upper back, feet shoulder-width apart",
			"Lower hips back and down, chest up",
			"Squat until thighs parallel to ground",
			"Drive through heels to stand back up",
		},
		Tips: "Keep knees tracking over toes. Don't let knees cave in.",
	},
	"Romanian Deadlift": {
		Icon:          "🏋️‍♂️",
		AnimationType: "squat",
		Muscles:       "Hamstrings, Lower Back, Glutes",
		Steps: []string{
			"Hold barbell in front of thighs, feet hip-width",
			"Hinge at hips, lower bar down legs",
			"Feel stretch in hamstrings",
			"Drive hips forward to return to standing",
		},
		Tips: "Keep back straight. Feel the stretch in hamstrings.",
	},
	"Leg Press": {
		Icon:          "🦿",
		AnimationType: "squat",
		Muscles:       "Quads, Glutes, Hamstrings",
		Steps: []string{
			"Sit in machine, feet on platform shoulder-width",
			"Lower weight by bending knees",
			"Push through heels to extend legs",
			"Don't lock knees at top",
		},
		Tips: "Full range of motion. Keep lower back against pad.",
	},
	"Incline BB Press": {
		Icon:          "🏋️",
		AnimationType: "push",
		Muscles:       "Upper Chest, Shoulders, Triceps",
		Steps: []string{
			"Lie on incline bench (30-45 degrees)",
			"Lower bar to upper chest",
			"Press bar up until arms extended",
			"Control the weight on the way down",
		},
		Tips: "Don't bounce bar off chest. Keep feet planted.",
	},
	"Arnold Press": {
		Icon:          "💪",
		AnimationType: "push",
		Muscles:       "Shoulders, Deltoids",
		Steps: []string{
			"Start with dumbbells at shoulders, palms facing you",
			"Rotate palms forward while pressing overhead",
			"Reverse the motion on the way down",
			"Control the rotation throughout",
		},
		Tips: "Smooth rotation. Don't use momentum.",
	},
	"Assisted Pull-ups": {
		Icon:          "⬆️",
		AnimationType: "vertical",
		Muscles:       "Back, Lats, Biceps",
		Steps: []string{
			"Set assist weight, grip pull-up bar",
			"Hang with arms extended",
			"Pull yourself up until chin over bar",
			"Lower yourself slowly",
		},
		Tips: "Focus on pulling with your back, not just arms.",
	},
	"Face Pulls": {
		Icon:          "🎭",
		AnimationType: "row",
		Muscles:       "Rear Delts, Upper Back",
		Steps: []string{
			"Set cable at face height with rope attachment",
			"Pull rope toward face, split the rope",
			"Squeeze shoulder blades together",
			"Slowly return to start",
		},
		Tips: "Keep elbows high. Focus on rear deltoids.",
	},
	"Plank": {
		Icon:          "🧘",
		AnimationType: "generic",
		Muscles:       "Core, Abs, Shoulders",
		Steps: []string{
			"Forearms on ground, elbows under shoulders",
			"Extend legs, balance on toes",
			"Keep body in straight line",
			"Hold position, breathe steadily",
		},
		Tips: "Don't let hips sag. Engage core throughout.",
	},
	"Warm Up": {
		Icon:          "🏃",
		AnimationType: "generic",
		Muscles:       "Cardiovascular, Full Body",
		Steps: []string{
			"Start at comfortable walking pace",
			"Gradually increase speed",
			"Maintain steady rhythm",
			"Breathe normally throughout",
		},
		Tips: "Warm up muscles to prevent injury. Don't skip this!",
	},
	"Cardio": {
		Icon:          "❤️",
		AnimationType: "generic",
		Muscles:       "Cardiovascular",
		Steps: []string{
			"Maintain steady walking/jogging pace",
			"Keep heart rate elevated",
			"Focus on breathing",
			"Cool down gradually",
		},
		Tips: "Good for fat burning and heart health.",
	},
}

// GuideFor returns the guide for the given exercise name,
// or a generic default for unknown exercises.
func GuideFor(exerciseName string) Guide {
	if guide, ok := exerciseGuides[exerciseName]; ok {
		return guide
	}
	return defaultGuide
}
