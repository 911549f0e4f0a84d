package stats

// Achievement is a derived badge. Badges are evaluated against live
// aggregates on every read and never persisted, so deleting data can take
// a badge away again.
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Earned      bool   `json:"earned"`
}

type achievementRule struct {
	id          string
	title       string
	description string
	earned      func(Summary) bool
}

// The fixed achievement table. Thresholds are part of the product, not
// configuration.
var achievementRules = []achievementRule{
	{"first-workout", "First Steps", "Complete your first workout",
		func(s Summary) bool { return s.CompletedWorkouts >= 1 }},
	{"workouts-10", "Getting Into It", "Complete 10 workouts",
		func(s Summary) bool { return s.CompletedWorkouts >= 10 }},
	{"workouts-50", "Dedicated", "Complete 50 workouts",
		func(s Summary) bool { return s.CompletedWorkouts >= 50 }},
	{"workouts-100", "Centurion", "Complete 100 workouts",
		func(s Summary) bool { return s.CompletedWorkouts >= 100 }},
	{"first-meal", "Food Logger", "Log your first meal",
		func(s Summary) bool { return s.TotalMeals >= 1 }},
	{"meals-50", "Nutrition Tracker", "Log 50 meals",
		func(s Summary) bool { return s.TotalMeals >= 50 }},
	{"meals-100", "Meal Master", "Log 100 meals",
		func(s Summary) bool { return s.TotalMeals >= 100 }},
	{"first-progress", "Check In", "Record your first progress entry",
		func(s Summary) bool { return s.ProgressEntries >= 1 }},
	{"progress-10", "Trend Watcher", "Record 10 progress entries",
		func(s Summary) bool { return s.ProgressEntries >= 10 }},
	{"consistency", "Consistent", "Keep a completion rate of 80% or better",
		func(s Summary) bool { return s.TotalWorkouts > 0 && s.CompletionRate >= 80 }},
	{"weekly-3", "Weekly Warrior", "Complete 3 workouts in a week",
		func(s Summary) bool { return s.WorkoutsThisWeek >= 3 }},
}

// Achievements evaluates the whole badge table against the given
// aggregates.
func Achievements(s Summary) []Achievement {
	out := make([]Achievement, len(achievementRules))
	for i, r := range achievementRules {
		out[i] = Achievement{
			ID:          r.id,
			Title:       r.title,
			Description: r.description,
			Earned:      r.earned(s),
		}
	}
	return out
}
