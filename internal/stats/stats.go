// Package stats derives read-only views from the entity store snapshot.
// Everything here is pure and recomputed per call: collections are small
// and reads are rare, so no caching or incremental maintenance.
package stats

import (
	"math"
	"time"

	"fitsync/fitness-tracker/internal/domain"
	"fitsync/fitness-tracker/internal/store"
)

// DayActivity is one day's slice of the weekly activity chart.
type DayActivity struct {
	Date     string  `json:"date"` // YYYY-MM-DD
	Workouts int     `json:"workouts"`
	Calories float64 `json:"calories"`
}

// ownsWorkout applies the viewer's role-appropriate ownership rule:
// trainers see workouts they authored, clients the ones they own.
func ownsWorkout(viewer domain.User, w domain.Workout) bool {
	if viewer.IsTrainer() {
		return w.TrainerID == viewer.ID
	}
	return w.ClientID == viewer.ID
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// WeeklyActivity returns exactly 7 entries for the trailing 7 calendar
// days, oldest first and ending on today: completed workout counts under
// the viewer's ownership rule plus same-day meal calories for the viewer.
func WeeklyActivity(v store.View, viewer domain.User, today time.Time) []DayActivity {
	out := make([]DayActivity, 7)
	for i := 0; i < 7; i++ {
		day := today.UTC().AddDate(0, 0, i-6)
		entry := DayActivity{Date: day.Format("2006-01-02")}
		for _, w := range v.Workouts {
			if w.Completed && ownsWorkout(viewer, w) && sameDay(w.Date, day) {
				entry.Workouts++
			}
		}
		for _, m := range v.Meals {
			if m.UserID == viewer.ID && sameDay(m.Date, day) {
				entry.Calories += m.Calories
			}
		}
		out[i] = entry
	}
	return out
}

// NutritionTotals sums the viewer's meal nutrition over [from, to],
// compared by calendar day (inclusive on both ends).
type NutritionTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"`
	Meals    int     `json:"meals"`
}

func Nutrition(v store.View, userID string, from, to time.Time) NutritionTotals {
	fromDay := from.UTC().Truncate(24 * time.Hour)
	toDay := to.UTC().Truncate(24 * time.Hour)
	var t NutritionTotals
	for _, m := range v.Meals {
		if m.UserID != userID {
			continue
		}
		day := m.Date.UTC().Truncate(24 * time.Hour)
		if day.Before(fromDay) || day.After(toDay) {
			continue
		}
		t.Calories += m.Calories
		t.Protein += m.Protein
		t.Carbs += m.Carbs
		t.Fat += m.Fat
		if m.Fiber != nil {
			t.Fiber += *m.Fiber
		}
		if m.Sugar != nil {
			t.Sugar += *m.Sugar
		}
		if m.Sodium != nil {
			t.Sodium += *m.Sodium
		}
		t.Meals++
	}
	return t
}

// ExerciseCount is one entry of the exercise frequency ranking.
type ExerciseCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ExerciseFrequency counts exercise name occurrences across the viewer's
// completed workouts and returns the top n by descending count. Ties keep
// first-seen order, which tracks insertion order of the workout list.
func ExerciseFrequency(v store.View, viewer domain.User, n int) []ExerciseCount {
	counts := make(map[string]int)
	var order []string
	for _, w := range v.Workouts {
		if !w.Completed || !ownsWorkout(viewer, w) {
			continue
		}
		for _, ex := range w.Exercises {
			if _, seen := counts[ex.Name]; !seen {
				order = append(order, ex.Name)
			}
			counts[ex.Name]++
		}
	}

	ranked := make([]ExerciseCount, 0, len(order))
	for _, name := range order {
		ranked = append(ranked, ExerciseCount{Name: name, Count: counts[name]})
	}
	// Insertion sort keeps equal counts in first-seen order.
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && ranked[j].Count > ranked[j-1].Count; j-- {
			ranked[j], ranked[j-1] = ranked[j-1], ranked[j]
		}
	}
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// CompletionRate is completed/total as a percentage rounded to the nearest
// integer, and 0 when the viewer has no workouts at all.
func CompletionRate(v store.View, viewer domain.User) int {
	var total, completed int
	for _, w := range v.Workouts {
		if !ownsWorkout(viewer, w) {
			continue
		}
		total++
		if w.Completed {
			completed++
		}
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// WeightChange is the difference between the user's most recent and oldest
// weighted progress entries. It is nil unless two distinct entries carry a
// weight.
func WeightChange(v store.View, userID string) *float64 {
	var weighted []domain.ProgressEntry
	for _, p := range v.Progress {
		if p.UserID == userID && p.Weight != nil {
			weighted = append(weighted, p)
		}
	}
	if len(weighted) < 2 {
		return nil
	}
	oldest, newest := weighted[0], weighted[0]
	for _, p := range weighted[1:] {
		if p.Date.Before(oldest.Date) {
			oldest = p
		}
		if !p.Date.Before(newest.Date) {
			newest = p
		}
	}
	diff := *newest.Weight - *oldest.Weight
	return &diff
}

// Summary bundles the aggregates the dashboard and the achievement table
// are computed from.
type Summary struct {
	TotalWorkouts     int      `json:"totalWorkouts"`
	CompletedWorkouts int      `json:"completedWorkouts"`
	CompletionRate    int      `json:"completionRate"`
	TotalMeals        int      `json:"totalMeals"`
	ProgressEntries   int      `json:"progressEntries"`
	WorkoutsThisWeek  int      `json:"workoutsThisWeek"`
	WeightChange      *float64 `json:"weightChange,omitempty"`
}

// Summarize computes the viewer's aggregate numbers as of today.
func Summarize(v store.View, viewer domain.User, today time.Time) Summary {
	s := Summary{
		CompletionRate: CompletionRate(v, viewer),
		WeightChange:   WeightChange(v, viewer.ID),
	}
	weekStart := today.UTC().AddDate(0, 0, -6)
	for _, w := range v.Workouts {
		if !ownsWorkout(viewer, w) {
			continue
		}
		s.TotalWorkouts++
		if w.Completed {
			s.CompletedWorkouts++
			day := w.Date.UTC()
			if !day.Before(weekStart.Truncate(24*time.Hour)) && !day.After(today.UTC().Add(24*time.Hour)) {
				s.WorkoutsThisWeek++
			}
		}
	}
	for _, m := range v.Meals {
		if m.UserID == viewer.ID {
			s.TotalMeals++
		}
	}
	for _, p := range v.Progress {
		if p.UserID == viewer.ID {
			s.ProgressEntries++
		}
	}
	return s
}
