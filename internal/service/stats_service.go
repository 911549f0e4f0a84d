package service

import (
	"context"
	"time"

	"fitsync/fitness-tracker/internal/domain"
	"fitsync/fitness-tracker/internal/stats"
	"fitsync/fitness-tracker/internal/store"
)

// Dashboard is the full derived view for one viewer: aggregates, the
// weekly chart, the exercise ranking and the badge table.
type Dashboard struct {
	Summary           stats.Summary         `json:"summary"`
	WeeklyActivity    []stats.DayActivity   `json:"weeklyActivity"`
	ExerciseFrequency []stats.ExerciseCount `json:"exerciseFrequency"`
	Achievements      []stats.Achievement   `json:"achievements"`
}

// StatsService recomputes derived views from the current snapshot on each
// read. Nothing here mutates or caches.
type StatsService interface {
	Dashboard(ctx context.Context, viewer domain.User) (Dashboard, error)
	Nutrition(ctx context.Context, viewer domain.User, from, to time.Time) (stats.NutritionTotals, error)
}

const topExercises = 5

type statsService struct {
	store *store.Store
	now   func() time.Time
}

// NewStatsService creates a new instance of statsService.
func NewStatsService(st *store.Store) StatsService {
	return &statsService{store: st, now: time.Now}
}

func (s *statsService) Dashboard(ctx context.Context, viewer domain.User) (Dashboard, error) {
	view := s.store.ReadView()
	today := s.now()
	summary := stats.Summarize(view, viewer, today)
	return Dashboard{
		Summary:           summary,
		WeeklyActivity:    stats.WeeklyActivity(view, viewer, today),
		ExerciseFrequency: stats.ExerciseFrequency(view, viewer, topExercises),
		Achievements:      stats.Achievements(summary),
	}, nil
}

func (s *statsService) Nutrition(ctx context.Context, viewer domain.User, from, to time.Time) (stats.NutritionTotals, error) {
	if to.IsZero() {
		to = s.now()
	}
	if from.IsZero() {
		from = to.AddDate(0, 0, -6)
	}
	return stats.Nutrition(s.store.ReadView(), viewer.ID, from, to), nil
}
