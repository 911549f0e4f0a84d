package service

import (
	"context"
	"errors"

	"fitsync/fitness-tracker/internal/domain"
	"fitsync/fitness-tracker/internal/store"
)

// --- Error Definitions ---
var (
	ErrAccessDenied   = errors.New("access denied")
	ErrClientNotOwned = errors.New("client is not managed by this trainer")
)

// WorkoutService gates workout CRUD with the viewer's role-appropriate
// ownership: clients act on their own workouts, trainers on workouts they
// authored for their clients.
type WorkoutService interface {
	Create(ctx context.Context, viewer domain.User, w domain.Workout) (domain.Workout, error)
	List(ctx context.Context, viewer domain.User) ([]domain.Workout, error)
	Update(ctx context.Context, viewer domain.User, id string, patch domain.WorkoutPatch) (domain.Workout, error)
	Complete(ctx context.Context, viewer domain.User, id string) (domain.Workout, error)
	Delete(ctx context.Context, viewer domain.User, id string) error
}

type workoutService struct {
	store *store.Store
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(st *store.Store) WorkoutService {
	return &workoutService{store: st}
}

func (s *workoutService) Create(ctx context.Context, viewer domain.User, w domain.Workout) (domain.Workout, error) {
	if viewer.IsTrainer() {
		// A trainer authors workouts for one of their own clients.
		client, err := s.store.UserByID(w.ClientID)
		if err != nil || client.TrainerID == nil || *client.TrainerID != viewer.ID {
			return domain.Workout{}, ErrClientNotOwned
		}
		w.TrainerID = viewer.ID
	} else {
		w.ClientID = viewer.ID
		if viewer.TrainerID != nil {
			w.TrainerID = *viewer.TrainerID
		}
	}
	return s.store.CreateWorkout(w)
}

func (s *workoutService) List(ctx context.Context, viewer domain.User) ([]domain.Workout, error) {
	var out []domain.Workout
	for _, w := range s.store.Workouts() {
		if s.owns(viewer, w) {
			out = append(out, w)
		}
	}
	return out, nil
}

func (s *workoutService) Update(ctx context.Context, viewer domain.User, id string, patch domain.WorkoutPatch) (domain.Workout, error) {
	if err := s.authorize(viewer, id); err != nil {
		return domain.Workout{}, err
	}
	return s.store.UpdateWorkout(id, patch)
}

func (s *workoutService) Complete(ctx context.Context, viewer domain.User, id string) (domain.Workout, error) {
	if err := s.authorize(viewer, id); err != nil {
		return domain.Workout{}, err
	}
	return s.store.CompleteWorkout(id)
}

func (s *workoutService) Delete(ctx context.Context, viewer domain.User, id string) error {
	if err := s.authorize(viewer, id); err != nil {
		return err
	}
	return s.store.DeleteWorkout(id)
}

func (s *workoutService) authorize(viewer domain.User, id string) error {
	w, err := s.store.WorkoutByID(id)
	if err != nil {
		return err
	}
	if !s.owns(viewer, w) {
		return ErrAccessDenied
	}
	return nil
}

func (s *workoutService) owns(viewer domain.User, w domain.Workout) bool {
	if viewer.IsTrainer() {
		return w.TrainerID == viewer.ID
	}
	return w.ClientID == viewer.ID
}
