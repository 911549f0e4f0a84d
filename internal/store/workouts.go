package store

import (
	"fitsync/fitness-tracker/internal/domain"
	"fitsync/fitness-tracker/internal/mirror"
	"fitsync/fitness-tracker/internal/validation"

	"github.com/google/uuid"
)

// CreateWorkout assigns ids and defaults (date today, not completed),
// sanitizes free text, validates and inserts. A workout needs at least one
// exercise to be created.
func (s *Store) CreateWorkout(w domain.Workout) (domain.Workout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	w.ID = uuid.NewString()
	w.Name = validation.SanitizeString(w.Name)
	w.Category = validation.SanitizeString(w.Category)
	w.Completed = false
	if w.Date.IsZero() {
		w.Date = now
	}
	for i := range w.Exercises {
		w.Exercises[i].ID = uuid.NewString()
		w.Exercises[i].Name = validation.SanitizeString(w.Exercises[i].Name)
	}
	w.CreatedAt = now
	w.UpdatedAt = now

	if errs := validation.Struct(w); errs != nil {
		return domain.Workout{}, errs
	}

	s.workouts = append(s.workouts, w)
	s.persistData()
	s.mirrorUpsert(mirror.CollectionWorkouts, w.ID, w)
	return w, nil
}

// UpdateWorkout applies a partial patch; nil fields are retained. A patched
// exercise list replaces the old one wholesale and gets fresh ids for
// entries that lack one.
func (s *Store) UpdateWorkout(id string, patch domain.WorkoutPatch) (domain.Workout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfWorkout(id)
	if i < 0 {
		return domain.Workout{}, ErrNotFound
	}
	updated := s.workouts[i]
	if patch.Name != nil {
		updated.Name = validation.SanitizeString(*patch.Name)
	}
	if patch.Date != nil {
		updated.Date = *patch.Date
	}
	if patch.Exercises != nil {
		updated.Exercises = cloneSlice(patch.Exercises)
		for j := range updated.Exercises {
			if updated.Exercises[j].ID == "" {
				updated.Exercises[j].ID = uuid.NewString()
			}
			updated.Exercises[j].Name = validation.SanitizeString(updated.Exercises[j].Name)
		}
	}
	if patch.Difficulty != nil {
		updated.Difficulty = *patch.Difficulty
	}
	if patch.Category != nil {
		updated.Category = validation.SanitizeString(*patch.Category)
	}
	updated.UpdatedAt = s.now().UTC()

	if errs := validation.Struct(updated); errs != nil {
		return domain.Workout{}, errs
	}

	s.workouts[i] = updated
	s.persistData()
	s.mirrorUpsert(mirror.CollectionWorkouts, updated.ID, updated)
	return updated, nil
}

// CompleteWorkout marks a workout done. Completion is monotonic: calling
// it on a completed workout is a no-op, and there is no way back.
func (s *Store) CompleteWorkout(id string) (domain.Workout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfWorkout(id)
	if i < 0 {
		return domain.Workout{}, ErrNotFound
	}
	if s.workouts[i].Completed {
		return s.workouts[i], nil
	}
	s.workouts[i].Completed = true
	s.workouts[i].UpdatedAt = s.now().UTC()
	s.persistData()
	s.mirrorUpsert(mirror.CollectionWorkouts, id, s.workouts[i])
	return s.workouts[i], nil
}

// DeleteWorkout removes the workout by id.
func (s *Store) DeleteWorkout(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfWorkout(id)
	if i < 0 {
		return ErrNotFound
	}
	s.workouts = append(s.workouts[:i], s.workouts[i+1:]...)
	s.persistData()
	s.mirrorDelete(mirror.CollectionWorkouts, id)
	return nil
}

// WorkoutByID returns a copy of the workout or ErrNotFound.
func (s *Store) WorkoutByID(id string) (domain.Workout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOfWorkout(id)
	if i < 0 {
		return domain.Workout{}, ErrNotFound
	}
	return s.workouts[i], nil
}

// Workouts returns a copy of the whole collection; callers filter.
func (s *Store) Workouts() []domain.Workout {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.workouts)
}

func (s *Store) indexOfWorkout(id string) int {
	for i := range s.workouts {
		if s.workouts[i].ID == id {
			return i
		}
	}
	return -1
}
