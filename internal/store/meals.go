package store

import (
	"fitsync/fitness-tracker/internal/domain"
	"fitsync/fitness-tracker/internal/mirror"
	"fitsync/fitness-tracker/internal/validation"

	"github.com/google/uuid"
)

// CreateMeal assigns the id and defaults (date today), sanitizes the name,
// validates nutrition bounds and inserts.
func (s *Store) CreateMeal(m domain.Meal) (domain.Meal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	m.ID = uuid.NewString()
	m.Name = validation.SanitizeString(m.Name)
	if m.Date.IsZero() {
		m.Date = now
	}
	m.CreatedAt = now
	m.UpdatedAt = now

	if errs := validation.Struct(m); errs != nil {
		return domain.Meal{}, errs
	}

	s.meals = append(s.meals, m)
	s.persistData()
	s.mirrorUpsert(mirror.CollectionMeals, m.ID, m)
	return m, nil
}

// UpdateMeal applies a partial patch; nil fields are retained.
func (s *Store) UpdateMeal(id string, patch domain.MealPatch) (domain.Meal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfMeal(id)
	if i < 0 {
		return domain.Meal{}, ErrNotFound
	}
	updated := s.meals[i]
	if patch.Name != nil {
		updated.Name = validation.SanitizeString(*patch.Name)
	}
	if patch.Type != nil {
		updated.Type = *patch.Type
	}
	if patch.Calories != nil {
		updated.Calories = *patch.Calories
	}
	if patch.Protein != nil {
		updated.Protein = *patch.Protein
	}
	if patch.Carbs != nil {
		updated.Carbs = *patch.Carbs
	}
	if patch.Fat != nil {
		updated.Fat = *patch.Fat
	}
	if patch.Fiber != nil {
		updated.Fiber = patch.Fiber
	}
	if patch.Sugar != nil {
		updated.Sugar = patch.Sugar
	}
	if patch.Sodium != nil {
		updated.Sodium = patch.Sodium
	}
	if patch.Date != nil {
		updated.Date = *patch.Date
	}
	updated.UpdatedAt = s.now().UTC()

	if errs := validation.Struct(updated); errs != nil {
		return domain.Meal{}, errs
	}

	s.meals[i] = updated
	s.persistData()
	s.mirrorUpsert(mirror.CollectionMeals, updated.ID, updated)
	return updated, nil
}

// DeleteMeal removes the meal by id.
func (s *Store) DeleteMeal(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfMeal(id)
	if i < 0 {
		return ErrNotFound
	}
	s.meals = append(s.meals[:i], s.meals[i+1:]...)
	s.persistData()
	s.mirrorDelete(mirror.CollectionMeals, id)
	return nil
}

// MealByID returns a copy of the meal or ErrNotFound.
func (s *Store) MealByID(id string) (domain.Meal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOfMeal(id)
	if i < 0 {
		return domain.Meal{}, ErrNotFound
	}
	return s.meals[i], nil
}

// Meals returns a copy of the whole collection; callers filter.
func (s *Store) Meals() []domain.Meal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.meals)
}

func (s *Store) indexOfMeal(id string) int {
	for i := range s.meals {
		if s.meals[i].ID == id {
			return i
		}
	}
	return -1
}
