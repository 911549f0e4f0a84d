package service

import (
	"context"

	"fitsync/fitness-tracker/internal/domain"
	"fitsync/fitness-tracker/internal/store"
)

// NutritionService is meal CRUD scoped to the viewer's own log.
type NutritionService interface {
	Create(ctx context.Context, viewer domain.User, m domain.Meal) (domain.Meal, error)
	List(ctx context.Context, viewer domain.User) ([]domain.Meal, error)
	Update(ctx context.Context, viewer domain.User, id string, patch domain.MealPatch) (domain.Meal, error)
	Delete(ctx context.Context, viewer domain.User, id string) error
}

type nutritionService struct {
	store *store.Store
}

// NewNutritionService creates a new instance of nutritionService.
func NewNutritionService(st *store.Store) NutritionService {
	return &nutritionService{store: st}
}

func (s *nutritionService) Create(ctx context.Context, viewer domain.User, m domain.Meal) (domain.Meal, error) {
	m.UserID = viewer.ID
	return s.store.CreateMeal(m)
}

func (s *nutritionService) List(ctx context.Context, viewer domain.User) ([]domain.Meal, error) {
	var out []domain.Meal
	for _, m := range s.store.Meals() {
		if m.UserID == viewer.ID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *nutritionService) Update(ctx context.Context, viewer domain.User, id string, patch domain.MealPatch) (domain.Meal, error) {
	existing, err := s.store.MealByID(id)
	if err != nil {
		return domain.Meal{}, err
	}
	if existing.UserID != viewer.ID {
		return domain.Meal{}, ErrAccessDenied
	}
	return s.store.UpdateMeal(id, patch)
}

func (s *nutritionService) Delete(ctx context.Context, viewer domain.User, id string) error {
	existing, err := s.store.MealByID(id)
	if err != nil {
		return err
	}
	if existing.UserID != viewer.ID {
		return ErrAccessDenied
	}
	return s.store.DeleteMeal(id)
}
