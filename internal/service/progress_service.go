package service

import (
	"context"

	"fitsync/fitness-tracker/internal/domain"
	"fitsync/fitness-tracker/internal/store"
)

// ProgressService is progress-entry CRUD scoped to the viewer's own log.
type ProgressService interface {
	Create(ctx context.Context, viewer domain.User, p domain.ProgressEntry) (domain.ProgressEntry, error)
	List(ctx context.Context, viewer domain.User) ([]domain.ProgressEntry, error)
	Update(ctx context.Context, viewer domain.User, id string, patch domain.ProgressPatch) (domain.ProgressEntry, error)
	Delete(ctx context.Context, viewer domain.User, id string) error
}

type progressService struct {
	store *store.Store
}

// NewProgressService creates a new instance of progressService.
func NewProgressService(st *store.Store) ProgressService {
	return &progressService{store: st}
}

func (s *progressService) Create(ctx context.Context, viewer domain.User, p domain.ProgressEntry) (domain.ProgressEntry, error) {
	p.UserID = viewer.ID
	return s.store.CreateProgress(p)
}

func (s *progressService) List(ctx context.Context, viewer domain.User) ([]domain.ProgressEntry, error) {
	var out []domain.ProgressEntry
	for _, p := range s.store.ProgressEntries() {
		if p.UserID == viewer.ID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *progressService) Update(ctx context.Context, viewer domain.User, id string, patch domain.ProgressPatch) (domain.ProgressEntry, error) {
	existing, err := s.store.ProgressByID(id)
	if err != nil {
		return domain.ProgressEntry{}, err
	}
	if existing.UserID != viewer.ID {
		return domain.ProgressEntry{}, ErrAccessDenied
	}
	return s.store.UpdateProgress(id, patch)
}

func (s *progressService) Delete(ctx context.Context, viewer domain.User, id string) error {
	existing, err := s.store.ProgressByID(id)
	if err != nil {
		return err
	}
	if existing.UserID != viewer.ID {
		return ErrAccessDenied
	}
	return s.store.DeleteProgress(id)
}
