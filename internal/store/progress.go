package store

import (
	"fitsync/fitness-tracker/internal/domain"
	"fitsync/fitness-tracker/internal/mirror"
	"fitsync/fitness-tracker/internal/validation"

	"github.com/google/uuid"
)

// CreateProgress assigns the id and defaults (date today), validates the
// present metrics and inserts. All metrics are optional; each present one
// is independently bounds-checked.
func (s *Store) CreateProgress(p domain.ProgressEntry) (domain.ProgressEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	p.ID = uuid.NewString()
	if p.Date.IsZero() {
		p.Date = now
	}
	p.CreatedAt = now
	p.UpdatedAt = now

	if errs := validation.Struct(p); errs != nil {
		return domain.ProgressEntry{}, errs
	}

	s.progress = append(s.progress, p)
	s.persistData()
	s.mirrorUpsert(mirror.CollectionProgress, p.ID, p)
	return p, nil
}

// UpdateProgress applies a partial patch; nil fields are retained.
func (s *Store) UpdateProgress(id string, patch domain.ProgressPatch) (domain.ProgressEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfProgress(id)
	if i < 0 {
		return domain.ProgressEntry{}, ErrNotFound
	}
	updated := s.progress[i]
	if patch.Date != nil {
		updated.Date = *patch.Date
	}
	if patch.Weight != nil {
		updated.Weight = patch.Weight
	}
	if patch.BodyFat != nil {
		updated.BodyFat = patch.BodyFat
	}
	if patch.Muscle != nil {
		updated.Muscle = patch.Muscle
	}
	if patch.Measurements != nil {
		updated.Measurements = patch.Measurements
	}
	if patch.Mood != nil {
		updated.Mood = patch.Mood
	}
	if patch.Energy != nil {
		updated.Energy = patch.Energy
	}
	if patch.Sleep != nil {
		updated.Sleep = patch.Sleep
	}
	updated.UpdatedAt = s.now().UTC()

	if errs := validation.Struct(updated); errs != nil {
		return domain.ProgressEntry{}, errs
	}

	s.progress[i] = updated
	s.persistData()
	s.mirrorUpsert(mirror.CollectionProgress, updated.ID, updated)
	return updated, nil
}

// DeleteProgress removes the entry by id.
func (s *Store) DeleteProgress(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfProgress(id)
	if i < 0 {
		return ErrNotFound
	}
	s.progress = append(s.progress[:i], s.progress[i+1:]...)
	s.persistData()
	s.mirrorDelete(mirror.CollectionProgress, id)
	return nil
}

// ProgressByID returns a copy of the entry or ErrNotFound.
func (s *Store) ProgressByID(id string) (domain.ProgressEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOfProgress(id)
	if i < 0 {
		return domain.ProgressEntry{}, ErrNotFound
	}
	return s.progress[i], nil
}

// ProgressEntries returns a copy of the whole collection; callers filter.
func (s *Store) ProgressEntries() []domain.ProgressEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.progress)
}

func (s *Store) indexOfProgress(id string) int {
	for i := range s.progress {
		if s.progress[i].ID == id {
			return i
		}
	}
	return -1
}
