package store

import (
	"strings"

	"fitsync/fitness-tracker/internal/domain"
	"fitsync/fitness-tracker/internal/mirror"
	"fitsync/fitness-tracker/internal/validation"

	"github.com/google/uuid"
)

// CreateUser assigns the id and default fields, validates, enforces
// case-insensitive email uniqueness and inserts. The snapshot is untouched
// when validation or the uniqueness check fails.
func (s *Store) CreateUser(u domain.User) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	created, err := s.insertUserLocked(u)
	if err != nil {
		return domain.User{}, err
	}
	s.persistUsers()
	s.mirrorUpsert(mirror.CollectionUsers, created.ID, created)
	return created, nil
}

// CreateClientUser inserts a new client and links it to its trainer in one
// critical section: the trainer gains the client id and the client gains
// the trainer back-reference, or neither change is visible.
func (s *Store) CreateClientUser(u domain.User, trainerID string) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ti := s.indexOfUser(trainerID)
	if ti < 0 {
		return domain.User{}, ErrUnknownUser
	}
	if !s.users[ti].IsTrainer() {
		return domain.User{}, ErrNotTrainer
	}

	u.Role = domain.RoleClient
	u.TrainerID = &trainerID
	created, err := s.insertUserLocked(u)
	if err != nil {
		return domain.User{}, err
	}

	s.users[ti].ClientIDs = append(s.users[ti].ClientIDs, created.ID)
	s.users[ti].UpdatedAt = s.now().UTC()

	s.persistUsers()
	s.mirrorUpsert(mirror.CollectionUsers, created.ID, created)
	s.mirrorUpsert(mirror.CollectionUsers, s.users[ti].ID, s.users[ti])
	return created, nil
}

// insertUserLocked is the shared create path; the caller holds the lock.
func (s *Store) insertUserLocked(u domain.User) (domain.User, error) {
	now := s.now().UTC()
	u.ID = uuid.NewString()
	u.Name = validation.SanitizeString(u.Name)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.IsActive = true
	u.DateJoined = now
	u.CreatedAt = now
	u.UpdatedAt = now

	if errs := validation.Struct(u); errs != nil {
		return domain.User{}, errs
	}
	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return domain.User{}, ErrDuplicateEmail
		}
	}
	if u.TrainerID != nil {
		ti := s.indexOfUser(*u.TrainerID)
		if ti < 0 {
			return domain.User{}, ErrUnknownUser
		}
		if !s.users[ti].IsTrainer() {
			return domain.User{}, ErrNotTrainer
		}
	}

	s.users = append(s.users, u)
	return u, nil
}

// UpdateUser applies a partial patch; nil fields are retained.
func (s *Store) UpdateUser(id string, patch domain.UserPatch) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfUser(id)
	if i < 0 {
		return domain.User{}, ErrNotFound
	}
	updated := s.users[i]
	if patch.Name != nil {
		updated.Name = validation.SanitizeString(*patch.Name)
	}
	if patch.IsActive != nil {
		updated.IsActive = *patch.IsActive
	}
	updated.UpdatedAt = s.now().UTC()

	if errs := validation.Struct(updated); errs != nil {
		return domain.User{}, errs
	}

	s.users[i] = updated
	s.persistUsers()
	s.mirrorUpsert(mirror.CollectionUsers, updated.ID, updated)
	return updated, nil
}

// DeleteUser removes the user by id. Dependent workouts, meals, progress
// entries and messages are left in place; references to the deleted user
// simply dangle. Soft referential integrity, kept deliberately.
func (s *Store) DeleteUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfUser(id)
	if i < 0 {
		return ErrNotFound
	}
	s.users = append(s.users[:i], s.users[i+1:]...)
	s.persistUsers()
	s.mirrorDelete(mirror.CollectionUsers, id)
	return nil
}

// StampLastLogin records a successful login on the user record.
func (s *Store) StampLastLogin(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfUser(id)
	if i < 0 {
		return ErrNotFound
	}
	now := s.now().UTC()
	s.users[i].LastLogin = &now
	s.users[i].UpdatedAt = now
	s.persistUsers()
	s.mirrorUpsert(mirror.CollectionUsers, id, s.users[i])
	return nil
}

// UserByID returns a copy of the user or ErrNotFound.
func (s *Store) UserByID(id string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOfUser(id)
	if i < 0 {
		return domain.User{}, ErrNotFound
	}
	return s.users[i], nil
}

// UserByEmail looks a user up case-insensitively.
func (s *Store) UserByEmail(email string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return domain.User{}, ErrNotFound
}

// Users returns a copy of the whole collection; callers filter.
func (s *Store) Users() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.users)
}

// ClientsOfTrainer returns the clients whose trainer back-reference is the
// given trainer, in insertion order.
func (s *Store) ClientsOfTrainer(trainerID string) []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.User
	for _, u := range s.users {
		if u.TrainerID != nil && *u.TrainerID == trainerID {
			out = append(out, u)
		}
	}
	return out
}

func (s *Store) indexOfUser(id string) int {
	for i := range s.users {
		if s.users[i].ID == id {
			return i
		}
	}
	return -1
}
