package service

import (
	"context"
	"errors"

	"fitsync/fitness-tracker/internal/domain"
	"fitsync/fitness-tracker/internal/store"
	"fitsync/fitness-tracker/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// --- Error Definitions ---
var (
	ErrTrainerNotFound = errors.New("trainer not found")
	ErrNotATrainer     = errors.New("user is not a trainer")
)

// TrainerService covers trainer-initiated account and roster management.
type TrainerService interface {
	// CreateClient registers a new client account under the trainer: the
	// same validation and uniqueness path as self-registration, plus the
	// trainer link. Both collection changes land together or not at all.
	CreateClient(ctx context.Context, trainerID string, payload validation.Registration) (domain.User, error)
	ManagedClients(ctx context.Context, trainerID string) ([]domain.User, error)
}

type trainerService struct {
	store *store.Store
}

// NewTrainerService creates a new instance of trainerService.
func NewTrainerService(st *store.Store) TrainerService {
	return &trainerService{store: st}
}

func (s *trainerService) CreateClient(ctx context.Context, trainerID string, payload validation.Registration) (domain.User, error) {
	payload.Role = domain.RoleClient
	if errs := validation.ValidateRegistration(payload); errs != nil {
		return domain.User{}, errs
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, ErrHashingFailed
	}

	client, err := s.store.CreateClientUser(domain.User{
		Name:         payload.Name,
		Email:        payload.Email,
		PasswordHash: string(hashed),
	}, trainerID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicateEmail):
			return domain.User{}, ErrDuplicateEmail
		case errors.Is(err, store.ErrUnknownUser):
			return domain.User{}, ErrTrainerNotFound
		case errors.Is(err, store.ErrNotTrainer):
			return domain.User{}, ErrNotATrainer
		}
		return domain.User{}, err
	}

	client.PasswordHash = ""
	return client, nil
}

func (s *trainerService) ManagedClients(ctx context.Context, trainerID string) ([]domain.User, error) {
	trainer, err := s.store.UserByID(trainerID)
	if err != nil {
		return nil, ErrTrainerNotFound
	}
	if !trainer.IsTrainer() {
		return nil, ErrNotATrainer
	}
	clients := s.store.ClientsOfTrainer(trainerID)
	for i := range clients {
		clients[i].PasswordHash = ""
	}
	return clients, nil
}
