package service

import (
	"context"
	"errors"

	"fitsync/fitness-tracker/internal/domain"
	"fitsync/fitness-tracker/internal/store"
)

// --- Error Definitions ---
var (
	ErrRecipientNotFound = errors.New("recipient does not exist")
)

// MessageService sends and lists direct messages. A viewer sees messages
// they sent or received; only the receiver can mark one read.
type MessageService interface {
	Send(ctx context.Context, viewer domain.User, receiverID, content string) (domain.Message, error)
	List(ctx context.Context, viewer domain.User) ([]domain.Message, error)
	// Conversation lists both directions between the viewer and the other
	// user, in send order.
	Conversation(ctx context.Context, viewer domain.User, otherID string) ([]domain.Message, error)
	MarkRead(ctx context.Context, viewer domain.User, id string) (domain.Message, error)
	Delete(ctx context.Context, viewer domain.User, id string) error
}

type messageService struct {
	store *store.Store
}

// NewMessageService creates a new instance of messageService.
func NewMessageService(st *store.Store) MessageService {
	return &messageService{store: st}
}

func (s *messageService) Send(ctx context.Context, viewer domain.User, receiverID, content string) (domain.Message, error) {
	msg, err := s.store.CreateMessage(domain.Message{
		SenderID:   viewer.ID,
		ReceiverID: receiverID,
		Content:    content,
	})
	if errors.Is(err, store.ErrUnknownUser) {
		return domain.Message{}, ErrRecipientNotFound
	}
	return msg, err
}

func (s *messageService) List(ctx context.Context, viewer domain.User) ([]domain.Message, error) {
	var out []domain.Message
	for _, m := range s.store.Messages() {
		if m.SenderID == viewer.ID || m.ReceiverID == viewer.ID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *messageService) Conversation(ctx context.Context, viewer domain.User, otherID string) ([]domain.Message, error) {
	var out []domain.Message
	for _, m := range s.store.Messages() {
		if (m.SenderID == viewer.ID && m.ReceiverID == otherID) ||
			(m.SenderID == otherID && m.ReceiverID == viewer.ID) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *messageService) MarkRead(ctx context.Context, viewer domain.User, id string) (domain.Message, error) {
	existing, err := s.messageByID(id)
	if err != nil {
		return domain.Message{}, err
	}
	if existing.ReceiverID != viewer.ID {
		return domain.Message{}, ErrAccessDenied
	}
	return s.store.MarkMessageRead(id)
}

func (s *messageService) Delete(ctx context.Context, viewer domain.User, id string) error {
	existing, err := s.messageByID(id)
	if err != nil {
		return err
	}
	if existing.SenderID != viewer.ID && existing.ReceiverID != viewer.ID {
		return ErrAccessDenied
	}
	return s.store.DeleteMessage(id)
}

func (s *messageService) messageByID(id string) (domain.Message, error) {
	for _, m := range s.store.Messages() {
		if m.ID == id {
			return m, nil
		}
	}
	return domain.Message{}, store.ErrNotFound
}
