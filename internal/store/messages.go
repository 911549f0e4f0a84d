package store

import (
	"fitsync/fitness-tracker/internal/domain"
	"fitsync/fitness-tracker/internal/mirror"
	"fitsync/fitness-tracker/internal/validation"

	"github.com/google/uuid"
)

// CreateMessage validates the content bounds and that both sender and
// receiver exist, then inserts. Messages start unread.
func (s *Store) CreateMessage(m domain.Message) (domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m.ID = uuid.NewString()
	m.Content = validation.SanitizeString(m.Content)
	m.Read = false
	if m.Timestamp.IsZero() {
		m.Timestamp = s.now().UTC()
	}

	if errs := validation.Struct(m); errs != nil {
		return domain.Message{}, errs
	}
	if s.indexOfUser(m.SenderID) < 0 || s.indexOfUser(m.ReceiverID) < 0 {
		return domain.Message{}, ErrUnknownUser
	}

	s.messages = append(s.messages, m)
	s.persistData()
	s.mirrorUpsert(mirror.CollectionMessages, m.ID, m)
	return m, nil
}

// MarkMessageRead flips the read flag on. Already-read messages no-op.
func (s *Store) MarkMessageRead(id string) (domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfMessage(id)
	if i < 0 {
		return domain.Message{}, ErrNotFound
	}
	if !s.messages[i].Read {
		s.messages[i].Read = true
		s.persistData()
		s.mirrorUpsert(mirror.CollectionMessages, id, s.messages[i])
	}
	return s.messages[i], nil
}

// DeleteMessage removes the message by id.
func (s *Store) DeleteMessage(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfMessage(id)
	if i < 0 {
		return ErrNotFound
	}
	s.messages = append(s.messages[:i], s.messages[i+1:]...)
	s.persistData()
	s.mirrorDelete(mirror.CollectionMessages, id)
	return nil
}

// Messages returns a copy of the whole collection; callers filter.
func (s *Store) Messages() []domain.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.messages)
}

func (s *Store) indexOfMessage(id string) int {
	for i := range s.messages {
		if s.messages[i].ID == id {
			return i
		}
	}
	return -1
}
