package domain

import (
	"time"
)

// Message is a direct message between two users, typically a trainer and
// one of their clients. Sender and receiver must both exist.
type Message struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId" validate:"required"`
	ReceiverID string    `json:"receiverId" validate:"required"`
	Content    string    `json:"content" validate:"required,min=1,max=1000"` // 1-1000 chars
	Timestamp  time.Time `json:"timestamp"`
	Read       bool      `json:"read"`
}
