package domain

import (
	"time"
)

// Role type to distinguish between user roles
type Role string

// Define constants for roles
const (
	RoleTrainer Role = "trainer"
	RoleClient  Role = "client"
)

// User represents a user in the system (either a Trainer or a Client).
type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name" validate:"required,min=2,max=100"`
	Email        string     `json:"email" validate:"required,email"` // Stored lower-cased; unique case-insensitively
	PasswordHash string     `json:"-"`                               // Never expose this via JSON
	Role         Role       `json:"role" validate:"required,oneof=trainer client"`
	IsActive     bool       `json:"isActive"`
	DateJoined   time.Time  `json:"dateJoined"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`

	// --- Trainer-specific ---
	// IDs of clients managed by this trainer.
	ClientIDs []string `json:"clientIds,omitempty"`

	// --- Client-specific ---
	// ID of the trainer managing this client. A client has at most one trainer.
	TrainerID *string `json:"trainerId,omitempty"`
}

func (u *User) IsTrainer() bool {
	return u.Role == RoleTrainer
}

func (u *User) IsClient() bool {
	return u.Role == RoleClient
}

// UserPatch describes a partial update to a user. Nil fields are retained.
type UserPatch struct {
	Name     *string `json:"name,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}
