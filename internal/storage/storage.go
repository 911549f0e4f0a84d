package storage

import (
	"context"
	"errors"
)

// Well-known snapshot keys.
const (
	KeyUsers    = "users"
	KeyData     = "data" // workouts, meals, messages, progress as one blob
	KeySettings = "settings"
	KeySession  = "session"
)

// ErrNotFound is returned by Load when no value exists under the key.
// Callers fall back to their zero/default state.
var ErrNotFound = errors.New("storage: key not found")

// Store is the durable key-value store snapshots are mirrored to. Writes
// are best-effort from the caller's point of view: the in-memory state is
// authoritative and a failed Save must never roll it back.
type Store interface {
	Save(ctx context.Context, key string, value []byte) error
	Load(ctx context.Context, key string) ([]byte, error)
}
