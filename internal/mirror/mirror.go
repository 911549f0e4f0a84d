// Package mirror provides a best-effort remote copy of local mutations.
// The mirror is never authoritative: a failed write is reported through
// the configured callback and otherwise ignored, and nothing is retried.
package mirror

import (
	"context"
)

// Collection names understood by mirror backends.
const (
	CollectionUsers    = "users"
	CollectionWorkouts = "workouts"
	CollectionMeals    = "meals"
	CollectionProgress = "progress"
	CollectionMessages = "messages"
)

// Mirror reflects a single entity mutation to a remote backend.
type Mirror interface {
	Upsert(ctx context.Context, collection, id string, doc any) error
	Delete(ctx context.Context, collection, id string) error
}

// Nop discards every mutation. Wired in when mirroring is disabled.
type Nop struct{}

func (Nop) Upsert(context.Context, string, string, any) error { return nil }
func (Nop) Delete(context.Context, string, string) error      { return nil }
