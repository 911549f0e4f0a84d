// Package store holds the authoritative in-memory collections for all
// domain entities. Every mutation is validated, applied under a single
// lock, then mirrored to the durable key-value store and the remote
// mirror on a best-effort basis. In-memory state always wins: a failed
// persistence write is reported as a warning and never rolled back.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"fitsync/fitness-tracker/internal/domain"
	"fitsync/fitness-tracker/internal/mirror"
	"fitsync/fitness-tracker/internal/storage"
)

// --- Error Definitions ---
var (
	ErrNotFound       = errors.New("store: entity not found")
	ErrDuplicateEmail = errors.New("store: user with this email already exists")
	ErrNotTrainer     = errors.New("store: referenced user is not a trainer")
	ErrUnknownUser    = errors.New("store: referenced user does not exist")
)

// dataBlob is the shape persisted under the "data" key: everything except
// users and settings as one snapshot.
type dataBlob struct {
	Workouts []domain.Workout       `json:"workouts"`
	Meals    []domain.Meal          `json:"meals"`
	Messages []domain.Message       `json:"messages"`
	Progress []domain.ProgressEntry `json:"progress"`
}

// View is a read-only copy of all collections at a point in time, taken
// under the read lock. The stats package derives everything from a View.
type View struct {
	Users    []domain.User
	Workouts []domain.Workout
	Meals    []domain.Meal
	Messages []domain.Message
	Progress []domain.ProgressEntry
}

// WarnFunc observes persistence warnings: the durable store or the remote
// mirror rejected a best-effort write. Execution has already moved on.
type WarnFunc func(op string, err error)

// Store is the single authoritative snapshot of all collections.
// Collections are ordered slices, not maps: insertion order is part of the
// contract (stable tie-breaks in the stats module) and collections are
// small enough that linear scans are fine.
type Store struct {
	mu       sync.RWMutex
	users    []domain.User
	workouts []domain.Workout
	meals    []domain.Meal
	messages []domain.Message
	progress []domain.ProgressEntry
	settings map[string]domain.Settings

	kv     storage.Store
	mirror mirror.Mirror
	logger *slog.Logger
	onWarn WarnFunc

	wg  sync.WaitGroup
	now func() time.Time
}

// New creates an empty store. Call Load to restore persisted state.
func New(kv storage.Store, m mirror.Mirror, logger *slog.Logger) *Store {
	if m == nil {
		m = mirror.Nop{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		settings: make(map[string]domain.Settings),
		kv:       kv,
		mirror:   m,
		logger:   logger,
		now:      time.Now,
	}
}

// OnWarning registers an observer for persistence warnings, in addition to
// the log line every warning already produces.
func (s *Store) OnWarning(fn WarnFunc) {
	s.onWarn = fn
}

// Load restores collections from the durable store. Missing keys leave the
// corresponding collections empty; corrupt payloads are reported as
// warnings and treated as missing.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if raw, err := s.kv.Load(ctx, storage.KeyUsers); err == nil {
		var users []domain.User
		if jerr := json.Unmarshal(raw, &users); jerr != nil {
			s.warn("load users", jerr)
		} else {
			s.users = users
		}
	} else if !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	if raw, err := s.kv.Load(ctx, storage.KeyData); err == nil {
		var blob dataBlob
		if jerr := json.Unmarshal(raw, &blob); jerr != nil {
			s.warn("load data", jerr)
		} else {
			s.workouts = blob.Workouts
			s.meals = blob.Meals
			s.messages = blob.Messages
			s.progress = blob.Progress
		}
	} else if !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	if raw, err := s.kv.Load(ctx, storage.KeySettings); err == nil {
		settings := make(map[string]domain.Settings)
		if jerr := json.Unmarshal(raw, &settings); jerr != nil {
			s.warn("load settings", jerr)
		} else {
			s.settings = settings
		}
	} else if !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	return nil
}

// ReadView returns a copy of all collections for derivations and listing.
func (s *Store) ReadView() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return View{
		Users:    cloneSlice(s.users),
		Workouts: cloneSlice(s.workouts),
		Meals:    cloneSlice(s.meals),
		Messages: cloneSlice(s.messages),
		Progress: cloneSlice(s.progress),
	}
}

// Flush waits for all in-flight best-effort writes. Used at shutdown so
// the last mutation reaches disk, and by tests.
func (s *Store) Flush() {
	s.wg.Wait()
}

// --- persistence helpers ---

// persistUsers marshals the user collection; must be called with the lock
// held. The actual write happens off the caller's goroutine.
func (s *Store) persistUsers() {
	raw, err := json.Marshal(s.users)
	if err != nil {
		s.warn("marshal users", err)
		return
	}
	s.saveAsync(storage.KeyUsers, raw)
}

func (s *Store) persistData() {
	raw, err := json.Marshal(dataBlob{
		Workouts: s.workouts,
		Meals:    s.meals,
		Messages: s.messages,
		Progress: s.progress,
	})
	if err != nil {
		s.warn("marshal data", err)
		return
	}
	s.saveAsync(storage.KeyData, raw)
}

func (s *Store) persistSettings() {
	raw, err := json.Marshal(s.settings)
	if err != nil {
		s.warn("marshal settings", err)
		return
	}
	s.saveAsync(storage.KeySettings, raw)
}

// saveAsync writes a snapshot key without blocking the mutation path.
// Failure is a warning, never a rollback.
func (s *Store) saveAsync(key string, value []byte) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.kv.Save(ctx, key, value); err != nil {
			s.warn("save "+key, err)
		}
	}()
}

// mirrorUpsert reflects one entity to the remote mirror, best-effort.
func (s *Store) mirrorUpsert(collection, id string, doc any) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.mirror.Upsert(ctx, collection, id, doc); err != nil {
			s.warn("mirror upsert "+collection, err)
		}
	}()
}

func (s *Store) mirrorDelete(collection, id string) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.mirror.Delete(ctx, collection, id); err != nil {
			s.warn("mirror delete "+collection, err)
		}
	}()
}

func (s *Store) warn(op string, err error) {
	s.logger.Warn("persistence warning", "op", op, "error", err)
	if s.onWarn != nil {
		s.onWarn(op, err)
	}
}

func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
