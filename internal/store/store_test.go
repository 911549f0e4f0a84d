package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"fitsync/fitness-tracker/internal/domain"
	"fitsync/fitness-tracker/internal/storage"
	"fitsync/fitness-tracker/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memKV is an in-memory storage.Store for tests.
type memKV struct {
	mu       sync.Mutex
	m        map[string][]byte
	failSave bool
}

func newMemKV() *memKV {
	return &memKV{m: make(map[string][]byte)}
}

func (k *memKV) Save(_ context.Context, key string, value []byte) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.failSave {
		return errors.New("disk full")
	}
	k.m[key] = append([]byte(nil), value...)
	return nil
}

func (k *memKV) Load(_ context.Context, key string) ([]byte, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	v, ok := k.m[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return v, nil
}

func newTestStore(t *testing.T) (*Store, *memKV) {
	t.Helper()
	kv := newMemKV()
	return New(kv, nil, nil), kv
}

func mustCreateUser(t *testing.T, s *Store, name, email string, role domain.Role) domain.User {
	t.Helper()
	u, err := s.CreateUser(domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: "x",
		Role:         role,
	})
	require.NoError(t, err)
	return u
}

func TestCreateUserDefaults(t *testing.T) {
	s, _ := newTestStore(t)

	u := mustCreateUser(t, s, "Alice Smith", "Alice@Example.COM", domain.RoleTrainer)

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.True(t, u.IsActive)
	assert.False(t, u.DateJoined.IsZero())
}

func TestCreateUserDuplicateEmailCaseInsensitive(t *testing.T) {
	s, _ := newTestStore(t)

	mustCreateUser(t, s, "Alice Smith", "A@B.com", domain.RoleTrainer)
	_, err := s.CreateUser(domain.User{
		Name: "Bob Jones", Email: "a@b.com", PasswordHash: "x", Role: domain.RoleClient,
	})

	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.Len(t, s.Users(), 1)
}

func TestCreateUserValidationLeavesSnapshotUnchanged(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.CreateUser(domain.User{Name: "X", Email: "bad", Role: "nope"})

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Empty(t, s.Users())
}

func TestUpdateAndDeleteUnknownIDSurfaceNotFound(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.UpdateUser("missing", domain.UserPatch{})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.DeleteUser("missing"), ErrNotFound)

	_, err = s.UpdateWorkout("missing", domain.WorkoutPatch{})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.DeleteWorkout("missing"), ErrNotFound)

	_, err = s.UpdateMeal("missing", domain.MealPatch{})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.DeleteMeal("missing"), ErrNotFound)

	_, err = s.UpdateProgress("missing", domain.ProgressPatch{})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.DeleteProgress("missing"), ErrNotFound)
}

func TestDeleteUserDoesNotCascade(t *testing.T) {
	s, _ := newTestStore(t)
	client := mustCreateUser(t, s, "Carol Day", "carol@example.com", domain.RoleClient)

	_, err := s.CreateWorkout(domain.Workout{
		Name:     "Morning Run",
		ClientID: client.ID,
		Exercises: []domain.Exercise{
			{Name: "Run", Sets: 1, Reps: 1},
		},
	})
	require.NoError(t, err)
	_, err = s.CreateMeal(domain.Meal{
		Name: "Oats", Type: domain.MealBreakfast, Calories: 300, UserID: client.ID,
	})
	require.NoError(t, err)
	_, err = s.CreateProgress(domain.ProgressEntry{UserID: client.ID})
	require.NoError(t, err)

	require.NoError(t, s.DeleteUser(client.ID))

	// Orphaned references remain; soft referential integrity.
	assert.Len(t, s.Workouts(), 1)
	assert.Len(t, s.Meals(), 1)
	assert.Len(t, s.ProgressEntries(), 1)
}

func TestCreateWorkoutRequiresExercises(t *testing.T) {
	s, _ := newTestStore(t)
	client := mustCreateUser(t, s, "Carol Day", "carol@example.com", domain.RoleClient)

	_, err := s.CreateWorkout(domain.Workout{Name: "Empty", ClientID: client.ID})

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, "exercises", verrs[0].Field)
	assert.Equal(t, "At least one exercise is required", verrs[0].Message)
	assert.Empty(t, s.Workouts())
}

func TestCreateWorkoutDefaults(t *testing.T) {
	s, _ := newTestStore(t)
	client := mustCreateUser(t, s, "Carol Day", "carol@example.com", domain.RoleClient)

	w, err := s.CreateWorkout(domain.Workout{
		Name:      "  Push Day  ",
		ClientID:  client.ID,
		Completed: true, // must be forced back to false
		Exercises: []domain.Exercise{{Name: "Push-ups", Sets: 3, Reps: 10}},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, w.ID)
	assert.NotEmpty(t, w.Exercises[0].ID)
	assert.Equal(t, "Push Day", w.Name)
	assert.False(t, w.Completed)
	assert.False(t, w.Date.IsZero())
}

func TestCompleteWorkoutIsMonotonic(t *testing.T) {
	s, _ := newTestStore(t)
	client := mustCreateUser(t, s, "Carol Day", "carol@example.com", domain.RoleClient)
	w, err := s.CreateWorkout(domain.Workout{
		Name:      "Push Day",
		ClientID:  client.ID,
		Exercises: []domain.Exercise{{Name: "Push-ups", Sets: 3, Reps: 10}},
	})
	require.NoError(t, err)

	done, err := s.CompleteWorkout(w.ID)
	require.NoError(t, err)
	assert.True(t, done.Completed)

	// Completing again is a no-op, not an error.
	again, err := s.CompleteWorkout(w.ID)
	require.NoError(t, err)
	assert.True(t, again.Completed)
}

func TestUpdateMealPartialPatch(t *testing.T) {
	s, _ := newTestStore(t)
	client := mustCreateUser(t, s, "Carol Day", "carol@example.com", domain.RoleClient)
	m, err := s.CreateMeal(domain.Meal{
		Name: "Oats", Type: domain.MealBreakfast,
		Calories: 300, Protein: 12, UserID: client.ID,
	})
	require.NoError(t, err)

	newCalories := 350.0
	updated, err := s.UpdateMeal(m.ID, domain.MealPatch{Calories: &newCalories})
	require.NoError(t, err)

	assert.Equal(t, 350.0, updated.Calories)
	// Unspecified fields are retained.
	assert.Equal(t, "Oats", updated.Name)
	assert.Equal(t, 12.0, updated.Protein)
	assert.Equal(t, domain.MealBreakfast, updated.Type)
}

func TestUpdateMealRejectsOutOfBoundsPatch(t *testing.T) {
	s, _ := newTestStore(t)
	client := mustCreateUser(t, s, "Carol Day", "carol@example.com", domain.RoleClient)
	m, err := s.CreateMeal(domain.Meal{
		Name: "Oats", Type: domain.MealBreakfast, Calories: 300, UserID: client.ID,
	})
	require.NoError(t, err)

	tooMany := 9000.0
	_, err = s.UpdateMeal(m.ID, domain.MealPatch{Calories: &tooMany})

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)

	// The stored meal is untouched.
	stored, err := s.MealByID(m.ID)
	require.NoError(t, err)
	assert.Equal(t, 300.0, stored.Calories)
}

func TestCreateMessageRequiresBothUsers(t *testing.T) {
	s, _ := newTestStore(t)
	sender := mustCreateUser(t, s, "Carol Day", "carol@example.com", domain.RoleClient)

	_, err := s.CreateMessage(domain.Message{
		SenderID: sender.ID, ReceiverID: "ghost", Content: "hi",
	})
	assert.ErrorIs(t, err, ErrUnknownUser)
	assert.Empty(t, s.Messages())

	receiver := mustCreateUser(t, s, "Dan Reed", "dan@example.com", domain.RoleTrainer)
	msg, err := s.CreateMessage(domain.Message{
		SenderID: sender.ID, ReceiverID: receiver.ID, Content: "hi",
	})
	require.NoError(t, err)
	assert.False(t, msg.Read)
	assert.False(t, msg.Timestamp.IsZero())
}

func TestCreateClientUserLinksBothSides(t *testing.T) {
	s, _ := newTestStore(t)
	trainer := mustCreateUser(t, s, "Tina Cole", "tina@example.com", domain.RoleTrainer)

	client, err := s.CreateClientUser(domain.User{
		Name: "Carol Day", Email: "carol@example.com", PasswordHash: "x",
	}, trainer.ID)
	require.NoError(t, err)

	assert.Equal(t, domain.RoleClient, client.Role)
	require.NotNil(t, client.TrainerID)
	assert.Equal(t, trainer.ID, *client.TrainerID)

	storedTrainer, err := s.UserByID(trainer.ID)
	require.NoError(t, err)
	assert.Contains(t, storedTrainer.ClientIDs, client.ID)
}

func TestCreateClientUserFailureLeavesTrainerUnchanged(t *testing.T) {
	s, _ := newTestStore(t)
	trainer := mustCreateUser(t, s, "Tina Cole", "tina@example.com", domain.RoleTrainer)
	mustCreateUser(t, s, "Carol Day", "carol@example.com", domain.RoleClient)

	_, err := s.CreateClientUser(domain.User{
		Name: "Carol Clone", Email: "carol@example.com", PasswordHash: "x",
	}, trainer.ID)
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	storedTrainer, err := s.UserByID(trainer.ID)
	require.NoError(t, err)
	assert.Empty(t, storedTrainer.ClientIDs)
}

func TestCreateClientUserRejectsNonTrainer(t *testing.T) {
	s, _ := newTestStore(t)
	client := mustCreateUser(t, s, "Carol Day", "carol@example.com", domain.RoleClient)

	_, err := s.CreateClientUser(domain.User{
		Name: "Eve Young", Email: "eve@example.com", PasswordHash: "x",
	}, client.ID)
	assert.ErrorIs(t, err, ErrNotTrainer)

	_, err = s.CreateClientUser(domain.User{
		Name: "Eve Young", Email: "eve@example.com", PasswordHash: "x",
	}, "ghost")
	assert.ErrorIs(t, err, ErrUnknownUser)
}

func TestSnapshotRoundTrip(t *testing.T) {
	kv := newMemKV()
	s := New(kv, nil, nil)

	client := mustCreateUser(t, s, "Carol Day", "carol@example.com", domain.RoleClient)
	_, err := s.CreateWorkout(domain.Workout{
		Name:      "Push Day",
		ClientID:  client.ID,
		Exercises: []domain.Exercise{{Name: "Push-ups", Sets: 3, Reps: 10}},
	})
	require.NoError(t, err)
	_, err = s.SaveSettings(domain.Settings{UserID: client.ID, Theme: "dark", Units: "metric"})
	require.NoError(t, err)
	s.Flush()

	restored := New(kv, nil, nil)
	require.NoError(t, restored.Load(context.Background()))

	assert.Len(t, restored.Users(), 1)
	assert.Len(t, restored.Workouts(), 1)
	assert.Equal(t, "dark", restored.SettingsFor(client.ID).Theme)
}

func TestLoadCorruptSnapshotFallsBackToEmpty(t *testing.T) {
	kv := newMemKV()
	kv.m[storage.KeyUsers] = []byte("{not json")

	var warned []string
	s := New(kv, nil, nil)
	s.OnWarning(func(op string, err error) { warned = append(warned, op) })

	require.NoError(t, s.Load(context.Background()))
	assert.Empty(t, s.Users())
	assert.Contains(t, warned, "load users")
}

func TestPersistenceFailureDoesNotRollBack(t *testing.T) {
	kv := newMemKV()
	kv.failSave = true

	var warned []string
	var mu sync.Mutex
	s := New(kv, nil, nil)
	s.OnWarning(func(op string, err error) {
		mu.Lock()
		defer mu.Unlock()
		warned = append(warned, op)
	})

	u := mustCreateUser(t, s, "Carol Day", "carol@example.com", domain.RoleClient)
	s.Flush()

	// In-memory state is authoritative despite the failed write.
	got, err := s.UserByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "carol@example.com", got.Email)

	mu.Lock()
	defer mu.Unlock()
	assert.Contains(t, warned, "save "+storage.KeyUsers)
}
