package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fitsync/fitness-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTrainerClientWorkoutFlow walks the primary product path end to end:
// a trainer signs up, creates a managed client, the client logs in, the
// trainer assigns a workout, the client completes it and the dashboard
// reflects it.
func TestTrainerClientWorkoutFlow(t *testing.T) {
	ctx := context.Background()
	st, kv := newTestStore(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	auth := NewAuthService(st, kv, logger, testSecret, time.Hour)
	trainers := NewTrainerService(st)
	workouts := NewWorkoutService(st)
	statsSvc := NewStatsService(st)

	trainer, err := auth.Register(ctx, registration("Coach Tina", "tina@example.com", domain.RoleTrainer))
	require.NoError(t, err)

	client, err := trainers.CreateClient(ctx, trainer.ID, registration("Client Carl", "carl@example.com", domain.RoleClient))
	require.NoError(t, err)
	require.NotNil(t, client.TrainerID)
	assert.Equal(t, trainer.ID, *client.TrainerID)

	roster, err := trainers.ManagedClients(ctx, trainer.ID)
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, client.ID, roster[0].ID)

	// The password created for the client works immediately.
	token, loggedIn, err := auth.Login(ctx, "carl@example.com", "Str0ngPass!")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	viewer, err := auth.CurrentUser(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, loggedIn.ID, viewer.ID)

	w, err := workouts.Create(ctx, asViewer(trainer), domain.Workout{
		Name:     "Morning Strength",
		ClientID: client.ID,
		Exercises: []domain.Exercise{
			{Name: "Push-ups", Sets: 3, Reps: 10},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, trainer.ID, w.TrainerID)
	assert.False(t, w.Completed)

	w, err = workouts.Complete(ctx, viewer, w.ID)
	require.NoError(t, err)
	assert.True(t, w.Completed)

	dash, err := statsSvc.Dashboard(ctx, viewer)
	require.NoError(t, err)
	assert.Equal(t, 1, dash.Summary.TotalWorkouts)
	assert.Equal(t, 1, dash.Summary.CompletedWorkouts)
	assert.Equal(t, 100, dash.Summary.CompletionRate)
	require.Len(t, dash.WeeklyActivity, 7)
	assert.Equal(t, 1, dash.WeeklyActivity[6].Workouts)
	require.NotEmpty(t, dash.ExerciseFrequency)
	assert.Equal(t, "Push-ups", dash.ExerciseFrequency[0].Name)
	assert.True(t, dash.Achievements[0].Earned)

	// The trainer's own dashboard counts authored workouts too.
	trainerDash, err := statsSvc.Dashboard(ctx, asViewer(trainer))
	require.NoError(t, err)
	assert.Equal(t, 1, trainerDash.Summary.CompletedWorkouts)
}

func TestWorkoutAuthorization(t *testing.T) {
	ctx := context.Background()
	st, kv := newTestStore(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	auth := NewAuthService(st, kv, logger, testSecret, time.Hour)
	workouts := NewWorkoutService(st)

	alice, err := auth.Register(ctx, registration("Alice", "alice@example.com", domain.RoleClient))
	require.NoError(t, err)
	bob, err := auth.Register(ctx, registration("Bob", "bob@example.com", domain.RoleClient))
	require.NoError(t, err)

	w, err := workouts.Create(ctx, asViewer(alice), domain.Workout{
		Name:      "Solo Session",
		Exercises: []domain.Exercise{{Name: "Squat", Sets: 3, Reps: 8}},
	})
	require.NoError(t, err)
	assert.Equal(t, alice.ID, w.ClientID)

	_, err = workouts.Complete(ctx, asViewer(bob), w.ID)
	assert.ErrorIs(t, err, ErrAccessDenied)
	err = workouts.Delete(ctx, asViewer(bob), w.ID)
	assert.ErrorIs(t, err, ErrAccessDenied)

	listed, err := workouts.List(ctx, asViewer(bob))
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestTrainerCannotAssignToUnmanagedClient(t *testing.T) {
	ctx := context.Background()
	st, kv := newTestStore(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	auth := NewAuthService(st, kv, logger, testSecret, time.Hour)
	workouts := NewWorkoutService(st)

	trainer, err := auth.Register(ctx, registration("Coach", "coach@example.com", domain.RoleTrainer))
	require.NoError(t, err)
	stranger, err := auth.Register(ctx, registration("Stranger", "stranger@example.com", domain.RoleClient))
	require.NoError(t, err)

	_, err = workouts.Create(ctx, asViewer(trainer), domain.Workout{
		Name:      "Not Yours",
		ClientID:  stranger.ID,
		Exercises: []domain.Exercise{{Name: "Squat", Sets: 3, Reps: 8}},
	})
	assert.ErrorIs(t, err, ErrClientNotOwned)
}

func TestCreateClientRequiresTrainerRole(t *testing.T) {
	ctx := context.Background()
	st, kv := newTestStore(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	auth := NewAuthService(st, kv, logger, testSecret, time.Hour)
	trainers := NewTrainerService(st)

	client, err := auth.Register(ctx, registration("Carl", "carl@example.com", domain.RoleClient))
	require.NoError(t, err)

	_, err = trainers.CreateClient(ctx, client.ID, registration("New", "new@example.com", domain.RoleClient))
	assert.ErrorIs(t, err, ErrNotATrainer)

	_, err = trainers.CreateClient(ctx, "missing", registration("New", "new@example.com", domain.RoleClient))
	assert.ErrorIs(t, err, ErrTrainerNotFound)
}

func TestMessageServiceRules(t *testing.T) {
	ctx := context.Background()
	st, kv := newTestStore(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	auth := NewAuthService(st, kv, logger, testSecret, time.Hour)
	messages := NewMessageService(st)

	alice, err := auth.Register(ctx, registration("Alice", "alice@example.com", domain.RoleClient))
	require.NoError(t, err)
	bob, err := auth.Register(ctx, registration("Bob", "bob@example.com", domain.RoleClient))
	require.NoError(t, err)

	t.Run("unknown recipient", func(t *testing.T) {
		_, err := messages.Send(ctx, asViewer(alice), "ghost", "hello?")
		assert.ErrorIs(t, err, ErrRecipientNotFound)
	})

	msg, err := messages.Send(ctx, asViewer(alice), bob.ID, "hello")
	require.NoError(t, err)
	assert.False(t, msg.Read)

	t.Run("only the receiver marks read", func(t *testing.T) {
		_, err := messages.MarkRead(ctx, asViewer(alice), msg.ID)
		assert.ErrorIs(t, err, ErrAccessDenied)

		marked, err := messages.MarkRead(ctx, asViewer(bob), msg.ID)
		require.NoError(t, err)
		assert.True(t, marked.Read)
	})

	t.Run("conversation lists both directions in send order", func(t *testing.T) {
		_, err := messages.Send(ctx, asViewer(bob), alice.ID, "hi back")
		require.NoError(t, err)

		conv, err := messages.Conversation(ctx, asViewer(alice), bob.ID)
		require.NoError(t, err)
		require.Len(t, conv, 2)
		assert.Equal(t, "hello", conv[0].Content)
		assert.Equal(t, "hi back", conv[1].Content)
	})
}

func TestNutritionServiceScopesToViewer(t *testing.T) {
	ctx := context.Background()
	st, kv := newTestStore(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	auth := NewAuthService(st, kv, logger, testSecret, time.Hour)
	meals := NewNutritionService(st)

	alice, err := auth.Register(ctx, registration("Alice", "alice@example.com", domain.RoleClient))
	require.NoError(t, err)
	bob, err := auth.Register(ctx, registration("Bob", "bob@example.com", domain.RoleClient))
	require.NoError(t, err)

	m, err := meals.Create(ctx, asViewer(alice), domain.Meal{
		Name:     "Oatmeal",
		Type:     domain.MealBreakfast,
		Calories: 350,
	})
	require.NoError(t, err)
	assert.Equal(t, alice.ID, m.UserID)

	_, err = meals.Update(ctx, asViewer(bob), m.ID, domain.MealPatch{})
	assert.ErrorIs(t, err, ErrAccessDenied)
	err = meals.Delete(ctx, asViewer(bob), m.ID)
	assert.ErrorIs(t, err, ErrAccessDenied)

	listed, err := meals.List(ctx, asViewer(bob))
	require.NoError(t, err)
	assert.Empty(t, listed)
}

// asViewer refetches nothing; service methods take the resolved user as the
// middleware hands it over, minus the password hash.
func asViewer(u domain.User) domain.User {
	u.PasswordHash = ""
	return u
}
