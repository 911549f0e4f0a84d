package validation

import (
	"testing"

	"fitsync/fitness-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordStrength(t *testing.T) {
	tests := []struct {
		name         string
		password     string
		wantScore    int
		wantFeedback int
	}{
		{
			name:         "lowercase only short",
			password:     "abc",
			wantScore:    1,
			wantFeedback: 4, // length, uppercase, digit, special
		},
		{
			name:         "all predicates but short of 12",
			password:     "Abcdefg1!",
			wantScore:    5,
			wantFeedback: 1, // only the length bonus tip
		},
		{
			name:         "all predicates and 12+ chars",
			password:     "Abcdefg1!xyz",
			wantScore:    6,
			wantFeedback: 0,
		},
		{
			name:         "empty password",
			password:     "",
			wantScore:    0,
			wantFeedback: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, feedback := PasswordStrength(tt.password)
			assert.Equal(t, tt.wantScore, score)
			assert.Len(t, feedback, tt.wantFeedback)
		})
	}
}

func TestPasswordPolicy(t *testing.T) {
	t.Run("all rules evaluated not short-circuited", func(t *testing.T) {
		errs := PasswordPolicy("abc")
		require.Len(t, errs, 4)
		for _, fe := range errs {
			assert.Equal(t, "password", fe.Field)
		}
	})

	t.Run("strong password passes", func(t *testing.T) {
		assert.Nil(t, PasswordPolicy("Abcdefg1!"))
	})
}

func TestValidateRegistration(t *testing.T) {
	valid := Registration{
		Name:            "Jordan Miles",
		Email:           "jordan@example.com",
		Password:        "Sup3r$trong",
		ConfirmPassword: "Sup3r$trong",
		Role:            domain.RoleClient,
	}

	t.Run("valid payload", func(t *testing.T) {
		assert.Nil(t, ValidateRegistration(valid))
	})

	t.Run("password mismatch attributed to confirmPassword", func(t *testing.T) {
		in := valid
		in.ConfirmPassword = "Different1!"
		errs := ValidateRegistration(in)
		require.NotNil(t, errs)
		require.Len(t, errs, 1)
		assert.Equal(t, "confirmPassword", errs[0].Field)
	})

	t.Run("bad email and weak password reported together", func(t *testing.T) {
		in := valid
		in.Email = "not-an-email"
		in.Password = "weak"
		in.ConfirmPassword = "weak"
		errs := ValidateRegistration(in)
		require.NotNil(t, errs)

		fields := make(map[string]int)
		for _, fe := range errs {
			fields[fe.Field]++
		}
		assert.Equal(t, 1, fields["email"])
		assert.Equal(t, 4, fields["password"]) // length, upper, digit, special
	})

	t.Run("invalid role", func(t *testing.T) {
		in := valid
		in.Role = "admin"
		errs := ValidateRegistration(in)
		require.NotNil(t, errs)
		assert.Equal(t, "role", errs[0].Field)
	})
}

func TestStructWorkout(t *testing.T) {
	base := domain.Workout{
		Name:     "Leg Day",
		ClientID: "client-1",
		Exercises: []domain.Exercise{
			{Name: "Squat", Sets: 5, Reps: 5},
		},
	}

	t.Run("valid workout", func(t *testing.T) {
		assert.Nil(t, Struct(base))
	})

	t.Run("zero exercises rejected", func(t *testing.T) {
		w := base
		w.Exercises = nil
		errs := Struct(w)
		require.NotNil(t, errs)
		require.Len(t, errs, 1)
		assert.Equal(t, "exercises", errs[0].Field)
		assert.Equal(t, "At least one exercise is required", errs[0].Message)
	})

	t.Run("exercise bounds", func(t *testing.T) {
		w := base
		w.Exercises = []domain.Exercise{{Name: "Squat", Sets: 21, Reps: 0}}
		errs := Struct(w)
		require.Len(t, errs, 2)
		assert.Equal(t, "exercises[0].sets", errs[0].Field)
		assert.Equal(t, "exercises[0].reps", errs[1].Field)
	})
}

func TestStructMealBounds(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*domain.Meal)
		wantField string
	}{
		{"calories over cap", func(m *domain.Meal) { m.Calories = 5001 }, "calories"},
		{"protein over cap", func(m *domain.Meal) { m.Protein = 501 }, "protein"},
		{"negative fat", func(m *domain.Meal) { m.Fat = -1 }, "fat"},
		{"bad type", func(m *domain.Meal) { m.Type = "brunch" }, "type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := domain.Meal{Name: "Oats", Type: domain.MealBreakfast, Calories: 350, UserID: "u1"}
			tt.mutate(&m)
			errs := Struct(m)
			require.NotNil(t, errs)
			assert.Equal(t, tt.wantField, errs[0].Field)
		})
	}
}

func TestSanitizeString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trims whitespace", "  Push-ups  ", "Push-ups"},
		{"strips angle brackets", "<script>alert</script>", "scriptalert/script"},
		{"plain text untouched", "Bench Press", "Bench Press"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeString(tt.in))
		})
	}
}

func TestSanitizeNumber(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want *float64
	}{
		{"decimal string", "12.5", ptr(12.5)},
		{"non-numeric string", "abc", nil},
		{"empty string", "", nil},
		{"float passthrough", 42.0, ptr(42.0)},
		{"int accepted", 7, ptr(7.0)},
		{"nil input", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeNumber(tt.in)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func ptr(f float64) *float64 { return &f }
