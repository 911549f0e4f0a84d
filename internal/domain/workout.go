package domain

import (
	"time"
)

// Difficulty levels a trainer can tag a workout with.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Exercise is a single exercise entry embedded in a Workout.
// Weight, Duration and RestTime are optional; weight is kilograms,
// duration minutes, rest time seconds.
type Exercise struct {
	ID       string   `json:"id"`
	Name     string   `json:"name" validate:"required,min=1,max=100"`
	Sets     int      `json:"sets" validate:"min=1,max=20"`
	Reps     int      `json:"reps" validate:"min=1,max=1000"`
	Weight   *float64 `json:"weight,omitempty" validate:"omitempty,min=0,max=1000"`
	Duration *float64 `json:"duration,omitempty" validate:"omitempty,min=0,max=480"`
	RestTime *float64 `json:"restTime,omitempty" validate:"omitempty,min=0,max=3600"`
}

// Workout represents a single workout session owned by a client and,
// optionally, authored by their trainer. Exercises keep their input order.
type Workout struct {
	ID         string     `json:"id"`
	Name       string     `json:"name" validate:"required,min=1,max=100"`
	Date       time.Time  `json:"date"`
	Exercises  []Exercise `json:"exercises" validate:"min=1,dive"`
	Completed  bool       `json:"completed"`
	ClientID   string     `json:"clientId" validate:"required"`
	TrainerID  string     `json:"trainerId,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
	Category   string     `json:"category,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// WorkoutPatch describes a partial update to a workout. Nil fields are
// retained. Completion is not patchable; it goes through Complete, which
// only ever flips false to true.
type WorkoutPatch struct {
	Name       *string     `json:"name,omitempty"`
	Date       *time.Time  `json:"date,omitempty"`
	Exercises  []Exercise  `json:"exercises,omitempty"`
	Difficulty *Difficulty `json:"difficulty,omitempty"`
	Category   *string     `json:"category,omitempty"`
}
