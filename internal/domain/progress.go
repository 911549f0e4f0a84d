package domain

import (
	"time"
)

// Measurements holds optional body measurements in centimeters.
type Measurements struct {
	Chest  *float64 `json:"chest,omitempty" validate:"omitempty,min=20,max=300"`
	Waist  *float64 `json:"waist,omitempty" validate:"omitempty,min=20,max=300"`
	Hips   *float64 `json:"hips,omitempty" validate:"omitempty,min=20,max=300"`
	Arms   *float64 `json:"arms,omitempty" validate:"omitempty,min=10,max=150"`
	Thighs *float64 `json:"thighs,omitempty" validate:"omitempty,min=10,max=150"`
	Neck   *float64 `json:"neck,omitempty" validate:"omitempty,min=10,max=100"`
}

// ProgressEntry is a point-in-time body and wellness snapshot for a user.
// Every metric is optional; an entry with only a date is still valid.
// Weight and muscle are kilograms, body fat is a percentage, mood and
// energy are 1-10 scales, sleep is hours.
type ProgressEntry struct {
	ID           string        `json:"id"`
	Date         time.Time     `json:"date"`
	Weight       *float64      `json:"weight,omitempty" validate:"omitempty,min=20,max=500"`
	BodyFat      *float64      `json:"bodyFat,omitempty" validate:"omitempty,min=1,max=60"`
	Muscle       *float64      `json:"muscle,omitempty" validate:"omitempty,min=10,max=200"`
	Measurements *Measurements `json:"measurements,omitempty"`
	Mood         *int          `json:"mood,omitempty" validate:"omitempty,min=1,max=10"`
	Energy       *int          `json:"energy,omitempty" validate:"omitempty,min=1,max=10"`
	Sleep        *float64      `json:"sleep,omitempty" validate:"omitempty,min=0,max=24"`
	UserID       string        `json:"userId" validate:"required"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// ProgressPatch describes a partial update to a progress entry.
type ProgressPatch struct {
	Date         *time.Time    `json:"date,omitempty"`
	Weight       *float64      `json:"weight,omitempty"`
	BodyFat      *float64      `json:"bodyFat,omitempty"`
	Muscle       *float64      `json:"muscle,omitempty"`
	Measurements *Measurements `json:"measurements,omitempty"`
	Mood         *int          `json:"mood,omitempty"`
	Energy       *int          `json:"energy,omitempty"`
	Sleep        *float64      `json:"sleep,omitempty"`
}
