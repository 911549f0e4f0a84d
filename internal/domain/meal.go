package domain

import (
	"time"
)

// MealType type for the meal slot within a day
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// Meal represents one logged meal with its nutrition snapshot.
// Fiber, Sugar and Sodium are optional micro fields. Macros and fiber
// are grams, sodium is milligrams.
type Meal struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"required,min=1,max=100"`
	Type      MealType  `json:"type" validate:"required,oneof=breakfast lunch dinner snack"`
	Calories  float64   `json:"calories" validate:"min=0,max=5000"`
	Protein   float64   `json:"protein" validate:"min=0,max=500"`
	Carbs     float64   `json:"carbs" validate:"min=0,max=1000"`
	Fat       float64   `json:"fat" validate:"min=0,max=500"`
	Fiber     *float64  `json:"fiber,omitempty" validate:"omitempty,min=0,max=200"`
	Sugar     *float64  `json:"sugar,omitempty" validate:"omitempty,min=0,max=500"`
	Sodium    *float64  `json:"sodium,omitempty" validate:"omitempty,min=0,max=10000"`
	Date      time.Time `json:"date"`
	UserID    string    `json:"userId" validate:"required"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MealPatch describes a partial update to a meal. Nil fields are retained.
type MealPatch struct {
	Name     *string    `json:"name,omitempty"`
	Type     *MealType  `json:"type,omitempty"`
	Calories *float64   `json:"calories,omitempty"`
	Protein  *float64   `json:"protein,omitempty"`
	Carbs    *float64   `json:"carbs,omitempty"`
	Fat      *float64   `json:"fat,omitempty"`
	Fiber    *float64   `json:"fiber,omitempty"`
	Sugar    *float64   `json:"sugar,omitempty"`
	Sodium   *float64   `json:"sodium,omitempty"`
	Date     *time.Time `json:"date,omitempty"`
}
