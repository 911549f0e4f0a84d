package validation

import (
	"fitsync/fitness-tracker/internal/domain"
)

// Registration is the validated payload for creating an account, either
// self-service or trainer-initiated.
type Registration struct {
	Name            string      `json:"name" validate:"required,min=2,max=100"`
	Email           string      `json:"email" validate:"required,email"`
	Password        string      `json:"password" validate:"required"`
	ConfirmPassword string      `json:"confirmPassword" validate:"required"`
	Role            domain.Role `json:"role" validate:"required,oneof=trainer client"`
}

// ValidateRegistration applies the structural schema, the full password
// policy and the confirm-password composite rule. All rules are evaluated;
// the result carries every failure, not just the first.
func ValidateRegistration(in Registration) Errors {
	errs := Struct(in)
	if in.Password != "" {
		errs = append(errs, PasswordPolicy(in.Password)...)
	}
	if in.ConfirmPassword != "" && in.Password != in.ConfirmPassword {
		errs = append(errs, FieldError{Field: "confirmPassword", Message: "passwords do not match"})
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
