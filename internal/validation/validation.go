package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is a single validation failure attributed to one input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the full set of failures for one input. It implements error so
// services can return it alongside other sentinel errors; callers inspect
// it with errors.As.
type Errors []FieldError

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// validate is the shared validator instance. Field names in errors come
// from json tags so they match what API clients submitted.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Struct runs tag-based validation on any domain value and translates the
// validator's failures into field-level messages. It never panics on bad
// user input; a non-struct argument is a programming error and is allowed
// to propagate.
func Struct(v any) Errors {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// InvalidValidationError: misuse of the validator, not user input.
		panic(err)
	}
	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fieldPath(fe.Namespace()),
			Message: messageFor(fe),
		})
	}
	return out
}

// fieldPath strips the root struct name from a validator namespace,
// e.g. "Workout.exercises[0].sets" -> "exercises[0].sets".
func fieldPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		if fe.Kind() == reflect.Slice {
			if fe.Field() == "exercises" {
				return "At least one exercise is required"
			}
			return fmt.Sprintf("must contain at least %s items", fe.Param())
		}
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
