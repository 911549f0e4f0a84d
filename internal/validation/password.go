package validation

import (
	"strings"
	"unicode"
)

// The password policy predicates are shared between the registration
// validator and the advisory strength scorer, so both always agree on
// what a "good" password is.

const specialRunes = "!@#$%^&*()-_=+[]{};:'\",.<>/?\\|`~"

func hasMinLength(pw string) bool { return len(pw) >= 8 }

func hasUpper(pw string) bool {
	return strings.ContainsFunc(pw, unicode.IsUpper)
}

func hasLower(pw string) bool {
	return strings.ContainsFunc(pw, unicode.IsLower)
}

func hasDigit(pw string) bool {
	return strings.ContainsFunc(pw, unicode.IsDigit)
}

func hasSpecial(pw string) bool {
	return strings.ContainsAny(pw, specialRunes)
}

type passwordRule struct {
	met     func(string) bool
	message string // validation failure, attributed to field "password"
	tip     string // remediation advice from the strength scorer
}

var passwordRules = []passwordRule{
	{hasMinLength, "must be at least 8 characters", "Use at least 8 characters"},
	{hasUpper, "must contain an uppercase letter", "Add an uppercase letter"},
	{hasLower, "must contain a lowercase letter", "Add a lowercase letter"},
	{hasDigit, "must contain a digit", "Add a number"},
	{hasSpecial, "must contain a special character", "Add a special character (e.g. !@#$%)"},
}

// PasswordPolicy evaluates every policy predicate (no short-circuit) and
// returns one FieldError per unmet predicate, all on field "password".
func PasswordPolicy(pw string) Errors {
	var errs Errors
	for _, r := range passwordRules {
		if !r.met(pw) {
			errs = append(errs, FieldError{Field: "password", Message: r.message})
		}
	}
	return errs
}

// PasswordStrength scores a password 0-6: one point per satisfied policy
// predicate plus a bonus point for length >= 12. Feedback lists a tip for
// each unmet policy predicate; the length bonus only earns a tip once the
// base policy is fully satisfied. Advisory only -- account creation is
// gated by PasswordPolicy, never by the score.
func PasswordStrength(pw string) (score int, feedback []string) {
	for _, r := range passwordRules {
		if r.met(pw) {
			score++
		} else {
			feedback = append(feedback, r.tip)
		}
	}
	if len(pw) >= 12 {
		score++
	} else if len(feedback) == 0 {
		feedback = append(feedback, "Consider using 12 or more characters")
	}
	return score, feedback
}
