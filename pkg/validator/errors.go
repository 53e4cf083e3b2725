package validator

import "errors"

// Failure kinds shared by every rule family.
var (
	// ErrValidationFailed is matched by any non-empty ValidationErrors.
	ErrValidationFailed = errors.New("validation failed")

	// ErrConstraintViolation is returned when a value does not satisfy a declared constraint.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrTypeMismatch is returned when a value cannot be interpreted as the type a rule expects.
	ErrTypeMismatch = errors.New("type mismatch")
)
