package constraint

import "errors"

var (
	ErrEmptyKey            = errors.New("constraint: field key is empty")
	ErrInvalidConstraint   = errors.New("constraint: bound is not a finite number")
	ErrEmptyName           = errors.New("constraint: name is empty")
	ErrNilFactory          = errors.New("constraint: factory is nil")
	ErrUnknownConstraint   = errors.New("constraint: unknown constraint")
	ErrDuplicateConstraint = errors.New("constraint: already registered")
	ErrUnknownPolicy       = errors.New("constraint: unknown coercion policy")
)
