package constraint

import "github.com/dmitrymomot/schemakit/pkg/validator"

// Kind classifies a failed validation.
type Kind uint8

const (
	KindConstraintViolation Kind = iota + 1
	KindTypeMismatch
)

func (k Kind) String() string {
	switch k {
	case KindConstraintViolation:
		return "constraint_violation"
	case KindTypeMismatch:
		return "type_mismatch"
	}
	return "unknown"
}

// Violation describes why a value failed a constraint.
type Violation struct {
	Kind       Kind
	Name       string
	Key        string
	Constraint float64
	Value      any
	Message    string

	cause error
}

func (v *Violation) Error() string {
	return v.Message
}

func (v *Violation) Unwrap() []error {
	errs := make([]error, 0, 2)
	switch v.Kind {
	case KindTypeMismatch:
		errs = append(errs, validator.ErrTypeMismatch)
	default:
		errs = append(errs, validator.ErrConstraintViolation)
	}
	if v.cause != nil {
		errs = append(errs, v.cause)
	}
	return errs
}

// Result is the outcome of a single validation.
type Result struct {
	Valid     bool
	Violation *Violation
}

func pass() Result {
	return Result{Valid: true}
}

func fail(v *Violation) Result {
	return Result{Violation: v}
}

// Message returns the violation message, or an empty string on success.
func (r Result) Message() string {
	if r.Violation == nil {
		return ""
	}
	return r.Violation.Message
}

// Err returns the violation as an error, or nil on success.
func (r Result) Err() error {
	if r.Valid || r.Violation == nil {
		return nil
	}
	return r.Violation
}
