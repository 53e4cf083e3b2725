package constraint

import (
	"fmt"
	"math"

	"github.com/dmitrymomot/schemakit/pkg/validator"
)

// Validator checks one field value against one declared constraint.
type Validator interface {
	Name() string
	Key() string
	Validate(value any) Result
}

// Option configures a constraint validator.
type Option func(*options)

type options struct {
	policy Policy
}

// WithCoercion sets the coercion policy used by the validator.
func WithCoercion(p Policy) Option {
	return func(o *options) { o.policy = p }
}

// boundSpec describes a one-sided numeric bound.
type boundSpec struct {
	name     string
	relation string
	holds    func(value, bound float64) bool
}

var (
	minimumSpec = boundSpec{name: NameMinimum, relation: "higher", holds: func(v, c float64) bool { return v >= c }}
	maximumSpec = boundSpec{name: NameMaximum, relation: "lower", holds: func(v, c float64) bool { return v <= c }}
)

func (s boundSpec) check(value any, key string, constraint float64, policy Policy) Result {
	if IsAbsent(value) {
		return pass()
	}

	n, err := policy.Coerce(value)
	if err != nil {
		return fail(&Violation{
			Kind:       KindTypeMismatch,
			Name:       s.name,
			Key:        key,
			Constraint: constraint,
			Value:      value,
			Message:    fmt.Sprintf("Expected %s to be a number, but in fact %s", key, Inspect(value)),
			cause:      err,
		})
	}

	if s.holds(n, constraint) {
		return pass()
	}

	return fail(&Violation{
		Kind:       KindConstraintViolation,
		Name:       s.name,
		Key:        key,
		Constraint: constraint,
		Value:      value,
		Message: fmt.Sprintf("Expected %s to be equal or %s than %s, but in fact %s",
			key, s.relation, validator.FormatNumber(constraint), Inspect(value)),
	})
}

func buildOptions(key string, constraint float64, opts []Option) (options, error) {
	if key == "" {
		return options{}, ErrEmptyKey
	}
	if math.IsNaN(constraint) || math.IsInf(constraint, 0) {
		return options{}, fmt.Errorf("%w: %v", ErrInvalidConstraint, constraint)
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o, nil
}
