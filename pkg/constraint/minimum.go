package constraint

// NameMinimum is the schema keyword for an inclusive lower bound.
const NameMinimum = "minimum"

// Minimum passes when the coerced value is greater than or equal to its constraint.
type Minimum struct {
	key        string
	constraint float64
	policy     Policy
}

// NewMinimum returns a minimum validator for key.
func NewMinimum(key string, constraint float64, opts ...Option) (*Minimum, error) {
	o, err := buildOptions(key, constraint, opts)
	if err != nil {
		return nil, err
	}
	return &Minimum{key: key, constraint: constraint, policy: o.policy}, nil
}

// Name returns NameMinimum.
func (m *Minimum) Name() string { return NameMinimum }

// Key returns the field identifier used in messages.
func (m *Minimum) Key() string { return m.key }

// Constraint returns the lower bound.
func (m *Minimum) Constraint() float64 { return m.constraint }

// Policy returns the coercion policy applied to values.
func (m *Minimum) Policy() Policy { return m.policy }

// Validate checks value against the bound. It is safe for concurrent use.
func (m *Minimum) Validate(value any) Result {
	return ValidateMinimum(value, m.key, m.constraint, m.policy)
}

// ValidateMinimum checks value against an inclusive lower bound.
// A nil value always passes. On failure the message renders the original
// value, not the coerced number.
func ValidateMinimum(value any, key string, constraint float64, policy Policy) Result {
	return minimumSpec.check(value, key, constraint, policy)
}
