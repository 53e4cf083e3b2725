package constraint

// NameMaximum is the schema keyword for an inclusive upper bound.
const NameMaximum = "maximum"

// Maximum passes when the coerced value is less than or equal to its constraint.
type Maximum struct {
	key        string
	constraint float64
	policy     Policy
}

// NewMaximum returns a maximum validator for key.
func NewMaximum(key string, constraint float64, opts ...Option) (*Maximum, error) {
	o, err := buildOptions(key, constraint, opts)
	if err != nil {
		return nil, err
	}
	return &Maximum{key: key, constraint: constraint, policy: o.policy}, nil
}

// Name returns NameMaximum.
func (m *Maximum) Name() string { return NameMaximum }

// Key returns the field identifier used in messages.
func (m *Maximum) Key() string { return m.key }

// Constraint returns the upper bound.
func (m *Maximum) Constraint() float64 { return m.constraint }

// Policy returns the coercion policy applied to values.
func (m *Maximum) Policy() Policy { return m.policy }

// Validate checks value against the bound. It is safe for concurrent use.
func (m *Maximum) Validate(value any) Result {
	return ValidateMaximum(value, m.key, m.constraint, m.policy)
}

// ValidateMaximum checks value against an inclusive upper bound.
func ValidateMaximum(value any, key string, constraint float64, policy Policy) Result {
	return maximumSpec.check(value, key, constraint, policy)
}
