package constraint

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"sync"

	"github.com/spf13/cast"

	"github.com/dmitrymomot/schemakit/pkg/logger"
)

// Factory builds a validator for key from a raw declarative constraint value.
type Factory func(key string, constraint any, policy Policy) (Validator, error)

// Registry maps constraint names to factories.
// It is populated at schema-load time and safe for concurrent Build calls.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	policy    Policy
	log       *slog.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithPolicy sets the coercion policy passed to every factory.
func WithPolicy(p Policy) RegistryOption {
	return func(r *Registry) { r.policy = p }
}

// WithLogger sets the registry logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		factories: make(map[string]Factory),
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.With(logger.Component("constraint.registry"), logger.Policy(r.policy.String()))
	return r
}

// NewDefaultRegistry returns a registry with the built-in numeric constraints.
func NewDefaultRegistry(opts ...RegistryOption) *Registry {
	r := NewRegistry(opts...)
	r.MustRegister(NameMinimum, MinimumFactory)
	r.MustRegister(NameMaximum, MaximumFactory)
	return r
}

// Register adds a factory under name.
func (r *Registry) Register(name string, f Factory) error {
	if name == "" {
		return ErrEmptyName
	}
	if f == nil {
		return fmt.Errorf("%w: %s", ErrNilFactory, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.factories[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateConstraint, name)
	}
	r.factories[name] = f
	r.log.Debug("constraint registered", logger.Constraint(name))
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(name string, f Factory) {
	if err := r.Register(name, f); err != nil {
		panic(err)
	}
}

// Policy returns the coercion policy handed to factories.
func (r *Registry) Policy() Policy {
	return r.policy
}

// Names returns the registered constraint names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) lookup(name string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[name]
	return f, ok
}

// Build constructs the validator registered under name.
func (r *Registry) Build(name, key string, constraint any) (Validator, error) {
	f, ok := r.lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownConstraint, name)
	}

	v, err := f(key, constraint, r.policy)
	if err != nil {
		r.log.Warn("failed to build constraint",
			logger.Constraint(name),
			logger.Field(key),
			logger.Error(err),
		)
		return nil, fmt.Errorf("build %s for %q: %w", name, key, err)
	}
	return v, nil
}

// BuildField builds a validator for every registered constraint in decl,
// ordered by constraint name. Unregistered names belong to other rules and
// are skipped. All build errors are returned joined.
func (r *Registry) BuildField(key string, decl map[string]any) ([]Validator, error) {
	names := make([]string, 0, len(decl))
	for name := range decl {
		names = append(names, name)
	}
	sort.Strings(names)

	var (
		validators []Validator
		errs       []error
	)
	for _, name := range names {
		if _, ok := r.lookup(name); !ok {
			r.log.Debug("skipping unregistered constraint", logger.Constraint(name), logger.Field(key))
			continue
		}
		v, err := r.Build(name, key, decl[name])
		if err != nil {
			errs = append(errs, err)
			continue
		}
		validators = append(validators, v)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return validators, nil
}

// MinimumFactory builds a Minimum from a raw constraint value.
func MinimumFactory(key string, constraint any, policy Policy) (Validator, error) {
	c, err := ToConstraint(constraint)
	if err != nil {
		return nil, err
	}
	v, err := NewMinimum(key, c, WithCoercion(policy))
	if err != nil {
		return nil, err
	}
	return v, nil
}

// MaximumFactory builds a Maximum from a raw constraint value.
func MaximumFactory(key string, constraint any, policy Policy) (Validator, error) {
	c, err := ToConstraint(constraint)
	if err != nil {
		return nil, err
	}
	v, err := NewMaximum(key, c, WithCoercion(policy))
	if err != nil {
		return nil, err
	}
	return v, nil
}

// ToConstraint normalises a declarative bound (int, float, json.Number,
// numeric string) to float64. Booleans, nil and non-numeric values fail
// with ErrInvalidConstraint.
func ToConstraint(raw any) (float64, error) {
	v := indirect(raw)
	switch v.(type) {
	case nil, bool:
		return 0, fmt.Errorf("%w: %s", ErrInvalidConstraint, Inspect(raw))
	}
	c, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(c) || math.IsInf(c, 0) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidConstraint, Inspect(raw))
	}
	return c, nil
}
