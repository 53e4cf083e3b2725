package constraint

import (
	"fmt"

	"github.com/dmitrymomot/schemakit/pkg/config"
)

// Config holds environment-driven constraint settings.
type Config struct {
	Coercion Policy `env:"CONSTRAINT_COERCION" envDefault:"permissive"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, fmt.Errorf("load constraint config: %w", err)
	}
	return cfg, nil
}

// NewRegistryFromConfig returns the default registry using the configured
// coercion policy. Options are applied after the policy and may override it.
func NewRegistryFromConfig(cfg Config, opts ...RegistryOption) *Registry {
	return NewDefaultRegistry(append([]RegistryOption{WithPolicy(cfg.Coercion)}, opts...)...)
}
