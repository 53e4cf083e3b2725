package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	mu    sync.Mutex
	cache = make(map[reflect.Type]any)

	defaultEnvLoaded sync.Once
)

// Load populates v from environment variables using `env` struct tags.
// The default .env file is read once, if present. Each struct type is parsed
// once; later calls return the cached copy. Failed parses are not cached.
//
//	type SchemaConfig struct {
//		Coercion string `env:"CONSTRAINT_COERCION" envDefault:"permissive"`
//	}
//
//	var cfg SchemaConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	defaultEnvLoaded.Do(func() {
		// A missing .env file is fine.
		_ = godotenv.Load()
	})

	typ := reflect.TypeFor[T]()

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := cache[typ]; ok {
		*v = cached.(T)
		return nil
	}
	return parse(typ, v)
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Reload parses v from the current environment, replacing any cached copy.
func Reload[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	mu.Lock()
	defer mu.Unlock()

	return parse(reflect.TypeFor[T](), v)
}

// LoadEnv reads the given .env files into the process environment.
// Later files override earlier ones and existing variables. With no paths
// the default .env in the working directory is loaded without overriding.
func LoadEnv(paths ...string) error {
	var err error
	if len(paths) == 0 {
		err = godotenv.Load()
	} else {
		err = godotenv.Overload(paths...)
	}
	if err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(err)
	}
}

// ResetCache drops every cached configuration. Intended for tests.
func ResetCache() {
	mu.Lock()
	defer mu.Unlock()
	clear(cache)
}

// parse must be called with mu held.
func parse[T any](typ reflect.Type, v *T) error {
	if typ.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %s", ErrInvalidConfigType, typ)
	}

	var fresh T
	if err := env.Parse(&fresh); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	cache[typ] = fresh
	*v = fresh
	return nil
}
