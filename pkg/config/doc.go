// Package config loads typed configuration from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for struct-tag parsing and
// github.com/joho/godotenv for .env files. Each configuration struct type is
// parsed once per process and served from an in-memory cache afterwards;
// Reload and ResetCache exist for tests and for callers that change the
// environment at runtime.
//
//	type Config struct {
//	    Coercion string `env:"CONSTRAINT_COERCION" envDefault:"permissive"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// Errors can be matched with errors.Is against ErrParsingConfig,
// ErrInvalidConfigType, ErrNilPointer and ErrLoadingEnvFile.
package config
