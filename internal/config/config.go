// internal/config/config.go
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env carries defaults for values not supplied on the command line.
// Flag values win over these; the app validates them with the same
// rules as flags.
type Env struct {
	Limit  uint64 `env:"ERATOS_LIMIT"`
	Output string `env:"ERATOS_OUTPUT"`
}

// FromEnv loads environment defaults.
func FromEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}
