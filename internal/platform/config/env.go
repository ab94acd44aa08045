// Package config loads configuration for worldgen commands from the
// environment. Commands layer flag overrides on top of the parsed values.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv fills target from environment variables declared through
// `env` struct tags.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
