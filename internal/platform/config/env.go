package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every environment variable read by the site tooling.
const EnvPrefix = "NAJRAN_"

// ParseEnv loads configuration from environment variables.
//
// Struct tags are written without EnvPrefix; ParseEnv prepends it so the tag
// `env:"SITE_ROOT"` reads NAJRAN_SITE_ROOT.
func ParseEnv(target any) error {
	return ParseEnvWithPrefix(target, EnvPrefix)
}

// ParseEnvWithPrefix loads configuration using an explicit variable prefix.
func ParseEnvWithPrefix(target any, prefix string) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: prefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
