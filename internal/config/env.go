package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env carries the process-environment overrides. Flags win over these;
// these win over the config file.
type Env struct {
	ConfigPath string `env:"BLUEBOOKS_CONFIG" envDefault:"bluebooks.yaml"`
	Entity     string `env:"BLUEBOOKS_ENTITY"`
	Verbose    bool   `env:"BLUEBOOKS_VERBOSE"`
}

// ParseEnv reads the overrides from the process environment.
func ParseEnv() (Env, error) {
	e, err := env.ParseAs[Env]()
	if err != nil {
		return Env{}, fmt.Errorf("parsing environment: %w", err)
	}
	return e, nil
}
