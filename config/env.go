package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env is the runtime configuration read from the environment
// Command-line flags take precedence over these values
type Env struct {
	Scene  string `env:"SCENERY_SCENE"`
	Debug  bool   `env:"SCENERY_DEBUG"`
	LogDir string `env:"SCENERY_LOG_DIR" envDefault:"logs"`
	Color  string `env:"SCENERY_COLOR"   envDefault:"auto"`
}

// LoadEnv parses the environment into Env
// Values are not validated so flags can still override them; call Validate after merging
func LoadEnv() (Env, error) {
	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate checks the merged configuration
func (e Env) Validate() error {
	switch e.Color {
	case "auto", "256", "truecolor":
		return nil
	default:
		return fmt.Errorf("color mode %q: want auto, 256 or truecolor", e.Color)
	}
}
