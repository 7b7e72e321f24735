// Package config carga la configuración del servicio desde variables de entorno.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"

	"urban-people/internal/domain/users"
)

// Config agrupa toda la configuración de la aplicación.
type Config struct {
	AppName string `env:"APP_NAME" envDefault:"urban-people"`
	Port    int    `env:"PORT" envDefault:"8080"`

	// strict | loose
	Variant string `env:"VARIANT" envDefault:"strict"`

	// Random seed for the five generated users. 0 means time based.
	Seed uint64 `env:"SEED" envDefault:"0"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	// Server timeouts
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

// UsersVariant devuelve VARIANT ya parseado.
func (c *Config) UsersVariant() users.Variant {
	v, _ := users.ParseVariant(c.Variant)
	return v
}

// Load parsea las variables de entorno y devuelve un Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if _, ok := users.ParseVariant(cfg.Variant); !ok {
		return nil, fmt.Errorf("invalid VARIANT %q: want strict or loose", cfg.Variant)
	}
	return cfg, nil
}
