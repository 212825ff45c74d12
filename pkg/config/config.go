// Package config loads validation settings from a YAML file and the environment.
package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the library configuration structure.
//
// Boolean switches default to false: cleanenv applies env-default to zero values,
// so a default of true could never be turned off from the file.
type Config struct {
	// Environment selects the logger flavour (development, production).
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// Validation holds the acceptance policy applied on top of parsing.
	Validation struct {
		// RejectUnknown refuses valid numbers whose network is not recognised.
		RejectUnknown bool `env:"VALIDATION_REJECT_UNKNOWN" yaml:"rejectUnknown"`
		// AllowedKinds lists accepted kind codes, e.g. visa, mastercard. Empty accepts all.
		AllowedKinds []string `env:"VALIDATION_ALLOWED_KINDS" env-separator:"," yaml:"allowedKinds"`
	} `yaml:"validation"`

	// Metrics controls the OpenTelemetry instruments.
	Metrics struct {
		// Disabled turns outcome and latency recording off.
		Disabled bool `env:"METRICS_DISABLED" yaml:"disabled"`
		// MeterName is the instrumentation scope name.
		MeterName string `env:"METRICS_METER_NAME" env-default:"creditcard" yaml:"meterName"`
	} `yaml:"metrics"`
}

// Load receives the path for yaml config file and returns a filled Config struct.
// Environment variables override file values.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}

// LoadEnv fills a Config from environment variables and defaults only.
func LoadEnv() (*Config, error) {
	var cfg Config
	err := cleanenv.ReadEnv(&cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config from env: %w", err)
	}

	return &cfg, nil
}
