// Package config loads process settings from BLOCKLEDGER_* environment variables.
package config

import (
	"errors"
	"fmt"

	"github.com/gabapcia/blockledger/internal/pkg/amount"
	"github.com/gabapcia/blockledger/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// prefix namespaces every variable, e.g. BLOCKLEDGER_LOG_LEVEL.
const prefix = "BLOCKLEDGER"

// ErrInvalidConfig is returned when the environment holds unusable settings.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the settings of a blockledger process.
type Config struct {
	LogLevel         string `envconfig:"LOG_LEVEL" default:"warn" validate:"oneof=debug info warn error"`
	ServiceName      string `envconfig:"SERVICE_NAME" default:"blockledger" validate:"required,trimmed"`
	TelemetryEnabled bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`

	Digest                string          `envconfig:"DIGEST" default:"sha256" validate:"oneof=sha256 blake2b"`
	DefaultInitialBalance decimal.Decimal `envconfig:"DEFAULT_INITIAL_BALANCE" default:"50"`
	Currency              string          `envconfig:"CURRENCY" default:"WesleyCoin" validate:"required,trimmed,max=32"`
	InputAttempts         uint            `envconfig:"INPUT_ATTEMPTS" default:"3" validate:"min=1,max=10"`
}

// Load reads the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}

	if cfg.DefaultInitialBalance.IsNegative() {
		return Config{}, fmt.Errorf("%w: default initial balance %s is negative", ErrInvalidConfig, cfg.DefaultInitialBalance.String())
	}

	if err := amount.CheckScale(cfg.DefaultInitialBalance); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return cfg, nil
}
