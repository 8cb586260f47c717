// Package bootstrap wires configuration, storage, services, and the HTTP
// server into a runnable application.
package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/inkwell-dev/inkwell/config"
)

// InitLogger configures the default slog logger with JSON output.
func InitLogger() *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)
	return logger
}

// LoadConfig reads configuration from a .env file (when present) and the
// process environment, then applies guardrails to the result.
func LoadConfig() (*config.AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		// A missing .env file is fine; anything else is a real error.
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}

	cfg := &config.AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	cfg.Sanitize()
	return cfg, nil
}
