package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/inkwell-dev/inkwell/config"
	"github.com/inkwell-dev/inkwell/internal/observability/statsd"
)

// BuildMetrics constructs the StatsD client from configuration. A disabled
// configuration yields a client that silently drops everything, so callers
// can wire it unconditionally.
func BuildMetrics(cfg config.StatsdConfig, logger *slog.Logger) (*statsd.Client, error) {
	client, err := statsd.NewClient(statsd.Config{
		Enabled: cfg.Enabled,
		Address: cfg.Address,
		Prefix:  cfg.Prefix,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("statsd client: %w", err)
	}
	if client.Enabled() {
		logger.Info("statsd metrics enabled", slog.String("addr", cfg.Address))
	}
	return client, nil
}
