// Package migrate applies the database schema at startup.
package migrate

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/inkwell-dev/inkwell/internal/data"
)

// Run applies the embedded schema. Every statement uses IF NOT EXISTS, so
// running on every boot is safe and a version table is unnecessary.
func Run(ctx context.Context, db *sql.DB) error {
	slog.Default().InfoContext(ctx, "applying database schema")
	if _, err := db.ExecContext(ctx, data.Schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
