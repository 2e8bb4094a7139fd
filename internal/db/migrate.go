package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbearia-api/internal/logger"
)

//go:embed migrations/*.sql
var migrations embed.FS

const migrationsDir = "migrations"

// Migrate roda um comando do goose ("up", "down", "status", ...) sobre as
// migrações embutidas no binário.
func Migrate(ctx context.Context, sqlDB *sql.DB, log *zap.Logger, command string, args ...string) error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(logger.GooseAdapter{Sugar: log.Sugar()})

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.RunContext(ctx, command, sqlDB, migrationsDir, args...); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	return nil
}
