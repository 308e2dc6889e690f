package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const migrationsDir = "migrations"

// Migrate runs a goose command ("up", "down", "status", "version") against
// the embedded MySQL migrations.
func Migrate(ctx context.Context, db *sql.DB, command string, log *logrus.Logger) error {
	goose.SetBaseFS(migrationsFS)
	if log != nil {
		goose.SetLogger(log.WithField("component", "migrate"))
	}
	if err := goose.SetDialect("mysql"); err != nil {
		return err
	}
	switch command {
	case "up", "down", "status", "version":
	default:
		return fmt.Errorf("unsupported migrate command %q", command)
	}
	return goose.RunContext(ctx, command, db, migrationsDir)
}
