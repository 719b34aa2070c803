package migrations

import (
	"embed"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"

	"github.com/naturedex/naturedex-server/internal/logger"
)

//go:embed sql/*.sql
var fs embed.FS

// Up applies all pending migrations against the given database.
// Already-up-to-date is not an error.
func Up(db *sqlx.DB) error {
	source, err := iofs.New(fs, "sql")
	if err != nil {
		logger.Log.Errorw("failed to open embedded migrations", "error", err)
		return err
	}

	driver, err := postgres.WithInstance(db.DB, &postgres.Config{})
	if err != nil {
		logger.Log.Errorw("failed to create migration driver", "error", err)
		return err
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		logger.Log.Errorw("failed to create migrate instance", "error", err)
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		logger.Log.Errorw("failed to run migrations", "error", err)
		return err
	}

	logger.Log.Info("database migrations applied")
	return nil
}
