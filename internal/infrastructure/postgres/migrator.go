package postgres

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
)

// ErrDirtySchema is returned when a previous migration failed halfway and
// the schema needs manual repair before the service can start.
var ErrDirtySchema = errors.New("database schema is dirty")

// RunMigrations brings the voucher schema up to date and logs the version
// it ends on.
func RunMigrations(databaseURL, migrationsPath string, logger zerolog.Logger) error {
	m, err := migrate.New("file://"+migrationsPath, databaseURL)
	if err != nil {
		return fmt.Errorf("open migrations %s: %w", migrationsPath, err)
	}
	defer m.Close()

	if _, dirty, err := m.Version(); err == nil && dirty {
		return ErrDirtySchema
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, _, verr := m.Version()
	if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
		return fmt.Errorf("read schema version: %w", verr)
	}

	logger.Info().
		Uint("schema_version", version).
		Bool("changed", err == nil).
		Msg("database migrations checked")
	return nil
}
