package database

import (
	"errors"
	"fmt"
	"strings"

	"studylink/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5" // registers the pgx5 scheme
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunMigrations applies all pending up migrations from migrationsPath.
// An already up-to-date schema is not an error.
func RunMigrations(dsn, migrationsPath string) error {
	m, err := migrate.New("file://"+migrationsPath, migrateDSN(dsn))
	if err != nil {
		return fmt.Errorf("could not create migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not apply migrations: %w", err)
	}

	logger.Get().Info("Migrations completed successfully")
	return nil
}

// migrateDSN rewrites the application DSN to the scheme the migrate pgx
// driver registers itself under.
func migrateDSN(dsn string) string {
	return "pgx5://" + strings.TrimPrefix(dsn, "postgres://")
}
