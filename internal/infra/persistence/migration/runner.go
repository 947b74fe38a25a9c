// Package migration applies the embedded SQL schema with golang-migrate.
package migration

import (
	"embed"
	"log/slog"

	"crm/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // postgres:// driver
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

// ErrNoChange is returned when the schema is already at the target version.
var ErrNoChange = migrate.ErrNoChange

// Run applies migrations in direction ("up" or "down") against dsn.
// steps limits how many migrations are applied; zero means all.
func Run(logger *slog.Logger, dsn, direction string, steps int) error {
	if dsn == "" {
		return errors.New("database url is not set; configure migrate.databaseURL or DATABASE_URL")
	}
	if direction != DirectionUp && direction != DirectionDown {
		return errors.Errorf("direction must be up or down, got %q", direction)
	}
	if steps < 0 {
		return errors.Errorf("steps must not be negative, got %d", steps)
	}

	sourceDriver, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return errors.Wrap(err, "migrate source")
	}

	m, err := migrate.NewWithSourceInstance("iofs", sourceDriver, dsn)
	if err != nil {
		return errors.Wrap(err, "migrate init")
	}
	defer func() { _, _ = m.Close() }()

	switch {
	case steps > 0 && direction == DirectionUp:
		err = m.Steps(steps)
	case steps > 0:
		err = m.Steps(-steps)
	case direction == DirectionUp:
		err = m.Up()
	default:
		err = m.Down()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrapf(err, "migrate %s", direction)
	}

	version, dirty, verr := m.Version()
	if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
		return errors.Wrap(verr, "read schema version")
	}
	logger.Info("Schema migration finished",
		slog.String("direction", direction),
		slog.Uint64("version", uint64(version)),
		slog.Bool("dirty", dirty),
		slog.Bool("noChange", errors.Is(err, migrate.ErrNoChange)),
	)

	return err
}
