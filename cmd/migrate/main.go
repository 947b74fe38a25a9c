package main

import (
	"flag"
	"log/slog"
	"os"

	"crm/config"
	"crm/internal/infra/persistence/migration"

	"github.com/pkg/errors"
)

func main() {
	direction := flag.String("direction", migration.DirectionUp, "migration direction: up or down")
	steps := flag.Int("steps", 0, "number of migrations to apply, 0 applies all")
	dsn := flag.String("database-url", "", "postgres connection string, overrides config and DATABASE_URL")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	url := resolveDatabaseURL(*dsn, logger)
	if err := migration.Run(logger, url, *direction, *steps); err != nil {
		if errors.Is(err, migration.ErrNoChange) {
			logger.Info("Schema already up to date")

			return
		}
		logger.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// resolveDatabaseURL prefers the flag, then DATABASE_URL, then migrate.databaseURL.
func resolveDatabaseURL(flagValue string, logger *slog.Logger) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("DATABASE_URL"); env != "" {
		return env
	}

	cfg, err := config.New()
	if err != nil {
		logger.Warn("Failed to load config", slog.Any("error", err))

		return ""
	}
	if cfg.Migrate == nil {
		return ""
	}

	return cfg.Migrate.DatabaseURL
}
