package main

import (
	"log/slog"
	"os"

	"github.com/ghuser/pantry/migrations"
	"github.com/ghuser/pantry/pkg/config"
	"github.com/ghuser/pantry/pkg/migrator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := migrator.RunMigrations(cfg.DatabaseURL, migrations.FS); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("migrations applied")
}
