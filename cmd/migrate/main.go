package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"cashdrawer-api/internal/handler/middleware"
	"cashdrawer-api/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

const migrationsDir = "migrations"

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	dir := migrationsDir
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		dir = v
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := apply(ctx, dir, cfg.DB); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func apply(ctx context.Context, dir string, db config.DBConfig) error {
	workdir, err := atlasexec.NewWorkingDir(
		atlasexec.WithMigrations(os.DirFS(dir)),
	)
	if err != nil {
		return err
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), "atlas")
	if err != nil {
		return err
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL: db.BuildDSN(),
	})
	if err != nil {
		return err
	}

	slog.Info("migrations applied",
		"applied", len(res.Applied),
		"current", res.Current,
		"target", res.Target,
	)
	return nil
}
