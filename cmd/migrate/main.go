package main

import (
	"flag"
	"log/slog"
	"os"

	"funnel/config"
	"funnel/internal/errors"
	logs "funnel/internal/infra/log"
	"funnel/internal/infra/persistence/migrations"

	pgLib "github.com/slighter12/go-lib/database/postgres"
)

func main() {
	direction := flag.String("direction", string(migrations.Up), "migration direction: up or down")
	flag.Parse()

	if err := run(migrations.Direction(*direction)); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(direction migrations.Direction) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	if cfg.Postgres == nil {
		return errors.New("postgres configuration is missing")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "failed to create PostgreSQL client")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	defer sqlDB.Close()

	return migrations.Run(sqlDB, direction, logger)
}
