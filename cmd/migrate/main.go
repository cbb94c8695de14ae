// Command migrate aplica, desfaz ou lista as migrations do banco.
//
// Uso: migrate [up|down|status]  (padrão: up)
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rafabene/academia-backend/internal/infrastructure/config"
	"github.com/rafabene/academia-backend/internal/infrastructure/logging"
	"github.com/rafabene/academia-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/academia-backend/internal/infrastructure/persistence/postgres/migrations"
	"github.com/rafabene/academia-backend/internal/maintenance"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	command := ""
	if len(args) > 0 {
		command = args[0]
	}
	if len(args) > 1 {
		return fmt.Errorf("unexpected arguments: %v", args[1:])
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := logging.NewSlogLogger(cfg.Logging.Level)

	cfg.Database.MaxConns = 1
	cfg.Database.MinConns = 1
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		return err
	}
	defer postgres.Close(db)

	runner, err := migrations.NewRunner(db, logger, migrations.All())
	if err != nil {
		return err
	}
	return maintenance.Migrate(ctx, runner, command, os.Stdout)
}
