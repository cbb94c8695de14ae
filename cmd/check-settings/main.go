// Command check-settings imprime a configuração de banco resolvida e as
// configurações efetivas do servidor PostgreSQL.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rafabene/academia-backend/internal/infrastructure/config"
	"github.com/rafabene/academia-backend/internal/maintenance"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		exitf("load config: %v", err)
	}

	if err := maintenance.CheckSettings(ctx, cfg, os.Stdout); err != nil {
		stop()
		exitf("check settings: %v", err)
	}
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
