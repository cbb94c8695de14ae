// Command dashboard-report imprime os agregados do painel administrativo.
// Com DASHBOARD_XLSX_PATH definido, grava também uma planilha.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

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

	if err := maintenance.DashboardReport(ctx, cfg, time.Now(), os.Stdout); err != nil {
		stop()
		exitf("dashboard report: %v", err)
	}
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
