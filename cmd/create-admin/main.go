// Command create-admin cria o usuário administrador a partir de ADMIN_NAME,
// ADMIN_EMAIL e ADMIN_PASSWORD. Não faz nada quando o email já existe.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/crypto/bcrypt"

	"github.com/rafabene/academia-backend/internal/infrastructure/config"
	"github.com/rafabene/academia-backend/internal/infrastructure/security"
	"github.com/rafabene/academia-backend/internal/maintenance"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		exitf("load config: %v", err)
	}

	hasher := security.NewBcryptHasher(bcrypt.DefaultCost)
	if err := maintenance.CreateAdmin(ctx, cfg, hasher, os.Stdout); err != nil {
		stop()
		exitf("create admin: %v", err)
	}
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
