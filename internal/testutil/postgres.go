// Package testutil sobe dependências reais para os testes de integração.
package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const postgresImage = "postgres:16-alpine"

// PostgresContainer é um PostgreSQL descartável para testes
type PostgresContainer struct {
	container *tcpostgres.PostgresContainer
	DSN       string
}

// RequireDocker pula o teste quando não há Docker disponível ou com -short
func RequireDocker(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database integration tests in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)
}

// StartPostgres sobe o container e aguarda o banco aceitar conexões
func StartPostgres(ctx context.Context) (*PostgresContainer, error) {
	c, err := tcpostgres.Run(ctx, postgresImage,
		tcpostgres.WithDatabase("academia_test"),
		tcpostgres.WithUsername("academia"),
		tcpostgres.WithPassword("academia"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("start postgres container: %w", err)
	}

	dsn, err := c.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = testcontainers.TerminateContainer(c)
		return nil, fmt.Errorf("postgres connection string: %w", err)
	}
	return &PostgresContainer{container: c, DSN: dsn}, nil
}

// Gorm abre uma conexão GORM silenciosa com o container. O protocolo simples
// evita planos em cache inválidos depois de ResetSchema.
func (p *PostgresContainer) Gorm() (*gorm.DB, error) {
	dialector := postgres.New(postgres.Config{DSN: p.DSN, PreferSimpleProtocol: true})
	return gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
}

// ResetSchema apaga todos os objetos do schema public
func ResetSchema(db *gorm.DB) error {
	if err := db.Exec(`DROP SCHEMA public CASCADE`).Error; err != nil {
		return err
	}
	return db.Exec(`CREATE SCHEMA public`).Error
}

// Terminate encerra o container
func (p *PostgresContainer) Terminate() error {
	return testcontainers.TerminateContainer(p.container)
}
