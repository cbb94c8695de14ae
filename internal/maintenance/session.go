// Package maintenance reúne os scripts administrativos executados fora da API:
// criação do administrador, inspeção das configurações do banco, relatório do
// painel e execução das migrations. Cada script usa uma única conexão e roda
// seus passos em sequência.
package maintenance

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/rafabene/academia-backend/internal/infrastructure/config"
)

// Conn é o subconjunto de *sql.Conn usado pelos scripts
type Conn interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Session mantém a conexão exclusiva de um script
type Session struct {
	db   *sql.DB
	Conn *sql.Conn
}

// Open abre o pool com lib/pq limitado a uma conexão e reserva essa conexão
func Open(ctx context.Context, cfg *config.DatabaseConfig) (*Session, error) {
	return OpenDSN(ctx, cfg.URL())
}

// OpenDSN é como Open, recebendo a connection string pronta
func OpenDSN(ctx context.Context, dsn string) (*Session, error) {
	connector, err := pq.NewConnector(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid database url: %w", err)
	}

	db := sql.OpenDB(connector)
	db.SetMaxOpenConns(1)

	conn, err := db.Conn(ctx)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Session{db: db, Conn: conn}, nil
}

// Close devolve a conexão e encerra o pool
func (s *Session) Close() error {
	return errors.Join(s.Conn.Close(), s.db.Close())
}

// isUniqueViolation reconhece o erro 23505 do PostgreSQL
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// tableExists consulta o catálogo sem depender de a tabela existir
func tableExists(ctx context.Context, conn Conn, table string) (bool, error) {
	var exists bool
	err := conn.QueryRowContext(ctx, `SELECT to_regclass($1) IS NOT NULL`, "public."+table).Scan(&exists)
	return exists, err
}
