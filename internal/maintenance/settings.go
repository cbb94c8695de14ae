package maintenance

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rafabene/academia-backend/internal/infrastructure/config"
)

// Settings são as configurações efetivas do servidor PostgreSQL
type Settings struct {
	ServerVersion     string
	TimeZone          string
	MaxConnections    string
	Database          string
	CurrentUser       string
	AppliedMigrations int64
	MigrationsTracked bool
}

// InspectSettings consulta as configurações do servidor em sequência
func InspectSettings(ctx context.Context, conn Conn) (*Settings, error) {
	s := &Settings{}

	for _, item := range []struct {
		name   string
		query  string
		target *string
	}{
		{"server_version", `SHOW server_version`, &s.ServerVersion},
		{"TimeZone", `SHOW TimeZone`, &s.TimeZone},
		{"max_connections", `SHOW max_connections`, &s.MaxConnections},
		{"current_database", `SELECT current_database()`, &s.Database},
		{"current_user", `SELECT current_user`, &s.CurrentUser},
	} {
		if err := conn.QueryRowContext(ctx, item.query).Scan(item.target); err != nil {
			return nil, fmt.Errorf("read %s: %w", item.name, err)
		}
	}

	tracked, err := tableExists(ctx, conn, "schema_migrations")
	if err != nil {
		return nil, fmt.Errorf("check schema_migrations: %w", err)
	}
	s.MigrationsTracked = tracked
	if tracked {
		if err := conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM schema_migrations`).Scan(&s.AppliedMigrations); err != nil {
			return nil, fmt.Errorf("count migrations: %w", err)
		}
	}

	return s, nil
}

// WriteSettings imprime a configuração resolvida (senha mascarada) e a do servidor
func WriteSettings(out io.Writer, db *config.DatabaseConfig, s *Settings) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "Database configuration")
	fmt.Fprintf(tw, "  connection\t%s\n", db.Masked())
	fmt.Fprintf(tw, "  pool\tmax=%d min=%d max_idle_time=%ds\n", db.MaxConns, db.MinConns, db.MaxIdleTime)
	fmt.Fprintln(tw, "Server settings")
	fmt.Fprintf(tw, "  server_version\t%s\n", s.ServerVersion)
	fmt.Fprintf(tw, "  TimeZone\t%s\n", s.TimeZone)
	fmt.Fprintf(tw, "  max_connections\t%s\n", s.MaxConnections)
	fmt.Fprintf(tw, "  database\t%s\n", s.Database)
	fmt.Fprintf(tw, "  user\t%s\n", s.CurrentUser)
	if s.MigrationsTracked {
		fmt.Fprintf(tw, "  applied_migrations\t%d\n", s.AppliedMigrations)
	} else {
		fmt.Fprintf(tw, "  applied_migrations\tnone (schema_migrations not found)\n")
	}

	return tw.Flush()
}

// CheckSettings é o fluxo completo do script check-settings
func CheckSettings(ctx context.Context, cfg *config.Config, out io.Writer) error {
	session, err := Open(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	defer session.Close()

	settings, err := InspectSettings(ctx, session.Conn)
	if err != nil {
		return err
	}
	return WriteSettings(out, &cfg.Database, settings)
}
