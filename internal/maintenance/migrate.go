package maintenance

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/rafabene/academia-backend/internal/infrastructure/persistence/postgres/migrations"
)

// MigrationRunner é implementado por *migrations.Runner
type MigrationRunner interface {
	Up(ctx context.Context) ([]migrations.Migration, error)
	Down(ctx context.Context) (migrations.Migration, error)
	Status(ctx context.Context) ([]migrations.Status, error)
}

// ErrUnknownCommand indica um verbo diferente de up, down ou status
var ErrUnknownCommand = errors.New("unknown migrate command")

// Migrate executa o verbo informado ("up" quando vazio) e imprime o resultado
func Migrate(ctx context.Context, runner MigrationRunner, command string, out io.Writer) error {
	switch command {
	case "", "up":
		ran, err := runner.Up(ctx)
		for _, m := range ran {
			fmt.Fprintf(out, "applied  %s\n", m.ID())
		}
		if err != nil {
			return err
		}
		if len(ran) == 0 {
			fmt.Fprintln(out, "database is up to date")
		}
		return nil

	case "down":
		m, err := runner.Down(ctx)
		if errors.Is(err, migrations.ErrNoMigrationsApplied) {
			fmt.Fprintln(out, "no migrations to roll back")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "reverted %s\n", m.ID())
		return nil

	case "status":
		statuses, err := runner.Status(ctx)
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "VERSION\tNAME\tAPPLIED AT")
		for _, s := range statuses {
			applied := "pending"
			if s.AppliedAt != nil {
				applied = s.AppliedAt.Format(time.RFC3339)
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\n", s.Version, s.Name, applied)
		}
		return tw.Flush()

	default:
		return fmt.Errorf("%w %q (use up, down or status)", ErrUnknownCommand, command)
	}
}
