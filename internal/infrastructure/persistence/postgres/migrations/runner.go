package migrations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rafabene/academia-backend/internal/domain/ports"
	"gorm.io/gorm"
)

// ErrNoMigrationsApplied indica que não há migration aplicada para desfazer
var ErrNoMigrationsApplied = errors.New("no migrations applied")

// schemaMigration é a linha de controle gravada para cada migration aplicada
type schemaMigration struct {
	Version   int64     `gorm:"primaryKey;autoIncrement:false"`
	Name      string    `gorm:"type:varchar(255);not null"`
	AppliedAt time.Time `gorm:"type:timestamptz;not null;default:now()"`
}

func (schemaMigration) TableName() string {
	return "schema_migrations"
}

// Status descreve o estado de uma migration no banco
type Status struct {
	Version   int64
	Name      string
	Applied   bool
	AppliedAt *time.Time
}

// Runner aplica e desfaz migrations registrando o progresso em schema_migrations
type Runner struct {
	db         *gorm.DB
	logger     ports.Logger
	migrations []Migration
}

// NewRunner cria um runner para as migrations informadas. As migrations são
// ordenadas por versão; versões duplicadas são rejeitadas.
func NewRunner(db *gorm.DB, logger ports.Logger, ms []Migration) (*Runner, error) {
	if db == nil {
		return nil, errors.New("database connection is required")
	}
	sorted := make([]Migration, len(ms))
	copy(sorted, ms)
	sortMigrations(sorted)
	if err := validate(sorted); err != nil {
		return nil, err
	}
	return &Runner{db: db, logger: logger, migrations: sorted}, nil
}

func (r *Runner) ensureTable(ctx context.Context) error {
	err := r.db.WithContext(ctx).Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
	version BIGINT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`).Error
	if err != nil {
		return fmt.Errorf("ensure migration table: %w", err)
	}
	return nil
}

func (r *Runner) applied(ctx context.Context) (map[int64]schemaMigration, error) {
	var rows []schemaMigration
	if err := r.db.WithContext(ctx).Order("version").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load applied migrations: %w", err)
	}
	out := make(map[int64]schemaMigration, len(rows))
	for _, row := range rows {
		out[row.Version] = row
	}
	return out, nil
}

// Up aplica, em ordem crescente, todas as migrations pendentes. Cada uma roda
// em sua própria transação junto com o registro de controle; a primeira falha
// interrompe a execução e as anteriores permanecem aplicadas.
// Retorna as migrations aplicadas nesta execução.
func (r *Runner) Up(ctx context.Context) ([]Migration, error) {
	if err := r.ensureTable(ctx); err != nil {
		return nil, err
	}
	done, err := r.applied(ctx)
	if err != nil {
		return nil, err
	}

	var ran []Migration
	for _, m := range r.migrations {
		if _, ok := done[m.Version]; ok {
			continue
		}
		r.logger.Info("applying migration", "migration", m.ID())
		err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := m.Up(tx); err != nil {
				return err
			}
			return tx.Create(&schemaMigration{Version: m.Version, Name: m.Name, AppliedAt: time.Now().UTC()}).Error
		})
		if err != nil {
			r.logger.Error("migration failed", "migration", m.ID(), "error", err)
			return ran, fmt.Errorf("apply migration %s: %w", m.ID(), err)
		}
		ran = append(ran, m)
	}

	if len(ran) == 0 {
		r.logger.Info("schema is up to date")
	} else {
		r.logger.Info("migrations applied", "count", len(ran))
	}
	return ran, nil
}

// Down desfaz apenas a migration aplicada mais recente e remove seu registro
func (r *Runner) Down(ctx context.Context) (Migration, error) {
	if err := r.ensureTable(ctx); err != nil {
		return Migration{}, err
	}

	var last schemaMigration
	err := r.db.WithContext(ctx).Order("version DESC").Take(&last).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Migration{}, ErrNoMigrationsApplied
	}
	if err != nil {
		return Migration{}, fmt.Errorf("load latest migration: %w", err)
	}

	m, ok := r.find(last.Version)
	if !ok {
		return Migration{}, fmt.Errorf("applied migration %d_%s is not registered", last.Version, last.Name)
	}

	r.logger.Info("rolling back migration", "migration", m.ID())
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := m.Down(tx); err != nil {
			return err
		}
		return tx.Delete(&schemaMigration{}, "version = ?", m.Version).Error
	})
	if err != nil {
		r.logger.Error("rollback failed", "migration", m.ID(), "error", err)
		return Migration{}, fmt.Errorf("rollback migration %s: %w", m.ID(), err)
	}
	return m, nil
}

// Status lista todas as migrations registradas indicando quais já foram aplicadas
func (r *Runner) Status(ctx context.Context) ([]Status, error) {
	if err := r.ensureTable(ctx); err != nil {
		return nil, err
	}
	done, err := r.applied(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Status, 0, len(r.migrations))
	for _, m := range r.migrations {
		s := Status{Version: m.Version, Name: m.Name}
		if row, ok := done[m.Version]; ok {
			appliedAt := row.AppliedAt
			s.Applied = true
			s.AppliedAt = &appliedAt
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *Runner) find(version int64) (Migration, bool) {
	for _, m := range r.migrations {
		if m.Version == version {
			return m, true
		}
	}
	return Migration{}, false
}
