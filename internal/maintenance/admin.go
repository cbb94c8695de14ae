package maintenance

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"

	"github.com/rafabene/academia-backend/internal/domain/entities"
	"github.com/rafabene/academia-backend/internal/domain/ports"
	"github.com/rafabene/academia-backend/internal/domain/valueobjects"
	"github.com/rafabene/academia-backend/internal/infrastructure/config"
)

// AdminResult descreve o que EnsureAdmin fez
type AdminResult struct {
	ID      uint64
	Email   string
	Created bool
}

// EnsureAdmin cria o usuário administrador quando ainda não existe um usuário
// com o email informado. Rodar mais de uma vez nunca cria duas linhas.
func EnsureAdmin(ctx context.Context, conn Conn, hasher ports.PasswordHasher, admin config.AdminConfig) (*AdminResult, error) {
	email, err := valueobjects.NewEmail(admin.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid admin email %q: %w", admin.Email, err)
	}
	if admin.Name == "" || admin.Password == "" {
		return nil, errors.New("admin name and password are required")
	}

	result := &AdminResult{Email: email.String()}

	id, err := findUserID(ctx, conn, email.String())
	if err != nil {
		return nil, err
	}
	if id != 0 {
		result.ID = id
		return result, nil
	}

	hash, err := hasher.Hash(admin.Password)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}

	err = conn.QueryRowContext(ctx,
		`INSERT INTO users (name, email, password, role, status) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		admin.Name, email.String(), hash, string(entities.RoleAdmin), string(entities.UserStatusActive),
	).Scan(&result.ID)
	if isUniqueViolation(err) {
		// outro processo criou o mesmo email entre a consulta e o insert
		result.ID, err = findUserID(ctx, conn, email.String())
		return result, err
	}
	if err != nil {
		return nil, fmt.Errorf("insert admin: %w", err)
	}

	result.Created = true
	return result, nil
}

func findUserID(ctx context.Context, conn Conn, email string) (uint64, error) {
	var id uint64
	err := conn.QueryRowContext(ctx, `SELECT id FROM users WHERE email = $1`, email).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("lookup user by email: %w", err)
	}
	return id, nil
}

// CreateAdmin é o fluxo completo do script create-admin
func CreateAdmin(ctx context.Context, cfg *config.Config, hasher ports.PasswordHasher, out io.Writer) error {
	session, err := Open(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	defer session.Close()

	result, err := EnsureAdmin(ctx, session.Conn, hasher, cfg.Admin)
	if err != nil {
		return err
	}

	if result.Created {
		fmt.Fprintf(out, "Admin user created: %s (id %d)\n", result.Email, result.ID)
	} else {
		fmt.Fprintf(out, "Admin user already exists: %s (id %d), skipped\n", result.Email, result.ID)
	}
	return nil
}
