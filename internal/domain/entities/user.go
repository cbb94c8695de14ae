package entities

import (
	"errors"
	"time"

	"github.com/rafabene/academia-backend/internal/domain/valueobjects"
)

var (
	ErrInvalidUserData = errors.New("invalid user data")
)

// UserStatus indica se o usuário pode acessar o sistema
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// User representa um usuário do sistema (admin, instrutor ou aluno)
type User struct {
	ID           uint64
	Email        valueobjects.Email
	Name         string
	PasswordHash string
	Role         Role
	Status       UserStatus
	Gender       *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin verifica se o usuário é admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsActive verifica se o usuário está ativo
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

// HasPermission verifica se o usuário tem uma permissão
func (u *User) HasPermission(permission Permission) bool {
	return u.Role.HasPermission(permission)
}

// GetPermissions retorna todas as permissões do usuário
func (u *User) GetPermissions() []string {
	perms := u.Role.GetPermissions()
	result := make([]string, len(perms))
	for i, p := range perms {
		result[i] = string(p)
	}
	return result
}

// Deactivate desabilita o usuário. Usuários nunca são removidos fisicamente pela API.
func (u *User) Deactivate() {
	u.Status = UserStatusInactive
}

// Activate reabilita o usuário
func (u *User) Activate() {
	u.Status = UserStatusActive
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.Email.IsZero() {
		return errors.New("email is required")
	}

	if u.Name == "" {
		return errors.New("name is required")
	}

	if len(u.Name) < 2 {
		return errors.New("name must be at least 2 characters")
	}

	if !u.Role.IsValid() {
		return errors.New("invalid role")
	}

	if u.Status != UserStatusActive && u.Status != UserStatusInactive {
		return errors.New("invalid status")
	}

	return nil
}
