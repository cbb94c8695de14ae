package valueobjects

import (
	"errors"
	"regexp"
	"strings"
)

var ErrInvalidEmail = errors.New("invalid email format")

const (
	maxEmailLength      = 254
	maxEmailLocalLength = 64
)

var emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

// Email é sempre minúsculo e sem espaços; é a forma gravada em users.email
// e usada nas buscas por e-mail (login, create-admin).
type Email struct {
	value string
}

func NewEmail(email string) (Email, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if !isValidEmail(email) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: email}, nil
}

func (e Email) String() string {
	return e.value
}

// IsZero indica um Email não inicializado
func (e Email) IsZero() bool {
	return e.value == ""
}

func isValidEmail(email string) bool {
	if len(email) < 3 || len(email) > maxEmailLength {
		return false
	}
	local, _, found := strings.Cut(email, "@")
	if !found || len(local) > maxEmailLocalLength {
		return false
	}
	return emailPattern.MatchString(email)
}
