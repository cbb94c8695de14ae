package ports

import "github.com/rafabene/academia-backend/internal/domain/entities"

// PasswordHasher abstrai o algoritmo de hash de senha
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer emite tokens de acesso para usuários autenticados
type TokenIssuer interface {
	Issue(user *entities.User) (string, error)
}
