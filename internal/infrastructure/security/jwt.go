package security

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rafabene/academia-backend/internal/domain/entities"
)

// ErrInvalidToken indica token malformado, expirado ou com assinatura inválida
var ErrInvalidToken = errors.New("invalid token")

// Claims são as informações carregadas no token de acesso
type Claims struct {
	Role  string `json:"role"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// UserID devolve o id do usuário contido no subject
func (c *Claims) UserID() (uint64, error) {
	return strconv.ParseUint(c.Subject, 10, 64)
}

// JWTManager emite e valida tokens HS256
type JWTManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTManager cria um JWTManager. ttl no formato de time.ParseDuration (ex: "24h").
func NewJWTManager(secret, ttl string) (*JWTManager, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	d, err := time.ParseDuration(ttl)
	if err != nil {
		return nil, fmt.Errorf("invalid jwt expiry %q: %w", ttl, err)
	}
	return &JWTManager{secret: []byte(secret), ttl: d, now: time.Now}, nil
}

// Issue implementa ports.TokenIssuer
func (m *JWTManager) Issue(user *entities.User) (string, error) {
	now := m.now().UTC()
	claims := Claims{
		Role:  string(user.Role),
		Email: user.Email.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Parse valida o token e devolve suas claims
func (m *JWTManager) Parse(raw string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
