package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/academia-backend/internal/domain/entities"
	"github.com/rafabene/academia-backend/internal/domain/errors"
	"github.com/rafabene/academia-backend/internal/domain/repositories"
	"github.com/rafabene/academia-backend/internal/infrastructure/security"
)

// CurrentUserContextKey guarda o usuário autenticado no contexto do Gin
const CurrentUserContextKey = "current_user"

// TokenParser valida tokens de acesso
type TokenParser interface {
	Parse(raw string) (*security.Claims, error)
}

// AuthMiddleware autentica requisições com tokens JWT
type AuthMiddleware struct {
	tokens TokenParser
	users  repositories.UserRepository
}

// NewAuthMiddleware cria um novo middleware de autenticação
func NewAuthMiddleware(tokens TokenParser, users repositories.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users}
}

// RequireAuth exige um token válido de um usuário ativo.
// O token vem do header Authorization (Bearer) ou, para websocket, de ?token=.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c.GetHeader("Authorization"))
		if raw == "" {
			raw = c.Query("token")
		}
		if raw == "" {
			abort(c, errors.ErrUnauthorized)
			return
		}

		claims, err := m.tokens.Parse(raw)
		if err != nil {
			abort(c, errors.ErrUnauthorized.Wrap(err))
			return
		}
		userID, err := claims.UserID()
		if err != nil {
			abort(c, errors.ErrUnauthorized.Wrap(err))
			return
		}

		user, err := m.users.FindByID(c.Request.Context(), userID)
		if err != nil {
			abort(c, err)
			return
		}
		if user == nil {
			abort(c, errors.ErrUnauthorized)
			return
		}
		if !user.IsActive() {
			abort(c, errors.ErrInactiveUser)
			return
		}

		c.Set(CurrentUserContextKey, user)
		c.Next()
	}
}

// RequirePermission exige que o usuário autenticado tenha a permissão
func RequirePermission(permission entities.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			abort(c, errors.ErrUnauthorized)
			return
		}
		if !user.HasPermission(permission) {
			abort(c, errors.ErrForbidden)
			return
		}
		c.Next()
	}
}

// CurrentUser devolve o usuário autenticado da requisição
func CurrentUser(c *gin.Context) (*entities.User, bool) {
	value, exists := c.Get(CurrentUserContextKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*entities.User)
	return user, ok && user != nil
}

func bearerToken(header string) string {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
