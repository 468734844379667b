package middleware

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/rafabene/padelmatch-backend/internal/domain/entities"
	"github.com/rafabene/padelmatch-backend/internal/domain/errors"
	"github.com/rafabene/padelmatch-backend/internal/domain/ports"
)

// CurrentUserContextKey guarda o usuário autenticado no contexto do Gin
const CurrentUserContextKey = "current_user"

// UserFinder é a parte do repositório de usuários que a autenticação usa
type UserFinder interface {
	FindByID(ctx context.Context, id uint) (*entities.User, error)
}

// AuthMiddleware valida bearer tokens HS256 cujo subject é o id do usuário
type AuthMiddleware struct {
	secret []byte
	users  UserFinder
	logger ports.Logger
}

// NewAuthMiddleware cria um novo middleware de autenticação
func NewAuthMiddleware(secret string, users UserFinder, logger ports.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		secret: []byte(secret),
		users:  users,
		logger: logger,
	}
}

// Authenticate exige um token válido e carrega o usuário atual.
// O token vem do header Authorization ou, para WebSocket, de ?token=.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c.GetHeader("Authorization"))
		if raw == "" {
			raw = c.Query("token")
		}
		if raw == "" {
			abortWith(c, errors.ErrUnauthenticated)
			return
		}

		userID, err := m.parse(raw)
		if err != nil {
			m.logger.Debug("rejected token", "error", err)
			abortWith(c, errors.ErrUnauthenticated)
			return
		}

		user, err := m.users.FindByID(c.Request.Context(), userID)
		if err != nil {
			m.logger.Error("failed to load authenticated user", "user_id", userID, "error", err)
			abortWith(c, errors.Internal(err))
			return
		}
		if user == nil || user.Status != entities.UserStatusActive {
			abortWith(c, errors.ErrUnauthenticated)
			return
		}

		c.Set(CurrentUserContextKey, user)
		c.Next()
	}
}

// IssueToken gera um token para o usuário (ferramentas e testes)
func (m *AuthMiddleware) IssueToken(userID uint, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(userID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *AuthMiddleware) parse(raw string) (uint, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, err
	}
	// tokens sem exp nunca expiram; exigimos a claim
	if claims.ExpiresAt == nil {
		return 0, jwt.ErrTokenRequiredClaimMissing
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 0)
	if err != nil || id == 0 {
		return 0, jwt.ErrTokenInvalidSubject
	}
	return uint(id), nil
}

// RequirePermission bloqueia quem não tem a permissão (deve vir depois de Authenticate)
func RequirePermission(permission entities.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			abortWith(c, errors.ErrUnauthenticated)
			return
		}
		if !user.HasPermission(permission) {
			abortWith(c, errors.ErrForbidden)
			return
		}
		c.Next()
	}
}

// CurrentUser retorna o usuário autenticado, ou nil
func CurrentUser(c *gin.Context) *entities.User {
	v, ok := c.Get(CurrentUserContextKey)
	if !ok {
		return nil
	}
	user, _ := v.(*entities.User)
	return user
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// abortWith registra o erro para o ErrorHandler renderizar
func abortWith(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
