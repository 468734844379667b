package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafabene/padelmatch-backend/internal/domain/entities"
	"github.com/rafabene/padelmatch-backend/internal/domain/errors"
	"github.com/rafabene/padelmatch-backend/internal/domain/ports"
)

type fakeUsers map[uint]*entities.User

func (f fakeUsers) FindByID(_ context.Context, id uint) (*entities.User, error) {
	return f[id], nil
}

// runAuth executa Authenticate (e o handler extra) e devolve o status e o erro registrado
func runAuth(t *testing.T, auth *AuthMiddleware, setup func(*http.Request), extra ...gin.HandlerFunc) (int, *entities.User, error) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var (
		seen     *entities.User
		recorded error
	)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Next()
		if len(c.Errors) > 0 {
			recorded = c.Errors.Last().Err
		}
	})
	handlers := append([]gin.HandlerFunc{auth.Authenticate()}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		seen = CurrentUser(c)
		c.Status(http.StatusNoContent)
	})
	router.GET("/", handlers...)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if setup != nil {
		setup(req)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w.Code, seen, recorded
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	users := fakeUsers{
		1: {ID: 1, UserName: "ativo", Role: entities.RoleMember, Status: entities.UserStatusActive},
		2: {ID: 2, UserName: "inativo", Role: entities.RoleMember, Status: entities.UserStatusInactive},
	}
	auth := NewAuthMiddleware("segredo", users, ports.NopLogger{})

	valid, err := auth.IssueToken(1, time.Hour)
	require.NoError(t, err)
	inactive, err := auth.IssueToken(2, time.Hour)
	require.NoError(t, err)
	unknown, err := auth.IssueToken(99, time.Hour)
	require.NoError(t, err)
	expired, err := auth.IssueToken(1, -time.Minute)
	require.NoError(t, err)
	otherSecret, err := NewAuthMiddleware("outro", users, ports.NopLogger{}).IssueToken(1, time.Hour)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "1"}).SignedString([]byte("segredo"))
	require.NoError(t, err)
	wrongAlg, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   strconv.Itoa(1),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("segredo"))
	require.NoError(t, err)

	bearer := func(token string) func(*http.Request) {
		return func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }
	}

	tests := []struct {
		name     string
		setup    func(*http.Request)
		wantUser bool
	}{
		{"token válido no header", bearer(valid), true},
		{"token válido na query", func(r *http.Request) { r.URL.RawQuery = "token=" + valid }, true},
		{"esquema em minúsculas", func(r *http.Request) { r.Header.Set("Authorization", "bearer "+valid) }, true},
		{"sem token", nil, false},
		{"esquema diferente", func(r *http.Request) { r.Header.Set("Authorization", "Basic "+valid) }, false},
		{"token expirado", bearer(expired), false},
		{"token sem expiração", bearer(noExpiry), false},
		{"assinado com outro segredo", bearer(otherSecret), false},
		{"algoritmo diferente", bearer(wrongAlg), false},
		{"usuário inativo", bearer(inactive), false},
		{"usuário inexistente", bearer(unknown), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, user, recorded := runAuth(t, auth, tt.setup)
			if tt.wantUser {
				assert.Equal(t, http.StatusNoContent, status)
				require.NotNil(t, user)
				assert.Equal(t, uint(1), user.ID)
				return
			}
			assert.Nil(t, user)
			assert.ErrorIs(t, recorded, errors.ErrUnauthenticated)
		})
	}
}

func TestRequirePermission(t *testing.T) {
	users := fakeUsers{
		1: {ID: 1, Role: entities.RoleMember, Status: entities.UserStatusActive},
		2: {ID: 2, Role: entities.RoleAdmin, Status: entities.UserStatusActive},
	}
	auth := NewAuthMiddleware("segredo", users, ports.NopLogger{})

	member, _ := auth.IssueToken(1, time.Hour)
	admin, _ := auth.IssueToken(2, time.Hour)

	t.Run("membro é barrado", func(t *testing.T) {
		_, user, recorded := runAuth(t, auth, func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+member)
		}, RequirePermission(entities.PermissionQuestionWrite))
		assert.Nil(t, user)
		assert.ErrorIs(t, recorded, errors.ErrForbidden)
	})

	t.Run("admin passa", func(t *testing.T) {
		status, user, recorded := runAuth(t, auth, func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+admin)
		}, RequirePermission(entities.PermissionQuestionWrite))
		assert.NoError(t, recorded)
		assert.Equal(t, http.StatusNoContent, status)
		require.NotNil(t, user)
		assert.True(t, user.IsAdmin())
	})
}

func TestRequestLogger_RequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestLogger(ports.NopLogger{}))
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDContextKey))
	})

	t.Run("gera id quando o cliente não envia", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		id := w.Header().Get(RequestIDHeader)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("propaga id válido", func(t *testing.T) {
		incoming := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, incoming)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, incoming, w.Header().Get(RequestIDHeader))
	})

	t.Run("substitui id malformado", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "<script>")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.NotEqual(t, "<script>", w.Header().Get(RequestIDHeader))
	})
}
