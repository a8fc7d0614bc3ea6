package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"savor/config"
	"savor/internal/infra/auth"
)

func newTestMiddleware(t *testing.T) *AuthMiddleware {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret"
	cfg.SecretKey.Refresh = "refresh-secret"

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return NewAuthMiddleware(tokenSvc)
}

func issueTokens(t *testing.T, m *AuthMiddleware, userID uuid.UUID) (access, refresh string) {
	t.Helper()

	pair, err := m.tokenSvc.GenerateTokenPair(userID, "diner@example.com")
	require.NoError(t, err)

	return pair.AccessToken, pair.RefreshToken
}

func runMiddleware(m echo.MiddlewareFunc, authHeader string, next echo.HandlerFunc) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = m(next)(c)

	return rec
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	m := newTestMiddleware(t)

	rec := runMiddleware(m.Authenticate, "", func(c echo.Context) error {
		t.Fatal("next handler must not run")

		return nil
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_NotBearer(t *testing.T) {
	m := newTestMiddleware(t)

	rec := runMiddleware(m.Authenticate, "Basic abc123", func(c echo.Context) error {
		t.Fatal("next handler must not run")

		return nil
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_ValidAccessToken(t *testing.T) {
	m := newTestMiddleware(t)
	userID := uuid.New()
	access, _ := issueTokens(t, m, userID)

	called := false
	rec := runMiddleware(m.Authenticate, "Bearer "+access, func(c echo.Context) error {
		called = true
		assert.Equal(t, userID, c.Get(KeyUserID))

		return c.NoContent(http.StatusOK)
	})

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticate_RejectsRefreshToken(t *testing.T) {
	m := newTestMiddleware(t)
	_, refresh := issueTokens(t, m, uuid.New())

	// A refresh token is signed with the other secret and must not pass the
	// access guard.
	rec := runMiddleware(m.Authenticate, "Bearer "+refresh, func(c echo.Context) error {
		t.Fatal("next handler must not run")

		return nil
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateRefresh_StoresRawToken(t *testing.T) {
	m := newTestMiddleware(t)
	userID := uuid.New()
	_, refresh := issueTokens(t, m, userID)

	called := false
	rec := runMiddleware(m.AuthenticateRefresh, "Bearer "+refresh, func(c echo.Context) error {
		called = true
		assert.Equal(t, userID, c.Get(KeyUserID))
		assert.Equal(t, refresh, c.Get(KeyRefreshToken))

		return c.NoContent(http.StatusOK)
	})

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticateRefresh_RejectsAccessToken(t *testing.T) {
	m := newTestMiddleware(t)
	access, _ := issueTokens(t, m, uuid.New())

	rec := runMiddleware(m.AuthenticateRefresh, "Bearer "+access, func(c echo.Context) error {
		t.Fatal("next handler must not run")

		return nil
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
