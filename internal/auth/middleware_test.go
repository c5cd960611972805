package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/inventory-service/internal/domain"
)

func newTestApp(tm *TokenManager) *fiber.App {
	app := fiber.New()
	mw := NewMiddleware(tm)
	app.Get("/protected", mw.Handle, func(c *fiber.Ctx) error {
		identity, ok := IdentityFromContext(c)
		if !ok {
			return fiber.NewError(http.StatusInternalServerError, "identity missing")
		}
		return c.JSON(fiber.Map{"userId": identity.UserID, "role": identity.Role})
	})
	return app
}

func TestMiddlewareMissingHeader(t *testing.T) {
	t.Parallel()

	app := newTestApp(NewTokenManager("secret", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	// DomainError escapes to fiber's default error handler here; only the
	// status code matters for this package, the envelope is asserted at
	// the transport layer.
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestMiddlewareRejectsGarbageToken(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("secret", time.Hour)
	app := newTestApp(tm)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.NotEqual(t, http.StatusOK, resp.StatusCode)
}

func TestMiddlewareRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	expired := &TokenManager{secret: []byte("secret"), ttl: -time.Minute}
	tok, _, err := expired.GenerateToken(&domain.User{ID: "u1", Email: "a@b.c", Role: domain.RoleUser})
	require.NoError(t, err)

	app := newTestApp(NewTokenManager("secret", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.NotEqual(t, http.StatusOK, resp.StatusCode)
}

func TestMiddlewarePassesIdentityThrough(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("secret", time.Hour)
	tok, _, err := tm.GenerateToken(&domain.User{ID: "u1", Email: "a@b.c", Role: domain.RoleAdmin})
	require.NoError(t, err)

	app := newTestApp(tm)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
