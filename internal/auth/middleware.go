package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/inventory-service/internal/domain"
	apperrors "github.com/spec-kit/inventory-service/pkg/util"
)

const identityKey = "auth_identity"

// Identity is the authenticated caller resolved from token claims. It
// lives in the request locals and never outlives the request.
type Identity struct {
	UserID string
	Email  string
	Role   domain.UserRole
}

// Middleware converts bearer tokens into request identities. Token
// verification is pure: no user lookup happens here, the claims are
// trusted for the token's lifetime.
type Middleware struct {
	tokens *TokenManager
}

// NewMiddleware constructs the auth gate.
func NewMiddleware(tokens *TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// Handle enforces authentication for protected routes.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("authentication required")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("authentication required")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid or expired token")
	}

	c.Locals(identityKey, &Identity{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
	})
	return c.Next()
}

// IdentityFromContext retrieves the authenticated identity.
func IdentityFromContext(c *fiber.Ctx) (*Identity, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return nil, false
	}
	identity, ok := val.(*Identity)
	return identity, ok
}
