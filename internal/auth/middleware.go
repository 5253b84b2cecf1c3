package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/driving-records/pkg/util/errorutil"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller.
type Principal struct {
	UserID string
}

// AuthMiddleware validates bearer tokens on protected routes. It keeps no
// session state; each request is verified on its own.
type AuthMiddleware struct {
	tokens *TokenManager
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	token := extractToken(c.Get(fiber.HeaderAuthorization))
	if token == "" {
		return apperrors.NewTokenMissing()
	}

	claims, err := m.tokens.Verify(token)
	if err != nil {
		return apperrors.NewTokenInvalid()
	}

	c.Locals(principalKey, &Principal{UserID: claims.UserID})
	c.SetUserContext(WithUserID(c.UserContext(), claims.UserID))
	return c.Next()
}

// extractToken accepts either the raw token issued at login or a "Bearer" prefixed value.
func extractToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
