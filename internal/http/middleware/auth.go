package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"docvault/internal/auth"
)

const (
	// IdentityLocalKey is the key used to store the caller's identity claim
	// in Fiber's context locals.
	IdentityLocalKey = "identity"
)

// RequireAuth protects a route group with bearer-token verification.
//
// The Authorization header must carry "Bearer <token>"; the token is validated
// through the injected TokenVerifier and the configured identity claim
// (preferred_username by default) is stored in context locals for handlers.
// A token whose claim set lacks the identity claim is rejected: handlers rely
// on the identity being a non-empty durable identifier.
func RequireAuth(verifier auth.TokenVerifier, identityClaim string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "authorization header missing")
		}

		token := strings.TrimPrefix(header, "Bearer ")
		if token == header || strings.TrimSpace(token) == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid authorization header format")
		}

		claims, err := verifier.Verify(c.UserContext(), token)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		identity := claims.String(identityClaim)
		if identity == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "token missing identity claim")
		}

		c.Locals(IdentityLocalKey, identity)
		return c.Next()
	}
}

// Identity returns the caller identity stored by RequireAuth, or "".
func Identity(c *fiber.Ctx) string {
	id, _ := c.Locals(IdentityLocalKey).(string)
	return id
}
