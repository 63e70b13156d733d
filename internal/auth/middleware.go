package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const claimsLocalKey = "auth:claims"

// NewMiddleware returns a fiber handler that requires a valid Bearer
// token and stores its claims in the request locals.
func NewMiddleware(service *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}

		claims, err := service.ValidateJWT(c.UserContext(), token)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		c.Locals(claimsLocalKey, claims)

		return c.Next()
	}
}

// ClaimsFromContext returns the claims stored by the middleware, or nil
// when the request was not authenticated.
func ClaimsFromContext(c *fiber.Ctx) *JWTClaims {
	claims, _ := c.Locals(claimsLocalKey).(*JWTClaims)
	return claims
}

// RequireRole returns a handler that rejects requests whose token does
// not carry the given role.
func RequireRole(role UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := ClaimsFromContext(c)
		if claims == nil || claims.Role != role {
			return fiber.NewError(fiber.StatusForbidden, "insufficient role")
		}

		return c.Next()
	}
}
