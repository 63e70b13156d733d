package server

import (
	"strings"

	"github.com/gitscope/gitscope/internal/auth"
	"github.com/gofiber/fiber/v2"
)

// mutationGuard requires a valid token for mutating requests. Reads and the
// auth endpoints themselves stay open.
func mutationGuard(authSvc *auth.Service) fiber.Handler {
	requireAuth := auth.NewMiddleware(authSvc)

	return func(c *fiber.Ctx) error {
		switch c.Method() {
		case fiber.MethodGet, fiber.MethodHead, fiber.MethodOptions:
			return c.Next()
		}

		if strings.HasPrefix(c.Path(), "/api/v1/auth/") {
			return c.Next()
		}

		return requireAuth(c)
	}
}
