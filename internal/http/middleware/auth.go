package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"gyccsite/internal/auth"
)

// IdentityLocalKey is the Fiber locals key holding the verified *auth.Identity.
const IdentityLocalKey = "identity"

// RequireAuth rejects requests without a valid staff bearer token.
func RequireAuth(g *auth.Gate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := g.Authenticate(c.UserContext(), c.Get(fiber.HeaderAuthorization))
		if err != nil {
			if errors.Is(err, auth.ErrForbidden) {
				return fiber.NewError(fiber.StatusForbidden, "Forbidden")
			}
			zerolog.Ctx(c.UserContext()).Debug().Err(err).Msg("authentication failed")
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}
		c.Locals(IdentityLocalKey, id)
		return c.Next()
	}
}
