package middleware

import "github.com/gofiber/fiber/v2"

// NoStore marks responses as uncacheable. Responses carrying presigned URLs
// must not outlive the signature.
func NoStore() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderCacheControl, "no-store")
		return c.Next()
	}
}
