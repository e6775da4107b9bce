package security

import "github.com/gofiber/fiber/v2"

// APIKeyGuard rejects requests missing the configured key. The oracle runs
// open by default, matching the public verifier model; operators fronting
// it privately set API_KEY.
func APIKeyGuard(apiKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Get("X-API-Key") != apiKey {
			return c.Status(401).JSON(fiber.Map{"error": "unauthorized"})
		}
		return c.Next()
	}
}
