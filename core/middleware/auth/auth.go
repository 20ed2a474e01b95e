package auth

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// Config holds the auth middleware settings.
type Config struct {
	// ApiKey is the expected key. Empty disables authentication.
	ApiKey string
}

// New returns a middleware that validates the X-API-Key header against the
// configured key using a constant-time comparison.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.ApiKey == "" {
			return c.Next()
		}
		supplied := c.Get("X-API-Key")
		if subtle.ConstantTimeCompare([]byte(supplied), []byte(cfg.ApiKey)) == 1 {
			return c.Next()
		}
		return fiber.NewError(fiber.StatusUnauthorized, "invalid api key")
	}
}
