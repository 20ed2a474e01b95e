package rayid_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"property-insights/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRayID(t *testing.T) {
	app := fiber.New()
	app.Use(rayid.New())

	var seen string
	app.Get("/", func(c *fiber.Ctx) error {
		seen, _ = c.Locals("ray_id").(string)
		return c.SendString("ok")
	})

	t.Run("Generated when absent", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, resp.Header.Get(rayid.Header))
	})

	t.Run("Caller-supplied ID kept", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(rayid.Header, "trace-123")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, "trace-123", seen)
		assert.Equal(t, "trace-123", resp.Header.Get(rayid.Header))
	})
}
