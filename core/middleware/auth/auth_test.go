package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"property-insights/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(apiKey string) *fiber.App {
	app := fiber.New()
	app.Use(auth.New(auth.Config{ApiKey: apiKey}))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })
	return app
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		supplied   string
		wantStatus int
	}{
		{"Valid key", "secret", "secret", http.StatusOK},
		{"Wrong key", "secret", "nope", http.StatusUnauthorized},
		{"Missing key", "secret", "", http.StatusUnauthorized},
		{"Auth disabled", "", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp(tt.configured)
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.supplied != "" {
				req.Header.Set("X-API-Key", tt.supplied)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
