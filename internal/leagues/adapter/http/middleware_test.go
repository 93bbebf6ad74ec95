package http

import (
	"net/http/httptest"
	"testing"

	"league-backend/internal/shared/contextkeys"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	t.Run("generates an ID and propagates it", func(t *testing.T) {
		app := fiber.New()
		app.Use(RequestIDMiddleware())

		var seen string
		app.Get("/", func(c *fiber.Ctx) error {
			id, ok := contextkeys.RequestIDFromContext(c.UserContext())
			require.True(t, ok)
			seen = id
			return c.SendStatus(fiber.StatusOK)
		})

		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, resp.Header.Get(requestIDHeader))
	})

	t.Run("honors an inbound ID", func(t *testing.T) {
		app := fiber.New()
		app.Use(RequestIDMiddleware())
		app.Get("/", func(c *fiber.Ctx) error {
			id, _ := contextkeys.RequestIDFromContext(c.UserContext())
			return c.SendString(id)
		})

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(requestIDHeader, "req-from-client")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, "req-from-client", resp.Header.Get(requestIDHeader))
	})
}
