package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredLogger_RequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	app := fiber.New()
	app.Use(StructuredLogger(logger, "api"))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString(GetRequestID(c)) })

	t.Run("Generates id", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
		require.NoError(t, err)
		assert.Len(t, resp.Header.Get(RequestIDHeader), 36)
	})

	t.Run("Keeps well-formed incoming id", func(t *testing.T) {
		const id = "3f1c2a9e-8b7d-4c6e-9a5f-1e2d3c4b5a69"
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, id)

		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, id, resp.Header.Get(RequestIDHeader))
	})

	t.Run("Replaces garbage id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "<script>")

		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.NotEqual(t, "<script>", resp.Header.Get(RequestIDHeader))
	})

	assert.Contains(t, buf.String(), `"component":"api"`)
}

func TestSecurity(t *testing.T) {
	app := fiber.New()
	app.Use(Security(PageContentPolicy))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.Equal(t, PageContentPolicy, resp.Header.Get("Content-Security-Policy"))
}
