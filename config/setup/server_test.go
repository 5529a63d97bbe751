package setup_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"notes-app/config"
	"notes-app/config/setup"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(trusted []string) *fiber.App {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app := setup.NewFiberApp(&config.Config{Env: "production"}, logger, trusted)
	app.Get("/ip", func(c *fiber.Ctx) error { return c.SendString(c.IP()) })
	app.Get("/fail", func(c *fiber.Ctx) error { return errors.New("boom") })
	app.Get("/teapot", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusTeapot, "short and stout") })
	return app
}

func ipSeen(t *testing.T, app *fiber.App, forwarded string) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/ip", nil)
	if forwarded != "" {
		req.Header.Set(fiber.HeaderXForwardedFor, forwarded)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestNewFiberApp_ClientIP(t *testing.T) {
	t.Run("Untrusted peer cannot set its address", func(t *testing.T) {
		app := newTestApp([]string{"10.9.9.9"})
		assert.NotEqual(t, "10.0.0.7", ipSeen(t, app, "10.0.0.7"))
	})

	t.Run("Trusted peer forwards the client address", func(t *testing.T) {
		app := newTestApp([]string{"0.0.0.0/0", "::/0"})
		assert.Equal(t, "10.0.0.7", ipSeen(t, app, "10.0.0.7"))
		assert.Equal(t, "10.0.0.7", ipSeen(t, app, "10.0.0.7, 192.168.1.1"))
	})

	t.Run("Garbage in the header is skipped", func(t *testing.T) {
		app := newTestApp([]string{"0.0.0.0/0", "::/0"})
		assert.Equal(t, "10.0.0.8", ipSeen(t, app, "not-an-ip, 10.0.0.8"))
	})
}

func TestCustomErrorHandler(t *testing.T) {
	app := newTestApp(nil)

	tests := []struct {
		path    string
		status  int
		message string
	}{
		{"/fail", http.StatusInternalServerError, "Internal server error"},
		{"/teapot", http.StatusTeapot, "short and stout"},
		{"/missing", http.StatusNotFound, "Cannot GET /missing"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil), -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.status, resp.StatusCode)
			var body map[string]any
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.message, body["error"])
			assert.Contains(t, body, "request_id")
		})
	}
}
