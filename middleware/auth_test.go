package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"notes-app/models"
	"notes-app/services"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUsers map[int64]*models.User

func (s stubUsers) Get(userID int64) (*models.User, error) {
	if userID == 500 {
		return nil, errors.New("database is locked")
	}
	user, ok := s[userID]
	if !ok {
		return nil, services.ErrUserNotFound
	}
	return user, nil
}

func setupAuthApp() *fiber.App {
	users := stubUsers{
		1: {ID: 1, Username: "admin", IsAdmin: true},
		2: {ID: 2, Username: "alice"},
	}

	app := fiber.New()
	app.Get("/me", Identity(users, "X-User-ID"), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"id": GetUserID(c), "username": GetUser(c).Username})
	})
	app.Get("/admin", Identity(users, "X-User-ID"), AdminRequired(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestIdentity(t *testing.T) {
	app := setupAuthApp()

	tests := []struct {
		name           string
		header         string
		path           string
		expectedStatus int
	}{
		{name: "Missing header", path: "/me", expectedStatus: http.StatusUnauthorized},
		{name: "Malformed header", header: "abc", path: "/me", expectedStatus: http.StatusUnauthorized},
		{name: "Negative id", header: "-3", path: "/me", expectedStatus: http.StatusUnauthorized},
		{name: "Unknown user", header: "99", path: "/me", expectedStatus: http.StatusUnauthorized},
		{name: "Lookup failure", header: "500", path: "/me", expectedStatus: http.StatusInternalServerError},
		{name: "Known user", header: "2", path: "/me", expectedStatus: http.StatusOK},
		{name: "Non-admin on admin route", header: "2", path: "/admin", expectedStatus: http.StatusForbidden},
		{name: "Admin on admin route", header: "1", path: "/admin", expectedStatus: http.StatusOK},
		{name: "Anonymous on admin route", path: "/admin", expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("X-User-ID", tt.header)
			}

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestAdminRequired_WithoutIdentity(t *testing.T) {
	app := fiber.New()
	app.Get("/", AdminRequired(), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
