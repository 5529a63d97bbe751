package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"notes-app/app"
	"notes-app/config/setup"
	"notes-app/database"
	"notes-app/utils"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

const identityHeader = "X-User-ID"

// setupTestApp creates a temporary database and mounts the full API on it
func setupTestApp(t *testing.T) (*fiber.App, *app.App) {
	t.Helper()
	return setupTestAppWithHasher(t, utils.PlainHasher{})
}

func setupTestAppWithHasher(t *testing.T, hasher utils.PasswordHasher) (*fiber.App, *app.App) {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err, "Failed to initialize test database")
	require.NoError(t, db.Migrate(), "Failed to run migrations")
	t.Cleanup(func() { db.Close() })

	repo := database.NewRepository(db)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	application := app.New(repo, hasher, identityHeader, logger)

	fiberApp := fiber.New()
	setup.RegisterRoutes(fiberApp, application)

	return fiberApp, application
}

type response struct {
	Status int
	Body   map[string]interface{}
}

// doRequest sends body as JSON. actorID > 0 sets the identity header.
func doRequest(t *testing.T, fiberApp *fiber.App, method, path string, body interface{}, actorID int64) response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if actorID > 0 {
		req.Header.Set(identityHeader, strconv.FormatInt(actorID, 10))
	}

	resp, err := fiberApp.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	}

	return response{Status: resp.StatusCode, Body: decoded}
}

func createUser(t *testing.T, application *app.App, username, email string, isAdmin bool) int64 {
	t.Helper()
	id, err := application.Repo.CreateUser(username, email, "secret", isAdmin)
	require.NoError(t, err)
	return id
}

func createNote(t *testing.T, application *app.App, userID int64, title, content, tags string) int64 {
	t.Helper()
	id, err := application.Repo.CreateNote(title, content, userID, tags)
	require.NoError(t, err)
	return id
}

func noteIDs(t *testing.T, body map[string]interface{}) []int64 {
	t.Helper()
	list, ok := body["notes"].([]interface{})
	require.True(t, ok, "notes must be a list, got %v", body["notes"])

	ids := make([]int64, 0, len(list))
	for _, item := range list {
		ids = append(ids, int64(item.(map[string]interface{})["id"].(float64)))
	}
	return ids
}

