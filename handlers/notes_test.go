package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddNote(t *testing.T) {
	fiberApp, application := setupTestApp(t)
	alice := createUser(t, application, "alice", "alice@example.com", false)

	tests := []struct {
		name           string
		body           map[string]interface{}
		expectedStatus int
		validateBody   func(t *testing.T, body map[string]interface{})
	}{
		{
			name:           "Valid note",
			body:           map[string]interface{}{"title": "Groceries", "content": "milk", "user_id": alice, "tags": "home,shopping"},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				note := body["note"].(map[string]interface{})
				assert.Equal(t, "Groceries", note["title"])
				assert.Equal(t, "home,shopping", note["tags"])
				assert.Equal(t, float64(alice), note["user_id"])
				assert.Equal(t, note["date_created"], note["date_modified"])
			},
		},
		{
			name:           "Content and tags are optional",
			body:           map[string]interface{}{"title": "Bare", "user_id": alice},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				note := body["note"].(map[string]interface{})
				assert.Equal(t, "", note["content"])
				assert.Equal(t, "", note["tags"])
			},
		},
		{
			name:           "Unknown owner",
			body:           map[string]interface{}{"title": "Orphan", "user_id": 9999},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Missing title",
			body:           map[string]interface{}{"content": "x", "user_id": alice},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Missing owner",
			body:           map[string]interface{}{"title": "x"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, fiberApp, http.MethodPost, "/add_note", tt.body, 0)
			assert.Equal(t, tt.expectedStatus, resp.Status)
			if tt.validateBody != nil {
				tt.validateBody(t, resp.Body)
			}
		})
	}
}

func TestGetAllNotes(t *testing.T) {
	fiberApp, application := setupTestApp(t)
	alice := createUser(t, application, "alice", "alice@example.com", false)
	bob := createUser(t, application, "bob", "bob@example.com", false)

	first := createNote(t, application, alice, "one", "", "")
	second := createNote(t, application, alice, "two", "", "")
	createNote(t, application, bob, "bob's", "", "")

	t.Run("Owner's notes in insertion order", func(t *testing.T) {
		resp := doRequest(t, fiberApp, http.MethodGet, fmt.Sprintf("/get_all_notes/%d", alice), nil, 0)
		require.Equal(t, http.StatusOK, resp.Status)
		assert.Equal(t, []int64{first, second}, noteIDs(t, resp.Body))
	})

	t.Run("User without notes gets an empty list", func(t *testing.T) {
		carol := createUser(t, application, "carol", "carol@example.com", false)
		resp := doRequest(t, fiberApp, http.MethodGet, fmt.Sprintf("/get_all_notes/%d", carol), nil, 0)
		require.Equal(t, http.StatusOK, resp.Status)
		assert.Empty(t, noteIDs(t, resp.Body))
	})

	t.Run("Invalid user id", func(t *testing.T) {
		resp := doRequest(t, fiberApp, http.MethodGet, "/get_all_notes/abc", nil, 0)
		assert.Equal(t, http.StatusBadRequest, resp.Status)
	})
}

func TestSearchNotes(t *testing.T) {
	fiberApp, application := setupTestApp(t)
	alice := createUser(t, application, "alice", "alice@example.com", false)
	bob := createUser(t, application, "bob", "bob@example.com", false)

	groceries := createNote(t, application, alice, "Groceries", "buy milk", "home")
	standup := createNote(t, application, alice, "Standup", "discuss MILK budget", "work")
	createNote(t, application, alice, "Ideas", "nothing here", "work")
	createNote(t, application, bob, "Bob milk", "milk", "home")

	tests := []struct {
		name     string
		query    string
		expected []int64
	}{
		{name: "Query matches title or content case-insensitively", query: "?query=milk", expected: []int64{groceries, standup}},
		{name: "Tag filter", query: "?tag=home", expected: []int64{groceries}},
		{name: "Query and tag together", query: "?query=milk&tag=work", expected: []int64{standup}},
		{name: "No match", query: "?query=zzz", expected: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, fiberApp, http.MethodGet, fmt.Sprintf("/search_notes/%d%s", alice, tt.query), nil, 0)
			require.Equal(t, http.StatusOK, resp.Status)
			assert.Equal(t, tt.expected, noteIDs(t, resp.Body))
		})
	}

	t.Run("No filter equals the owner listing", func(t *testing.T) {
		search := doRequest(t, fiberApp, http.MethodGet, fmt.Sprintf("/search_notes/%d", alice), nil, 0)
		list := doRequest(t, fiberApp, http.MethodGet, fmt.Sprintf("/get_all_notes/%d", alice), nil, 0)
		assert.Equal(t, noteIDs(t, list.Body), noteIDs(t, search.Body))
	})
}

func TestGetNote(t *testing.T) {
	fiberApp, application := setupTestApp(t)
	alice := createUser(t, application, "alice", "alice@example.com", false)
	noteID := createNote(t, application, alice, "Groceries", "milk", "home")

	t.Run("Existing note", func(t *testing.T) {
		resp := doRequest(t, fiberApp, http.MethodGet, fmt.Sprintf("/get_note/%d", noteID), nil, 0)
		require.Equal(t, http.StatusOK, resp.Status)
		assert.Equal(t, "Groceries", resp.Body["note"].(map[string]interface{})["title"])
	})

	t.Run("Missing note", func(t *testing.T) {
		resp := doRequest(t, fiberApp, http.MethodGet, "/get_note/9999", nil, 0)
		assert.Equal(t, http.StatusNotFound, resp.Status)
		assert.Equal(t, "note not found", resp.Body["error"])
	})

	t.Run("Invalid id", func(t *testing.T) {
		resp := doRequest(t, fiberApp, http.MethodGet, "/get_note/0", nil, 0)
		assert.Equal(t, http.StatusBadRequest, resp.Status)
	})
}

func TestUpdateNote(t *testing.T) {
	fiberApp, application := setupTestApp(t)
	alice := createUser(t, application, "alice", "alice@example.com", false)
	noteID := createNote(t, application, alice, "Draft", "v1", "")

	t.Run("Overwrites fields", func(t *testing.T) {
		body := map[string]interface{}{"id": noteID, "title": "Final", "content": "v2", "tags": "done"}
		resp := doRequest(t, fiberApp, http.MethodPut, "/update_note", body, 0)
		require.Equal(t, http.StatusOK, resp.Status)
		assert.Equal(t, "Note updated", resp.Body["status"])

		note, err := application.Repo.GetNote(noteID)
		require.NoError(t, err)
		assert.Equal(t, "Final", note.Title)
		assert.Equal(t, "v2", note.Content)
		assert.Equal(t, "done", note.Tags)
		assert.False(t, note.DateModified.Before(note.DateCreated))
	})

	t.Run("Unknown note fails with 400", func(t *testing.T) {
		body := map[string]interface{}{"id": 9999, "title": "x"}
		resp := doRequest(t, fiberApp, http.MethodPut, "/update_note", body, 0)
		assert.Equal(t, http.StatusBadRequest, resp.Status)
	})

	t.Run("Blank title", func(t *testing.T) {
		body := map[string]interface{}{"id": noteID, "title": "   "}
		resp := doRequest(t, fiberApp, http.MethodPut, "/update_note", body, 0)
		assert.Equal(t, http.StatusBadRequest, resp.Status)
	})
}

func TestDeleteNote(t *testing.T) {
	fiberApp, application := setupTestApp(t)
	alice := createUser(t, application, "alice", "alice@example.com", false)
	noteID := createNote(t, application, alice, "Draft", "", "")

	resp := doRequest(t, fiberApp, http.MethodDelete, fmt.Sprintf("/delete_note/%d", noteID), nil, 0)
	require.Equal(t, http.StatusOK, resp.Status)

	resp = doRequest(t, fiberApp, http.MethodGet, fmt.Sprintf("/get_note/%d", noteID), nil, 0)
	assert.Equal(t, http.StatusNotFound, resp.Status)

	t.Run("Unknown id is a no-op", func(t *testing.T) {
		resp := doRequest(t, fiberApp, http.MethodDelete, "/delete_note/9999", nil, 0)
		assert.Equal(t, http.StatusOK, resp.Status)
	})

	t.Run("Invalid id", func(t *testing.T) {
		resp := doRequest(t, fiberApp, http.MethodDelete, "/delete_note/x", nil, 0)
		assert.Equal(t, http.StatusBadRequest, resp.Status)
	})
}

func TestUsersSummary(t *testing.T) {
	fiberApp, application := setupTestApp(t)
	alice := createUser(t, application, "alice", "alice@example.com", false)
	createUser(t, application, "bob", "bob@example.com", false)
	createNote(t, application, alice, "one", "", "")
	createNote(t, application, alice, "two", "", "")

	resp := doRequest(t, fiberApp, http.MethodGet, "/users/summary", nil, 0)
	require.Equal(t, http.StatusOK, resp.Status)

	users := resp.Body["users"].([]interface{})
	require.Len(t, users, 2)

	counts := map[string]float64{}
	for _, u := range users {
		row := u.(map[string]interface{})
		counts[row["username"].(string)] = row["notes_count"].(float64)
	}
	assert.Equal(t, map[string]float64{"alice": 2, "bob": 0}, counts)
}
