package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUsersSummary(t *testing.T) {
	repo := setupTestRepo(t)
	zoe := createUser(t, repo, "zoe", "zoe@example.com")
	adam := createUser(t, repo, "adam", "adam@example.com")
	_, err := repo.CreateUser("mia", "mia@example.com", "pw", true)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err := repo.CreateNote("z", "", zoe, "")
		require.NoError(t, err)
	}
	_, err = repo.CreateNote("a", "", adam, "")
	require.NoError(t, err)

	summary, err := repo.GetUsersSummary()
	require.NoError(t, err)
	require.Len(t, summary, 3)

	assert.Equal(t, "adam", summary[0].Username)
	assert.Equal(t, 1, summary[0].NotesCount)

	assert.Equal(t, "mia", summary[1].Username)
	assert.Equal(t, 0, summary[1].NotesCount, "users without notes are reported with zero")
	assert.True(t, summary[1].IsAdmin)

	assert.Equal(t, "zoe", summary[2].Username)
	assert.Equal(t, "zoe@example.com", summary[2].Email)
	assert.Equal(t, 2, summary[2].NotesCount)
}

func TestGetUsersSummary_Empty(t *testing.T) {
	repo := setupTestRepo(t)

	summary, err := repo.GetUsersSummary()
	require.NoError(t, err)
	assert.NotNil(t, summary)
	assert.Empty(t, summary)
}
