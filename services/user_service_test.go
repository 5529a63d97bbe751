package services

import (
	"notes-app/database"
	"notes-app/models"
	"notes-app/utils"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Get(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("GetUser", int64(1)).Return(&models.User{ID: 1}, nil)
	repo.On("GetUser", int64(2)).Return(nil, nil)

	service := NewUserService(repo, utils.PlainHasher{})

	user, err := service.Get(1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)

	_, err = service.Get(2)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_UpdateSelf(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("UpdateUser", int64(1), "alice", "new@example.com", "pw").Return(nil)
		repo.On("GetUser", int64(1)).Return(&models.User{ID: 1, Username: "alice", Email: "new@example.com"}, nil)

		user, err := NewUserService(repo, utils.PlainHasher{}).UpdateSelf(1, "alice", "new@example.com", "pw")
		require.NoError(t, err)
		assert.Equal(t, "new@example.com", user.Email)
		repo.AssertExpectations(t)
	})

	t.Run("Email belongs to someone else", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("UpdateUser", int64(1), "alice", "bob@example.com", "pw").Return(database.ErrDuplicateEmail)

		_, err := NewUserService(repo, utils.PlainHasher{}).UpdateSelf(1, "alice", "bob@example.com", "pw")
		assert.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestUserService_DeleteSelf(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("DeleteUser", int64(1)).Return(nil)
	repo.On("DeleteUser", int64(2)).Return(database.ErrNotFound)

	service := NewUserService(repo, utils.PlainHasher{})
	assert.NoError(t, service.DeleteSelf(1))
	assert.ErrorIs(t, service.DeleteSelf(2), ErrUserNotFound)
}

func TestUserService_Summary(t *testing.T) {
	repo := new(MockUserRepository)
	summary := []models.UserSummary{{ID: 1, Username: "a", NotesCount: 0}}
	repo.On("GetUsersSummary").Return(summary, nil)

	got, err := NewUserService(repo, utils.PlainHasher{}).Summary()
	require.NoError(t, err)
	assert.Equal(t, summary, got)
}
