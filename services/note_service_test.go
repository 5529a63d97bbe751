package services

import (
	"errors"
	"notes-app/database"
	"notes-app/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteService_Create(t *testing.T) {
	repo := new(MockNoteRepository)
	created := &models.Note{ID: 10, Title: "Groceries", UserID: 2}
	repo.On("CreateNote", "Groceries", "milk", int64(2), "home").Return(int64(10), nil)
	repo.On("GetNote", int64(10)).Return(created, nil)

	service := NewNoteService(repo)
	note, err := service.Create("  Groceries ", "milk", 2, "home")

	require.NoError(t, err)
	assert.Equal(t, created, note)
	repo.AssertExpectations(t)
}

func TestNoteService_CreateUnknownOwner(t *testing.T) {
	repo := new(MockNoteRepository)
	repo.On("CreateNote", "t", "", int64(404), "").Return(int64(0), database.ErrUnknownOwner)

	_, err := NewNoteService(repo).Create("t", "", 404, "")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestNoteService_Get(t *testing.T) {
	tests := []struct {
		name          string
		mockSetup     func(*MockNoteRepository)
		expectedError error
	}{
		{
			name: "Success - Note exists",
			mockSetup: func(repo *MockNoteRepository) {
				repo.On("GetNote", int64(1)).Return(&models.Note{ID: 1}, nil)
			},
		},
		{
			name: "Error - Note missing",
			mockSetup: func(repo *MockNoteRepository) {
				repo.On("GetNote", int64(1)).Return(nil, nil)
			},
			expectedError: ErrNoteNotFound,
		},
		{
			name: "Error - Repository error",
			mockSetup: func(repo *MockNoteRepository) {
				repo.On("GetNote", int64(1)).Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockNoteRepository)
			tt.mockSetup(repo)

			service := NewNoteService(repo)
			note, err := service.Get(1)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, note)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(1), note.ID)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestNoteService_Update(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := new(MockNoteRepository)
		repo.On("UpdateNote", int64(4), "Title", "body", "tag").Return(nil)

		err := NewNoteService(repo).Update(4, "Title ", "body", "tag")
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Missing note", func(t *testing.T) {
		repo := new(MockNoteRepository)
		repo.On("UpdateNote", int64(4), "Title", "", "").Return(database.ErrNotFound)

		err := NewNoteService(repo).Update(4, "Title", "", "")
		assert.ErrorIs(t, err, ErrNoteNotFound)
	})
}

func TestNoteService_Search(t *testing.T) {
	repo := new(MockNoteRepository)
	repo.On("SearchNotes", int64(2), "abc", "work").Return([]models.Note{{ID: 1}}, nil)

	notes, err := NewNoteService(repo).Search(2, " abc ", " work")

	require.NoError(t, err)
	assert.Len(t, notes, 1)
	repo.AssertExpectations(t)
}

func TestNoteService_Delete(t *testing.T) {
	repo := new(MockNoteRepository)
	repo.On("DeleteNote", int64(99)).Return(nil)

	assert.NoError(t, NewNoteService(repo).Delete(99))
	repo.AssertExpectations(t)
}
