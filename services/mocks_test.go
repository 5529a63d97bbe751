package services

import (
	"notes-app/models"

	"github.com/stretchr/testify/mock"
)

// ==================== MOCKS ====================

// MockUserRepository is a mock implementation of UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

// Ensure MockUserRepository implements UserRepository interface
var _ UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) CreateUser(username, email, password string, isAdmin bool) (int64, error) {
	args := m.Called(username, email, password, isAdmin)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) GetUser(userID int64) (*models.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UserExistsByEmail(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(userID int64, username, email, password string) error {
	args := m.Called(userID, username, email, password)
	return args.Error(0)
}

func (m *MockUserRepository) AdminUpdateUser(userID int64, username, email, password string, isAdmin bool) error {
	args := m.Called(userID, username, email, password, isAdmin)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) ListUsers() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) GetUsersSummary() ([]models.UserSummary, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserSummary), args.Error(1)
}

// MockNoteRepository is a mock implementation of NoteRepository interface
type MockNoteRepository struct {
	mock.Mock
}

// Ensure MockNoteRepository implements NoteRepository interface
var _ NoteRepository = (*MockNoteRepository)(nil)

func (m *MockNoteRepository) CreateNote(title, content string, userID int64, tags string) (int64, error) {
	args := m.Called(title, content, userID, tags)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNoteRepository) GetNote(noteID int64) (*models.Note, error) {
	args := m.Called(noteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Note), args.Error(1)
}

func (m *MockNoteRepository) GetNotesByUser(userID int64) ([]models.Note, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Note), args.Error(1)
}

func (m *MockNoteRepository) SearchNotes(userID int64, query, tag string) ([]models.Note, error) {
	args := m.Called(userID, query, tag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Note), args.Error(1)
}

func (m *MockNoteRepository) UpdateNote(noteID int64, title, content, tags string) error {
	args := m.Called(noteID, title, content, tags)
	return args.Error(0)
}

func (m *MockNoteRepository) DeleteNote(noteID int64) error {
	args := m.Called(noteID)
	return args.Error(0)
}

func (m *MockNoteRepository) ListAllNotes() ([]models.NoteWithOwner, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.NoteWithOwner), args.Error(1)
}
