package services

import "notes-app/models"

// UserRepository defines the interface for user data access.
// Lookups return nil, nil on a miss.
type UserRepository interface {
	CreateUser(username, email, password string, isAdmin bool) (int64, error)
	GetUser(userID int64) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UserExistsByEmail(email string) (bool, error)
	UpdateUser(userID int64, username, email, password string) error
	AdminUpdateUser(userID int64, username, email, password string, isAdmin bool) error
	DeleteUser(userID int64) error
	ListUsers() ([]models.User, error)
	GetUsersSummary() ([]models.UserSummary, error)
}

// NoteRepository defines the interface for note data access
type NoteRepository interface {
	CreateNote(title, content string, userID int64, tags string) (int64, error)
	GetNote(noteID int64) (*models.Note, error)
	GetNotesByUser(userID int64) ([]models.Note, error)
	SearchNotes(userID int64, query, tag string) ([]models.Note, error)
	UpdateNote(noteID int64, title, content, tags string) error
	DeleteNote(noteID int64) error
	ListAllNotes() ([]models.NoteWithOwner, error)
}
