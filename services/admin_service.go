package services

import (
	"notes-app/models"
	"notes-app/utils"
	"strings"
)

// AdminService exposes cross-user operations. Callers are expected to have
// checked that the actor is an admin.
type AdminService struct {
	users  UserRepository
	notes  NoteRepository
	hasher utils.PasswordHasher
}

func NewAdminService(users UserRepository, notes NoteRepository, hasher utils.PasswordHasher) *AdminService {
	return &AdminService{
		users:  users,
		notes:  notes,
		hasher: hasher,
	}
}

func (as *AdminService) ListUsers() ([]models.User, error) {
	return as.users.ListUsers()
}

func (as *AdminService) CreateUser(username, email, password string, isAdmin bool) (int64, error) {
	stored, err := as.hasher.Hash(password)
	if err != nil {
		return 0, err
	}

	id, err := as.users.CreateUser(strings.TrimSpace(username), strings.TrimSpace(email), stored, isAdmin)
	if err != nil {
		return 0, userWriteErr(err)
	}
	return id, nil
}

// UpdateUser overwrites every field of a user. An empty password keeps the
// stored one.
func (as *AdminService) UpdateUser(userID int64, username, email, password string, isAdmin bool) (*models.User, error) {
	current, err := as.users.GetUser(userID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrUserNotFound
	}

	stored := current.Password
	if password != "" {
		if stored, err = as.hasher.Hash(password); err != nil {
			return nil, err
		}
	}

	err = as.users.AdminUpdateUser(userID, strings.TrimSpace(username), strings.TrimSpace(email), stored, isAdmin)
	if err != nil {
		return nil, userWriteErr(err)
	}

	return &models.User{
		ID:       userID,
		Username: strings.TrimSpace(username),
		Email:    strings.TrimSpace(email),
		IsAdmin:  isAdmin,
	}, nil
}

// DeleteUser removes a user and its notes. An admin may not remove itself
// through this path.
func (as *AdminService) DeleteUser(actorID, userID int64) error {
	if actorID == userID {
		return ErrSelfDelete
	}
	return userWriteErr(as.users.DeleteUser(userID))
}

func (as *AdminService) ListNotes() ([]models.NoteWithOwner, error) {
	return as.notes.ListAllNotes()
}

func (as *AdminService) UpdateNote(noteID int64, title, content, tags string) error {
	return noteWriteErr(as.notes.UpdateNote(noteID, strings.TrimSpace(title), content, tags))
}

func (as *AdminService) DeleteNote(noteID int64) error {
	return as.notes.DeleteNote(noteID)
}
