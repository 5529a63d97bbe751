package services

import (
	"notes-app/models"
	"notes-app/utils"
	"strings"
)

// UserService handles self-service account operations and the users summary
type UserService struct {
	repo   UserRepository
	hasher utils.PasswordHasher
}

func NewUserService(repo UserRepository, hasher utils.PasswordHasher) *UserService {
	return &UserService{
		repo:   repo,
		hasher: hasher,
	}
}

func (us *UserService) Get(userID int64) (*models.User, error) {
	user, err := us.repo.GetUser(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateSelf overwrites username, email and password of the caller.
func (us *UserService) UpdateSelf(userID int64, username, email, password string) (*models.User, error) {
	stored, err := us.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	if err := us.repo.UpdateUser(userID, strings.TrimSpace(username), strings.TrimSpace(email), stored); err != nil {
		return nil, userWriteErr(err)
	}
	return us.Get(userID)
}

// DeleteSelf removes the caller and all of their notes.
func (us *UserService) DeleteSelf(userID int64) error {
	return userWriteErr(us.repo.DeleteUser(userID))
}

func (us *UserService) Summary() ([]models.UserSummary, error) {
	return us.repo.GetUsersSummary()
}
