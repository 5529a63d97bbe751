package services

import (
	"notes-app/models"
	"notes-app/utils"
	"strings"
)

// AuthService handles registration and login
type AuthService struct {
	repo   UserRepository
	hasher utils.PasswordHasher
}

// NewAuthService creates a new auth service
func NewAuthService(repo UserRepository, hasher utils.PasswordHasher) *AuthService {
	return &AuthService{
		repo:   repo,
		hasher: hasher,
	}
}

// Register creates a regular (non-admin) account and returns its id.
func (as *AuthService) Register(username, email, password string) (int64, error) {
	stored, err := as.hasher.Hash(password)
	if err != nil {
		return 0, err
	}

	id, err := as.repo.CreateUser(strings.TrimSpace(username), strings.TrimSpace(email), stored, false)
	if err != nil {
		return 0, userWriteErr(err)
	}
	return id, nil
}

// Login looks the user up by email, then checks the password. A missing
// email yields ErrUserNotFound, a wrong password ErrInvalidCredentials.
func (as *AuthService) Login(email, password string) (*models.User, error) {
	user, err := as.repo.GetUserByEmail(strings.TrimSpace(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if !as.hasher.Verify(user.Password, password) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
