package services

import (
	"errors"
	"log/slog"
	"notes-app/utils"
)

// DefaultAdmin describes the account guaranteed to exist after startup.
type DefaultAdmin struct {
	Username string
	Email    string
	Password string
}

// EnsureDefaultAdmin creates the default admin unless a user with its email
// already exists. Returns true when an account was created.
func EnsureDefaultAdmin(repo UserRepository, hasher utils.PasswordHasher, admin DefaultAdmin, logger *slog.Logger) (bool, error) {
	exists, err := repo.UserExistsByEmail(admin.Email)
	if err != nil {
		return false, err
	}
	if exists {
		logger.Debug("default admin present", "email", admin.Email)
		return false, nil
	}

	stored, err := hasher.Hash(admin.Password)
	if err != nil {
		return false, err
	}

	id, err := repo.CreateUser(admin.Username, admin.Email, stored, true)
	if err != nil {
		// Lost a race against another starter; the account exists now.
		if errors.Is(userWriteErr(err), ErrEmailTaken) {
			return false, nil
		}
		return false, err
	}

	logger.Info("default admin created", "user_id", id, "email", admin.Email)
	return true, nil
}
