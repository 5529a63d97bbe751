package database

import (
	"database/sql"
	"fmt"
	"notes-app/models"
)

// ==================== USER OPERATIONS ====================

const userColumns = `id, username, email, password, is_admin`

func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	var user models.User
	if err := row.Scan(&user.ID, &user.Username, &user.Email, &user.Password, &user.IsAdmin); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser inserts a user and returns its generated id.
func (r *Repository) CreateUser(username, email, password string, isAdmin bool) (int64, error) {
	res, err := r.db.Exec(`
		INSERT INTO users (username, email, password, is_admin)
		VALUES (?, ?, ?, ?)
	`, username, email, password, isAdmin)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicateEmail
		}
		return 0, fmt.Errorf("failed to create user: %w", err)
	}

	return res.LastInsertId()
}

// GetUser retrieves a user by ID. Returns nil, nil when absent.
func (r *Repository) GetUser(userID int64) (*models.User, error) {
	user, err := scanUser(r.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE id = ?`, userID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// GetUserByEmail retrieves a user by email only; callers compare the password.
func (r *Repository) GetUserByEmail(email string) (*models.User, error) {
	user, err := scanUser(r.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE email = ?`, email))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

func (r *Repository) UserExistsByEmail(email string) (bool, error) {
	var exists int
	err := r.db.QueryRow(`SELECT 1 FROM users WHERE email = ? LIMIT 1`, email).Scan(&exists)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return true, nil
}

// UpdateUser overwrites the mutable profile fields. The unique index on email
// rejects a value held by another user.
func (r *Repository) UpdateUser(userID int64, username, email, password string) error {
	res, err := r.db.Exec(`
		UPDATE users SET
			username = ?,
			email = ?,
			password = ?
		WHERE id = ?
	`, username, email, password, userID)
	return checkUserWrite(res, err)
}

// AdminUpdateUser is UpdateUser plus the admin flag.
func (r *Repository) AdminUpdateUser(userID int64, username, email, password string, isAdmin bool) error {
	res, err := r.db.Exec(`
		UPDATE users SET
			username = ?,
			email = ?,
			password = ?,
			is_admin = ?
		WHERE id = ?
	`, username, email, password, isAdmin, userID)
	return checkUserWrite(res, err)
}

func checkUserWrite(res sql.Result, err error) error {
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteUser removes the user and every note it owns in one transaction.
func (r *Repository) DeleteUser(userID int64) error {
	return r.db.WithTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM notes WHERE user_id = ?`, userID); err != nil {
			return fmt.Errorf("failed to delete user notes: %w", err)
		}

		res, err := tx.Exec(`DELETE FROM users WHERE id = ?`, userID)
		if err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// ListUsers returns all users ordered by id. Passwords are not selected.
func (r *Repository) ListUsers() ([]models.User, error) {
	rows, err := r.db.Query(`SELECT id, username, email, is_admin FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Username, &user.Email, &user.IsAdmin); err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}
