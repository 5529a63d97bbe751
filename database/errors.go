package database

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

var (
	// ErrNotFound is returned by mutations addressed by id when no row matched.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail is returned when an insert or update collides with users.email.
	ErrDuplicateEmail = errors.New("email already in use")

	// ErrUnknownOwner is returned when a note references a user that does not exist.
	ErrUnknownOwner = errors.New("note owner does not exist")
)

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}

func isForeignKeyViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}
	return false
}
