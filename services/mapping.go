package services

import (
	"errors"
	"notes-app/database"
)

// userWriteErr translates storage errors from user mutations.
func userWriteErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, database.ErrDuplicateEmail):
		return ErrEmailTaken
	case errors.Is(err, database.ErrNotFound):
		return ErrUserNotFound
	default:
		return err
	}
}

func noteWriteErr(err error) error {
	if errors.Is(err, database.ErrNotFound) {
		return ErrNoteNotFound
	}
	return err
}
