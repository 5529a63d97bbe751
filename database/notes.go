package database

import (
	"database/sql"
	"fmt"
	"notes-app/models"
	"strings"
)

// ==================== NOTE OPERATIONS ====================

const noteColumns = `id, title, content, user_id, tags, date_created, date_modified`

func scanNote(row interface{ Scan(...any) error }, extra ...any) (*models.Note, error) {
	var note models.Note
	var content, tags sql.NullString

	dest := append([]any{
		&note.ID, &note.Title, &content, &note.UserID, &tags,
		&note.DateCreated, &note.DateModified,
	}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	note.Content = content.String
	note.Tags = tags.String
	return &note, nil
}

func scanNotes(rows *sql.Rows) ([]models.Note, error) {
	defer rows.Close()

	// Initialize with empty slice to avoid returning nil
	notes := make([]models.Note, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, *note)
	}

	return notes, rows.Err()
}

// CreateNote inserts a note owned by userID. Both timestamps are set here.
func (r *Repository) CreateNote(title, content string, userID int64, tags string) (int64, error) {
	now := r.now()
	res, err := r.db.Exec(`
		INSERT INTO notes (title, content, user_id, tags, date_created, date_modified)
		VALUES (?, ?, ?, ?, ?, ?)
	`, title, nullString(content), userID, nullString(tags), now, now)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, ErrUnknownOwner
		}
		return 0, fmt.Errorf("failed to create note: %w", err)
	}

	return res.LastInsertId()
}

// GetNote retrieves a note by ID. Returns nil, nil when absent.
func (r *Repository) GetNote(noteID int64) (*models.Note, error) {
	note, err := scanNote(r.db.QueryRow(`SELECT `+noteColumns+` FROM notes WHERE id = ?`, noteID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	return note, nil
}

// GetNotesByUser retrieves all notes owned by userID in insertion order.
func (r *Repository) GetNotesByUser(userID int64) ([]models.Note, error) {
	return r.SearchNotes(userID, "", "")
}

// SearchNotes filters a user's notes. A non-empty query matches a substring of
// title or content, a non-empty tag matches a substring of tags; both apply
// together. Matching is literal and ASCII case-insensitive.
func (r *Repository) SearchNotes(userID int64, query, tag string) ([]models.Note, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + noteColumns + ` FROM notes WHERE user_id = ?`)
	args := []any{userID}

	if query != "" {
		sb.WriteString(` AND (title LIKE ? ESCAPE '\' OR content LIKE ? ESCAPE '\')`)
		pattern := likePattern(query)
		args = append(args, pattern, pattern)
	}
	if tag != "" {
		sb.WriteString(` AND tags LIKE ? ESCAPE '\'`)
		args = append(args, likePattern(tag))
	}
	sb.WriteString(` ORDER BY id ASC`)

	rows, err := r.db.Query(sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search notes: %w", err)
	}
	return scanNotes(rows)
}

// UpdateNote overwrites title, content and tags and refreshes date_modified.
func (r *Repository) UpdateNote(noteID int64, title, content, tags string) error {
	res, err := r.db.Exec(`
		UPDATE notes SET
			title = ?,
			content = ?,
			tags = ?,
			date_modified = ?
		WHERE id = ?
	`, title, nullString(content), nullString(tags), r.now(), noteID)
	if err != nil {
		return fmt.Errorf("failed to update note: %w", err)
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

// DeleteNote removes a note. Deleting an unknown id is not an error.
func (r *Repository) DeleteNote(noteID int64) error {
	if _, err := r.db.Exec(`DELETE FROM notes WHERE id = ?`, noteID); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return nil
}

// ListAllNotes returns every note with its owner's username, most recently
// modified first.
func (r *Repository) ListAllNotes() ([]models.NoteWithOwner, error) {
	rows, err := r.db.Query(`
		SELECT n.id, n.title, n.content, n.user_id, n.tags, n.date_created, n.date_modified, u.username
		FROM notes n
		JOIN users u ON u.id = n.user_id
		ORDER BY n.date_modified DESC, n.id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	notes := make([]models.NoteWithOwner, 0)
	for rows.Next() {
		var username string
		note, err := scanNote(rows, &username)
		if err != nil {
			return nil, err
		}
		notes = append(notes, models.NoteWithOwner{Note: *note, Username: username})
	}

	return notes, rows.Err()
}
