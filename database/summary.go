package database

import (
	"fmt"
	"notes-app/models"
)

// GetUsersSummary returns one row per user with the number of notes it owns,
// ordered by username. Users without notes report zero.
func (r *Repository) GetUsersSummary() ([]models.UserSummary, error) {
	rows, err := r.db.Query(`
		SELECT u.id, u.username, u.email, u.is_admin, COUNT(n.id) AS notes_count
		FROM users u
		LEFT JOIN notes n ON n.user_id = u.id
		GROUP BY u.id, u.username, u.email, u.is_admin
		ORDER BY u.username ASC, u.id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize users: %w", err)
	}
	defer rows.Close()

	summary := make([]models.UserSummary, 0)
	for rows.Next() {
		var s models.UserSummary
		if err := rows.Scan(&s.ID, &s.Username, &s.Email, &s.IsAdmin, &s.NotesCount); err != nil {
			return nil, err
		}
		summary = append(summary, s)
	}

	return summary, rows.Err()
}
