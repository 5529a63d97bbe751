package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setupTestRepo(t *testing.T) *Repository {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := New(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	err = db.Migrate()
	require.NoError(t, err)

	return NewRepository(db)
}

// fixedClock lets tests move the repository clock explicitly.
type fixedClock struct {
	t time.Time
}

func (c *fixedClock) now() time.Time { return c.t }

func (c *fixedClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func withClock(r *Repository) *fixedClock {
	clock := &fixedClock{t: time.Date(2025, 10, 17, 9, 0, 0, 0, time.UTC)}
	r.now = clock.now
	return clock
}

func createUser(t *testing.T, r *Repository, username, email string) int64 {
	t.Helper()
	id, err := r.CreateUser(username, email, "secret", false)
	require.NoError(t, err)
	return id
}

func TestMigrate_Idempotent(t *testing.T) {
	repo := setupTestRepo(t)

	require.NoError(t, repo.db.Migrate())
	require.NoError(t, repo.db.Migrate())
}

func TestLikePattern(t *testing.T) {
	require.Equal(t, "%abc%", likePattern("abc"))
	require.Equal(t, `%50\%\_off\\%`, likePattern(`50%_off\`))
}
