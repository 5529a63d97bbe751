package session

import (
	"notes-app/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(ttl time.Duration) (*Store, *time.Time) {
	s := NewStore(ttl)
	now := time.Date(2025, 10, 17, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	return s, &now
}

var alice = &models.User{ID: 7, Username: "alice", Email: "alice@example.com"}

func TestStore_CreateAndGet(t *testing.T) {
	s, now := newTestStore(time.Hour)

	sess := s.Create(alice)
	require.NotEmpty(t, sess.ID)
	assert.Equal(t, int64(7), sess.UserID)
	assert.Equal(t, now.Add(time.Hour), sess.ExpiresAt)

	got := s.Get(sess.ID)
	require.NotNil(t, got)
	assert.Equal(t, "alice", got.Username)

	assert.Nil(t, s.Get("unknown"))
}

func TestStore_SessionsAreIndependent(t *testing.T) {
	s, _ := newTestStore(time.Hour)
	bob := &models.User{ID: 8, Username: "bob", Email: "bob@example.com", IsAdmin: true}

	a := s.Create(alice)
	b := s.Create(bob)
	assert.NotEqual(t, a.ID, b.ID)

	assert.Equal(t, int64(7), s.Get(a.ID).UserID)
	assert.Equal(t, int64(8), s.Get(b.ID).UserID)

	s.Delete(a.ID)
	assert.Nil(t, s.Get(a.ID))
	assert.NotNil(t, s.Get(b.ID))
}

func TestStore_Expiry(t *testing.T) {
	s, now := newTestStore(time.Hour)
	sess := s.Create(alice)

	*now = now.Add(59 * time.Minute)
	assert.NotNil(t, s.Get(sess.ID))

	*now = now.Add(2 * time.Minute)
	assert.Nil(t, s.Get(sess.ID))
	assert.False(t, s.Touch(sess.ID, nil))

	assert.Equal(t, 1, s.CleanupExpired())
	assert.Equal(t, 0, s.Len())
}

func TestStore_Touch(t *testing.T) {
	s, now := newTestStore(time.Hour)
	sess := s.Create(alice)

	*now = now.Add(10 * time.Minute)
	renamed := &models.User{ID: 7, Username: "alice2", Email: "alice2@example.com", IsAdmin: true}
	require.True(t, s.Touch(sess.ID, renamed))

	got := s.Get(sess.ID)
	assert.Equal(t, "alice2", got.Username)
	assert.True(t, got.IsAdmin)
	assert.Equal(t, *now, got.LastUsedAt)
}

func TestStore_GetReturnsCopy(t *testing.T) {
	s, _ := newTestStore(time.Hour)
	sess := s.Create(alice)

	got := s.Get(sess.ID)
	got.UserID = 999

	assert.Equal(t, int64(7), s.Get(sess.ID).UserID)
}

func TestStore_DeleteByUserID(t *testing.T) {
	s, _ := newTestStore(time.Hour)
	first := s.Create(alice)
	second := s.Create(alice)
	other := s.Create(&models.User{ID: 8, Username: "bob"})

	s.DeleteByUserID(7)

	assert.Nil(t, s.Get(first.ID))
	assert.Nil(t, s.Get(second.ID))
	assert.NotNil(t, s.Get(other.ID))
}

func TestStore_StopIsIdempotent(t *testing.T) {
	s := NewStore(time.Hour)
	s.StartCleanupRoutine(time.Millisecond)
	s.Stop()
	s.Stop()
}
