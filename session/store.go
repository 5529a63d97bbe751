package session

import (
	"notes-app/models"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store maps browser session ids to the user that logged in with them.
// Each login gets its own entry; there is no shared "current user".
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
	ttl      time.Duration
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*models.Session),
		ttl:      ttl,
		now:      time.Now,
		stop:     make(chan struct{}),
	}
}

// Create starts a session for the given user.
func (s *Store) Create(user *models.User) *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	session := &models.Session{
		ID:         uuid.New().String(),
		UserID:     user.ID,
		Username:   user.Username,
		Email:      user.Email,
		IsAdmin:    user.IsAdmin,
		ExpiresAt:  now.Add(s.ttl),
		CreatedAt:  now,
		LastUsedAt: now,
	}

	s.sessions[session.ID] = session
	return session
}

// Get returns a copy of the session, or nil if it is unknown or expired.
func (s *Store) Get(sessionID string) *models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, exists := s.sessions[sessionID]
	if !exists || s.now().After(session.ExpiresAt) {
		return nil
	}

	copied := *session
	return &copied
}

// Touch records activity on a session and refreshes the profile fields.
func (s *Store) Touch(sessionID string, user *models.User) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, exists := s.sessions[sessionID]
	if !exists || s.now().After(session.ExpiresAt) {
		return false
	}

	session.LastUsedAt = s.now()
	if user != nil {
		session.Username = user.Username
		session.Email = user.Email
		session.IsAdmin = user.IsAdmin
	}
	return true
}

func (s *Store) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
}

// DeleteByUserID drops every session of a user, e.g. after account removal.
func (s *Store) DeleteByUserID(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, session := range s.sessions {
		if session.UserID == userID {
			delete(s.sessions, id)
		}
	}
}

func (s *Store) CleanupExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	now := s.now()
	for id, session := range s.sessions {
		if now.After(session.ExpiresAt) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// StartCleanupRoutine evicts expired sessions every interval until Stop.
func (s *Store) StartCleanupRoutine(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.CleanupExpired()
			case <-s.stop:
				return
			}
		}
	}()
}

func (s *Store) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}
