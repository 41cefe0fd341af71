package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"bookcatalog/internal/catalog"
	"bookcatalog/internal/logger"
	"bookcatalog/internal/metrics"
	"bookcatalog/internal/render"
	"bookcatalog/internal/theme"
)

const DefaultTTL = 30 * time.Minute

// Store keeps live sessions in memory. Each session is driven by one
// request at a time.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create registers a session for ctl. Its View holds the initial render
// and follows every later transition.
func (s *Store) Create(ctl *catalog.Controller, t theme.Theme) *Session {
	now := s.now()
	sess := &Session{
		ID:         uuid.New().String(),
		Controller: ctl,
		View:       &render.Snapshot{},
		Theme:      t,
		CreatedAt:  now,
		LastSeen:   now,
	}
	render.Initial(ctl, sess.View, t)
	render.Bind(ctl, sess.View)

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	n := len(s.sessions)
	s.mu.Unlock()

	metrics.ActiveSessions.Set(float64(n))
	return sess
}

// With runs fn with exclusive access to the session and refreshes its idle timer.
func (s *Store) With(id string, fn func(*Session) error) error {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	now := s.now()
	if now.Sub(sess.LastSeen) > s.ttl {
		s.remove(id, sess)
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	sess.LastSeen = now
	return fn(sess)
}

func (s *Store) Delete(id string) error {
	s.mu.Lock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	n := len(s.sessions)
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	metrics.ActiveSessions.Set(float64(n))
	return nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// CleanupExpired drops sessions idle for longer than the TTL and reports how many went.
func (s *Store) CleanupExpired() int {
	now := s.now()
	var all []*Session

	s.mu.RLock()
	for _, sess := range s.sessions {
		all = append(all, sess)
	}
	s.mu.RUnlock()

	removed := 0
	for _, sess := range all {
		sess.mu.Lock()
		if now.Sub(sess.LastSeen) > s.ttl {
			if s.remove(sess.ID, sess) {
				removed++
			}
		}
		sess.mu.Unlock()
	}
	return removed
}

// Run sweeps expired sessions every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.CleanupExpired(); n > 0 {
				logger.For(ctx).WithField("removed", n).Info("expired sessions removed")
			}
		}
	}
}

// remove deletes id only if it still maps to sess.
func (s *Store) remove(id string, sess *Session) bool {
	s.mu.Lock()
	cur, ok := s.sessions[id]
	if ok && cur == sess {
		delete(s.sessions, id)
	}
	n := len(s.sessions)
	s.mu.Unlock()

	metrics.ActiveSessions.Set(float64(n))
	return ok && cur == sess
}
