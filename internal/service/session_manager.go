// service/session_manager.go
package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/AndrewSs45/Projecto-Algebra/internal/model"
	"github.com/google/uuid"
)

// SessionManager stores sessions by id and drops the ones left idle.
type SessionManager struct {
	sessions map[string]*Session
	width    int
	height   int
	ttl      time.Duration
	now      func() time.Time
	mu       sync.RWMutex
}

// NewSessionManager creates sessions on width x height boards. A ttl of zero
// disables expiry.
func NewSessionManager(width, height int, ttl time.Duration) *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*Session),
		width:    width,
		height:   height,
		ttl:      ttl,
		now:      time.Now,
	}
}

func (sm *SessionManager) CreateSession() (*Session, error) {
	board, err := model.NewBoard(sm.width, sm.height)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}
	id := uuid.New().String()
	session := newSession(id, board, sm.now)

	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.sessions[id] = session
	log.Printf("created session %s (%dx%d)", id, sm.width, sm.height)
	return session, nil
}

func (sm *SessionManager) GetSession(id string) (*Session, error) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	session, exists := sm.sessions[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return session, nil
}

func (sm *SessionManager) DeleteSession(id string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.sessions[id]; !exists {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	delete(sm.sessions, id)
	log.Printf("deleted session %s", id)
	return nil
}

func (sm *SessionManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}

// Reap removes sessions untouched for longer than the ttl and that have no
// live subscribers. It returns how many were removed.
func (sm *SessionManager) Reap() int {
	if sm.ttl <= 0 {
		return 0
	}
	cutoff := sm.now().Add(-sm.ttl)

	sm.mu.Lock()
	defer sm.mu.Unlock()
	removed := 0
	for id, session := range sm.sessions {
		if session.SubscriberCount() > 0 || session.idleSince().After(cutoff) {
			continue
		}
		delete(sm.sessions, id)
		removed++
	}
	if removed > 0 {
		log.Printf("reaped %d idle sessions", removed)
	}
	return removed
}

// RunReaper calls Reap every interval until ctx is done.
func (sm *SessionManager) RunReaper(ctx context.Context, interval time.Duration) {
	if sm.ttl <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sm.Reap()
		}
	}
}
