package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

type memorySession struct {
	data      []byte
	expiresAt time.Time
}

// memSession keeps sessions in process memory for single-player runs without Redis.
// Sessions are stored as JSON, callers never share pointers with the store.
type memSession struct {
	mu       sync.RWMutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]memorySession
}

func NewMemorySessionRepository(ttl time.Duration) SessionRepository {
	return &memSession{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]memorySession),
	}
}

func (that *memSession) CreateOrUpdate(_ context.Context, session *entity.Session) error {
	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("could not marshal session: %w", err)
	}

	stored := memorySession{data: sessionJSON}
	if that.ttl > 0 {
		stored.expiresAt = that.now().Add(that.ttl)
	}

	that.mu.Lock()
	that.sessions[session.ID] = stored
	that.mu.Unlock()

	return nil
}

func (that *memSession) GetByID(_ context.Context, id string) (*entity.Session, error) {
	that.mu.RLock()
	stored, ok := that.sessions[id]
	that.mu.RUnlock()

	if !ok || that.expired(stored) {
		return nil, apperror.ErrSessionNotFound
	}

	var session entity.Session
	if err := json.Unmarshal(stored.data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

func (that *memSession) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	stored, ok := that.sessions[id]
	if !ok || that.expired(stored) {
		delete(that.sessions, id)
		return apperror.ErrSessionNotFound
	}

	delete(that.sessions, id)

	return nil
}

func (that *memSession) expired(stored memorySession) bool {
	return !stored.expiresAt.IsZero() && !that.now().Before(stored.expiresAt)
}
