// Package session tracks live admin refresh sessions by token id, so that
// logout actually revokes the refresh token instead of only clearing cookies.
package session

import (
	"context"
	"sync"
	"time"
)

type Registry interface {
	Add(ctx context.Context, id string, ttl time.Duration) error
	Valid(ctx context.Context, id string) (bool, error)
	Revoke(ctx context.Context, id string) error
}

// MemoryRegistry is the fallback when Redis is not configured. Sessions do not
// survive a restart; a restart therefore logs every admin out.
type MemoryRegistry struct {
	mu       sync.Mutex
	sessions map[string]time.Time
}

func NewMemory() *MemoryRegistry {
	return &MemoryRegistry{sessions: make(map[string]time.Time)}
}

func (m *MemoryRegistry) Add(ctx context.Context, id string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = time.Now().Add(ttl)
	return nil
}

func (m *MemoryRegistry) Valid(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	expiry, ok := m.sessions[id]
	if !ok {
		return false, nil
	}
	if time.Now().After(expiry) {
		delete(m.sessions, id)
		return false, nil
	}
	return true, nil
}

func (m *MemoryRegistry) Revoke(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}
