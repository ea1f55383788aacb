package sessions

import (
	"context"
	"sync"
	"time"

	"github.com/caatpension/pension-api/internal/domain"
)

// MemoryRegistry is the default in-process token registry. Entries are only
// removed by logout or discard, never by expiry, so entries for tokens that
// have since expired can accumulate; the codec check still rejects those
// tokens on use.
type MemoryRegistry struct {
	mu     sync.RWMutex
	active map[string]struct{}
}

func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{active: make(map[string]struct{})}
}

func (m *MemoryRegistry) Activate(ctx context.Context, token string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.active[token] = struct{}{}
	return nil
}

func (m *MemoryRegistry) Deactivate(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.active[token]; !ok {
		return domain.ErrNotActive
	}
	delete(m.active, token)
	return nil
}

func (m *MemoryRegistry) IsActive(ctx context.Context, token string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.active[token]
	return ok, nil
}

func (m *MemoryRegistry) Discard(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.active, token)
	return nil
}
