package identity

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore keeps the identity in process memory. Err, when set, is
// returned (wrapped in ErrPersistence) by every call.
type MemoryStore struct {
	mu        sync.Mutex
	id        string
	defaultID string
	Err       error
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore mirrors NewSQLiteStore: an empty defaultID yields a random
// UUID on first use.
func NewMemoryStore(defaultID string) *MemoryStore {
	return &MemoryStore{defaultID: defaultID}
}

func (m *MemoryStore) EnsureIdentity(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return "", fmt.Errorf("%w: %w", ErrPersistence, m.Err)
	}
	if m.id == "" {
		m.id = m.defaultID
		if m.id == "" {
			m.id = uuid.NewString()
		}
	}
	return m.id, nil
}
