package cache

import (
	"context"
	"sync"
	"time"

	"github.com/taoshops/shopdex/internal/directory"
)

// MemoryStore implements Store with in-memory storage for unit tests.
// Error injection is supported for testing failure paths.
type MemoryStore struct {
	mu  sync.RWMutex
	env *Envelope
	ttl time.Duration

	// Clock supplies the current time. Tests override it to control
	// staleness.
	Clock func() time.Time

	// PutErr is returned by Put when non-nil.
	PutErr error

	// puts counts successful Put calls for test assertions.
	puts int
}

// NewMemoryStore creates an empty in-memory store. A non-positive ttl falls
// back to DefaultTTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{ttl: ttl, Clock: time.Now}
}

// Get implements Store.
func (m *MemoryStore) Get(_ context.Context) ([]directory.ShopRecord, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.env == nil {
		return nil, false
	}
	if m.Clock().Sub(time.UnixMilli(m.env.Timestamp)) >= m.ttl {
		return nil, false
	}
	return m.env.Data, true
}

// Put implements Store.
func (m *MemoryStore) Put(_ context.Context, records []directory.ShopRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.PutErr != nil {
		return m.PutErr
	}
	m.env = &Envelope{Timestamp: m.Clock().UnixMilli(), Data: records}
	m.puts++
	return nil
}

// Puts returns the number of successful Put calls.
func (m *MemoryStore) Puts() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.puts
}

// Seed stores records stamped with the store's current clock time.
func (m *MemoryStore) Seed(records []directory.ShopRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.env = &Envelope{Timestamp: m.Clock().UnixMilli(), Data: records}
}
