// Package cache persists the assembled record list under a single key with
// a time-to-live. A stale, missing, or corrupt entry is a miss; the consumer
// re-runs the full pipeline on miss.
package cache

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/taoshops/shopdex/internal/directory"
)

// DefaultTTL is how long a cached record list stays valid.
const DefaultTTL = 24 * time.Hour

// Envelope is the persisted cache value.
type Envelope struct {
	// Timestamp is the write time in epoch milliseconds.
	Timestamp int64                  `json:"timestamp"`
	Data      []directory.ShopRecord `json:"data"`
}

// Store reads and writes the single cached record list.
type Store interface {
	// Get returns the cached records and true while the entry is fresh.
	// Missing, stale, or corrupt entries report false; corruption is never
	// an error.
	Get(ctx context.Context) ([]directory.ShopRecord, bool)

	// Put replaces the cached records, stamping the current time.
	Put(ctx context.Context, records []directory.ShopRecord) error
}

// FileStore is a Store backed by one JSON file.
type FileStore struct {
	path string
	ttl  time.Duration

	// Clock supplies the current time. Tests override it to control
	// staleness.
	Clock func() time.Time
}

// NewFileStore creates a file-backed store. A non-positive ttl falls back to
// DefaultTTL.
func NewFileStore(path string, ttl time.Duration) *FileStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &FileStore{path: path, ttl: ttl, Clock: time.Now}
}

// Get implements Store.
func (s *FileStore) Get(_ context.Context) ([]directory.ShopRecord, bool) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, false
	}

	if !validEnvelope(raw) {
		return nil, false
	}

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, false
	}

	written := time.UnixMilli(env.Timestamp)
	if s.Clock().Sub(written) >= s.ttl {
		return nil, false
	}
	return env.Data, true
}

// Put implements Store.
func (s *FileStore) Put(_ context.Context, records []directory.ShopRecord) error {
	env := Envelope{
		Timestamp: s.Clock().UnixMilli(),
		Data:      records,
	}

	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal cache envelope: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write cache file %s: %w", s.path, err)
	}
	return nil
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// decodeJSON decodes raw bytes preserving number fidelity for schema checks.
func decodeJSON(raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
