// Package fetch materializes raw task data from all configured accounts
// before an aggregation pass runs.
package fetch

import (
	"sync"
	"time"

	"github.com/glanceworks/tododash/internal/todoist"
)

// Snapshot is the last successfully fetched data for one account.
type Snapshot struct {
	Tasks    []todoist.RawTask
	Projects []todoist.RawProject
	Profile  *todoist.RawProfile
	Fetched  time.Time
}

// Cache holds last-good snapshots keyed by account token. It is an
// explicit object handed to the fetcher, not process-wide state; separate
// dashboard instances use separate caches.
type Cache struct {
	mu        sync.RWMutex
	snapshots map[string]Snapshot
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{snapshots: make(map[string]Snapshot)}
}

// Get returns the snapshot for a token, if one exists.
func (c *Cache) Get(token string) (Snapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	snap, ok := c.snapshots[token]
	return snap, ok
}

// Put stores the snapshot for a token.
func (c *Cache) Put(token string, snap Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshots[token] = snap
}

// Forget drops the snapshot for a token (account removed).
func (c *Cache) Forget(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.snapshots, token)
}
