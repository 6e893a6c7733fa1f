// Package index keeps the live vector index in memory and coordinates
// rebuilds against it.
package index

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/SolarisSy/iast/internal/vectorstore"
)

// ErrRebuildInProgress is returned by BeginRebuild when another rebuild
// already holds the slot.
var ErrRebuildInProgress = errors.New("index rebuild already in progress")

// Loader reads a persisted index from disk.
type Loader interface {
	Load(ctx context.Context) (*vectorstore.VectorIndex, error)
}

// Cache holds at most one loaded index. The first Get after startup or after
// Invalidate loads from disk; concurrent readers share the same instance.
// Rebuilds are serialized through BeginRebuild so two ingestions can never
// write the store at the same time.
type Cache struct {
	loader Loader
	logger *zap.Logger

	mu      sync.RWMutex
	current *vectorstore.VectorIndex
	loaded  bool

	rebuildMu sync.Mutex
}

// NewCache creates an empty cache backed by the given loader.
func NewCache(loader Loader, logger *zap.Logger) *Cache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache{loader: loader, logger: logger}
}

// Get returns the cached index, loading it from disk on first use. A store
// that has never been built yields (nil, nil); callers treat that as "not yet
// ingested" rather than an error.
func (c *Cache) Get(ctx context.Context) (*vectorstore.VectorIndex, error) {
	c.mu.RLock()
	if c.loaded {
		ix := c.current
		c.mu.RUnlock()
		return ix, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded {
		return c.current, nil
	}

	ix, err := c.loader.Load(ctx)
	if err != nil {
		if errors.Is(err, vectorstore.ErrNotFound) {
			// Not an error: the corpus was never ingested. Do not cache the
			// miss, the next Get should see a freshly built store.
			return nil, nil
		}
		return nil, fmt.Errorf("loading vector index: %w", err)
	}
	c.logger.Info("vector index loaded",
		zap.Int("chunks", ix.Size()),
		zap.Int("dimensions", ix.Dimensions()),
	)
	c.current = ix
	c.loaded = true
	return ix, nil
}

// Set installs a freshly built index, replacing whatever was cached.
func (c *Cache) Set(ix *vectorstore.VectorIndex) {
	c.mu.Lock()
	c.current = ix
	c.loaded = ix != nil
	c.mu.Unlock()
}

// Invalidate drops the cached index so the next Get reloads from disk.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.current = nil
	c.loaded = false
	c.mu.Unlock()
}

// BeginRebuild claims the rebuild slot. It never blocks: if a rebuild is
// already running the caller gets ErrRebuildInProgress and should report the
// conflict upstream.
func (c *Cache) BeginRebuild() error {
	if !c.rebuildMu.TryLock() {
		return ErrRebuildInProgress
	}
	return nil
}

// EndRebuild releases the slot claimed by BeginRebuild.
func (c *Cache) EndRebuild() {
	c.rebuildMu.Unlock()
}
