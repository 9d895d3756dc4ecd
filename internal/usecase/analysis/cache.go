package analysis

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/brainstorm-assistant/errors"
	"github.com/johnquangdev/brainstorm-assistant/internal/infrastructure/cache"
)

// NotRunYet is the cached text before any analysis has been generated
const NotRunYet = "Analysis has not been run yet."

// DefaultCacheWindow is how long a generated analysis is served without recomputation
const DefaultCacheWindow = 60 * time.Second

// Generation identifies the cache state a lookup observed. A Put with a
// generation older than the latest Invalidate is discarded.
type Generation struct {
	n     uint64
	known bool
}

// Cache memoizes the last generated analysis for a fixed window. It is
// process-wide and not keyed by meeting: every mutation must call Invalidate.
type Cache struct {
	store  cache.Store
	clock  clock.Clock
	window time.Duration
	logger *zap.Logger
}

// NewCache creates a cache over the given store. A nil clock uses wall time.
func NewCache(store cache.Store, clk clock.Clock, window time.Duration, logger *zap.Logger) *Cache {
	if clk == nil {
		clk = clock.New()
	}
	if window <= 0 {
		window = DefaultCacheWindow
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache{store: store, clock: clk, window: window, logger: logger}
}

// TryGet returns the cached text while it is younger than the window, and
// the generation to hand to Put on a miss
func (c *Cache) TryGet(ctx context.Context) (string, Generation, bool) {
	entry, err := c.store.Load(ctx)
	if err != nil {
		c.logger.Warn("analysis cache load failed, treating as miss",
			zap.Error(apperrors.ErrCacheFailed("load", err)),
		)
		return "", Generation{}, false
	}
	gen := Generation{n: entry.Generation, known: true}
	if entry.GeneratedAt.IsZero() {
		return "", gen, false
	}
	if c.clock.Since(entry.GeneratedAt) >= c.window {
		return "", gen, false
	}
	return entry.Text, gen, true
}

// Put stores text stamped with the current time, unless the cache was
// invalidated after gen was observed. It reports whether the text was stored.
func (c *Cache) Put(ctx context.Context, gen Generation, text string) bool {
	if !gen.known {
		return false
	}
	entry := cache.Entry{Text: text, GeneratedAt: c.clock.Now().UTC(), Generation: gen.n}
	stored, err := c.store.SaveIfCurrent(ctx, entry)
	if err != nil {
		c.logger.Warn("analysis cache save failed",
			zap.Error(apperrors.ErrCacheFailed("save", err)),
		)
		return false
	}
	if !stored {
		c.logger.Debug("discarding analysis computed before the last invalidation")
	}
	return stored
}

// Invalidate guarantees the next TryGet misses and that results computed
// before this call are never stored
func (c *Cache) Invalidate(ctx context.Context) {
	if _, err := c.store.Reset(ctx, NotRunYet); err != nil {
		c.logger.Error("analysis cache invalidation failed",
			zap.Error(apperrors.ErrCacheFailed("invalidate", err)),
		)
	}
}

// Window returns the configured cache window
func (c *Cache) Window() time.Duration {
	return c.window
}
