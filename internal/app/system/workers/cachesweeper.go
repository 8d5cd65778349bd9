// internal/app/system/workers/cachesweeper.go
package workers

import (
	"sync"
	"time"

	"github.com/dalemusser/wastewise/internal/app/system/pagecache"
	"go.uber.org/zap"
)

// CacheSweeper is a background worker that evicts expired page cache entries.
type CacheSweeper struct {
	cache     *pagecache.Cache
	log       *zap.Logger
	interval  time.Duration
	stopCh    chan struct{}
	startOnce sync.Once
	stopOnce  sync.Once
	wg        sync.WaitGroup
}

// NewCacheSweeper creates a new cache sweeper.
//
// Parameters:
//   - cache: the page cache to sweep
//   - logger: zap logger for logging
//   - interval: how often to sweep (e.g., 1 minute)
func NewCacheSweeper(cache *pagecache.Cache, logger *zap.Logger, interval time.Duration) *CacheSweeper {
	return &CacheSweeper{
		cache:    cache,
		log:      logger,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the background sweep loop. Later calls are no-ops.
func (w *CacheSweeper) Start() {
	w.startOnce.Do(func() {
		w.wg.Add(1)
		go w.run()
		w.log.Info("cache sweeper started", zap.Duration("interval", w.interval))
	})
}

// Stop signals the worker to stop and waits for it to finish. It is safe to
// call more than once.
func (w *CacheSweeper) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		w.wg.Wait()
		w.log.Info("cache sweeper stopped")
	})
}

func (w *CacheSweeper) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.sweep()
		}
	}
}

func (w *CacheSweeper) sweep() {
	if n := w.cache.Sweep(); n > 0 {
		w.log.Debug("evicted expired pages", zap.Int("count", n), zap.Int("remaining", w.cache.Len()))
	}
}
