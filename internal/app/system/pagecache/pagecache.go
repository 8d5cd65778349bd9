// Package pagecache holds fully rendered responses for routes that are
// regenerated on an interval rather than per request.
//
//   - Revalidate(d): the page is rendered on the first request, served from
//     memory until d has elapsed, and re-rendered by the first request after
//     that. Concurrent misses share one render.
//   - Static(): rendered once and kept for the life of the process.
//   - Dynamic: never cached; marks the response no-store.
//
// Only 200 responses are stored. Entries are keyed by URL path; the query
// string does not select a different page.
package pagecache

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/dalemusser/wastewise/internal/app/system/respbuf"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Cache status values reported in the X-Cache header.
const (
	HeaderCache = "X-Cache"
	Hit         = "HIT"
	Miss        = "MISS"
)

// staticMaxAge is advertised to shared caches for pages built once.
const staticMaxAge = 365 * 24 * time.Hour

type entry struct {
	snap    respbuf.Snapshot
	expires time.Time // zero means never
}

func (e *entry) fresh(now time.Time) bool {
	return e.expires.IsZero() || now.Before(e.expires)
}

// Cache is safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*entry
	group   singleflight.Group
	now     func() time.Time
	log     *zap.Logger
}

// New returns an empty cache. A nil clock uses time.Now.
func New(logger *zap.Logger, now func() time.Time) *Cache {
	if now == nil {
		now = time.Now
	}
	return &Cache{
		entries: make(map[string]*entry),
		now:     now,
		log:     logger,
	}
}

// Revalidate caches responses for interval. interval must be positive;
// use Static for pages that never change.
func (c *Cache) Revalidate(interval time.Duration) func(http.Handler) http.Handler {
	if interval <= 0 {
		panic(fmt.Sprintf("pagecache: revalidate interval must be positive, got %v", interval))
	}
	return c.middleware(interval)
}

// Static caches responses for the life of the process.
func (c *Cache) Static() func(http.Handler) http.Handler {
	return c.middleware(0)
}

// Dynamic marks responses as uncacheable. It does not touch the Cache.
func Dynamic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

func (c *Cache) middleware(interval time.Duration) func(http.Handler) http.Handler {
	cacheControl := fmt.Sprintf("public, s-maxage=%d", int(staticMaxAge.Seconds()))
	if interval > 0 {
		cacheControl = fmt.Sprintf("public, s-maxage=%d", int(interval.Seconds()))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}
			key := r.URL.Path

			if snap, ok := c.lookup(key); ok {
				w.Header().Set(HeaderCache, Hit)
				_ = snap.WriteTo(w)
				return
			}

			v, _, _ := c.group.Do(key, func() (any, error) {
				if snap, ok := c.lookup(key); ok {
					return snap, nil
				}
				return c.render(next, r, key, interval, cacheControl), nil
			})

			w.Header().Set(HeaderCache, Miss)
			_ = v.(respbuf.Snapshot).WriteTo(w)
		})
	}
}

func (c *Cache) lookup(key string) (respbuf.Snapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok || !e.fresh(c.now()) {
		return respbuf.Snapshot{}, false
	}
	return e.snap, true
}

// render runs next once. The render is detached from the triggering
// request's cancellation because other requests may be waiting on it.
func (c *Cache) render(next http.Handler, r *http.Request, key string, interval time.Duration, cacheControl string) respbuf.Snapshot {
	start := c.now()
	rec := respbuf.New(nil)
	next.ServeHTTP(rec, r.WithContext(context.WithoutCancel(r.Context())))

	if rec.Status() != http.StatusOK {
		c.log.Debug("page not cached",
			zap.String("path", key),
			zap.Int("status", rec.Status()))
		return rec.Snapshot()
	}

	rec.Header().Set("Cache-Control", cacheControl)
	snap := rec.Snapshot()

	e := &entry{snap: snap}
	if interval > 0 {
		e.expires = start.Add(interval)
	}
	c.mu.Lock()
	c.entries[key] = e
	c.mu.Unlock()

	c.log.Debug("page regenerated",
		zap.String("path", key),
		zap.Duration("interval", interval),
		zap.Int("bytes", len(snap.Body)))
	return snap
}

// Sweep removes expired entries and returns how many were removed.
func (c *Cache) Sweep() int {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for k, e := range c.entries {
		if !e.fresh(now) {
			delete(c.entries, k)
			n++
		}
	}
	return n
}

// Len returns the number of stored entries, fresh or not.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
