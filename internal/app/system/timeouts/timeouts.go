// Package timeouts provides centralized timeout values for page loaders and
// other I/O.
//
// Values can be configured at startup using Configure(). If not configured,
// the defaults are used.
//
//   - Ping: health checks and connectivity verification
//   - Load: one page loader call against the data source
//   - Seed: index creation and sample data seeding at startup
package timeouts

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Default timeout values (used if Configure is not called).
const (
	DefaultPing = 2 * time.Second
	DefaultLoad = 5 * time.Second
	DefaultSeed = 60 * time.Second
)

var mu sync.RWMutex

var (
	ping = DefaultPing
	load = DefaultLoad
	seed = DefaultSeed
)

// Ping returns the timeout for health checks.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Load returns the timeout applied to each page loader.
func Load() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return load
}

// Seed returns the timeout for schema and seeding work at startup.
func Seed() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return seed
}

// Config holds timeout configuration values.
// Zero values are ignored (defaults are kept).
type Config struct {
	Ping time.Duration
	Load time.Duration
	Seed time.Duration
}

// Configure sets custom timeout values. Zero values in the config are
// ignored. Call during startup before handlers are registered.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Ping > 0 {
		ping = cfg.Ping
	}
	if cfg.Load > 0 {
		load = cfg.Load
	}
	if cfg.Seed > 0 {
		seed = cfg.Seed
	}
}

// Reset restores all timeouts to their default values.
// Useful for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping = DefaultPing
	load = DefaultLoad
	seed = DefaultSeed
}

// Current returns the current timeout configuration.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return Config{Ping: ping, Load: load, Seed: seed}
}

// WithTimeout creates a context with timeout and returns a cancel function
// that logs a warning if the deadline was hit.
//
//	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Load(), h.Log, "load household")
//	defer cancel()
func WithTimeout(parent context.Context, timeout time.Duration, log *zap.Logger, operation string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return ctx, func() {
		if ctx.Err() == context.DeadlineExceeded && log != nil {
			log.Warn("operation timed out",
				zap.String("operation", operation),
				zap.Duration("timeout", timeout),
			)
		}
		cancel()
	}
}
