// Package observability provides hooks for metrics, tracing, and logging.
//
// The wall and share libraries are pure and never log. Instead they emit
// events through hooks that the application registers at startup, so the
// libraries stay free of any logging or metrics backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetWallHooks(&myWallHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	start := time.Now()
//	// ... compute placements ...
//	observability.Wall().OnPlan(preset, strategy, count, time.Since(start))
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Wall Hooks
// =============================================================================

// WallHooks receives events from the photo-wall core.
type WallHooks interface {
	// OnPlan records a full layout recomputation.
	OnPlan(preset, strategy string, count int, duration time.Duration)

	// OnCollectionChange records a change in the image collection length.
	OnCollectionChange(count int)
}

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from output rendering (plan sinks, share image).
type RenderHooks interface {
	OnRenderStart(ctx context.Context, format string)
	OnRenderComplete(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopWallHooks is a no-op implementation of WallHooks.
type NoopWallHooks struct{}

func (NoopWallHooks) OnPlan(string, string, int, time.Duration) {}
func (NoopWallHooks) OnCollectionChange(int)                    {}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, string) {}
func (NoopRenderHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {
}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	wallHooks   WallHooks   = NoopWallHooks{}
	renderHooks RenderHooks = NoopRenderHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
	hooksMu     sync.RWMutex
)

// SetWallHooks registers custom wall hooks.
// This should be called once at application startup before any planning.
func SetWallHooks(h WallHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		wallHooks = h
	}
}

// SetRenderHooks registers custom render hooks.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Wall returns the registered wall hooks.
func Wall() WallHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return wallHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	wallHooks = NoopWallHooks{}
	renderHooks = NoopRenderHooks{}
	cacheHooks = NoopCacheHooks{}
}
