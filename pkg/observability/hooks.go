// Package observability provides hooks for metrics, tracing, and logging.
//
// Instrumentation is optional and does not tie the extractor to a specific
// backend. Consumers register hooks at startup to receive events about page
// extraction, cache operations, and page store reads.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, so there are no import
// cycles.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetExtractHooks(&myExtractHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Extract().OnPageStart(ctx, edition, title)
//	// ... extract ...
//	observability.Extract().OnPageComplete(ctx, edition, title, entries, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Extraction Hooks
// =============================================================================

// ExtractHooks receives events from page extraction.
type ExtractHooks interface {
	OnPageStart(ctx context.Context, edition, title string)
	OnPageComplete(ctx context.Context, edition, title string, entries int, duration time.Duration)

	// OnUnprocessedSection records a heading without a known role.
	OnUnprocessedSection(ctx context.Context, edition, title, section string)
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
// Store Hooks
// =============================================================================

// StoreHooks receives events from page store reads.
type StoreHooks interface {
	// OnGet records a lookup by title.
	OnGet(ctx context.Context, backend string, found bool, duration time.Duration)

	// OnError records a failed store operation.
	OnError(ctx context.Context, backend, op string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopExtractHooks is a no-op implementation of ExtractHooks.
type NoopExtractHooks struct{}

func (NoopExtractHooks) OnPageStart(context.Context, string, string) {}
func (NoopExtractHooks) OnPageComplete(context.Context, string, string, int, time.Duration) {
}
func (NoopExtractHooks) OnUnprocessedSection(context.Context, string, string, string) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopStoreHooks is a no-op implementation of StoreHooks.
type NoopStoreHooks struct{}

func (NoopStoreHooks) OnGet(context.Context, string, bool, time.Duration) {}
func (NoopStoreHooks) OnError(context.Context, string, string, error)     {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	extractHooks ExtractHooks = NoopExtractHooks{}
	cacheHooks   CacheHooks   = NoopCacheHooks{}
	storeHooks   StoreHooks   = NoopStoreHooks{}
	hooksMu      sync.RWMutex
)

// SetExtractHooks registers custom extraction hooks.
// This should be called once at application startup before any extraction.
func SetExtractHooks(h ExtractHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		extractHooks = h
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

// SetStoreHooks registers custom page store hooks.
func SetStoreHooks(h StoreHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		storeHooks = h
	}
}

// Extract returns the registered extraction hooks.
func Extract() ExtractHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return extractHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Store returns the registered page store hooks.
func Store() StoreHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return storeHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	extractHooks = NoopExtractHooks{}
	cacheHooks = NoopCacheHooks{}
	storeHooks = NoopStoreHooks{}
}
