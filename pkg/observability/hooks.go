// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about task evaluation, cache lookups, and API requests.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnEvaluateStart(ctx, taskID)
//	// ... run the solver ...
//	observability.Pipeline().OnEvaluateComplete(ctx, taskID, correct, known, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from task evaluation.
type PipelineHooks interface {
	// Single task events. correct and known count test and train pairs
	// whose expected output is known.
	OnEvaluateStart(ctx context.Context, taskID string)
	OnEvaluateComplete(ctx context.Context, taskID string, correct, known int, duration time.Duration, err error)

	// Batch events
	OnBatchStart(ctx context.Context, runID string, tasks int)
	OnBatchComplete(ctx context.Context, runID string, solved, evaluated int, duration time.Duration)
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
// Server Hooks
// =============================================================================

// ServerHooks receives events from the HTTP API.
type ServerHooks interface {
	// OnRequest records an incoming request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records a completed response.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnEvaluateStart(context.Context, string) {}
func (NoopPipelineHooks) OnEvaluateComplete(context.Context, string, int, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnBatchStart(context.Context, string, int)                        {}
func (NoopPipelineHooks) OnBatchComplete(context.Context, string, int, int, time.Duration) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopServerHooks is a no-op implementation of ServerHooks.
type NoopServerHooks struct{}

func (NoopServerHooks) OnRequest(context.Context, string, string)                      {}
func (NoopServerHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

// slot holds one registered hook implementation.
type slot[T any] struct {
	mu   sync.RWMutex
	hook T
	noop T
}

func (s *slot[T]) get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hook
}

func (s *slot[T]) set(h T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hook = h
}

func (s *slot[T]) reset() { s.set(s.noop) }

var (
	pipelineSlot = &slot[PipelineHooks]{hook: NoopPipelineHooks{}, noop: NoopPipelineHooks{}}
	cacheSlot    = &slot[CacheHooks]{hook: NoopCacheHooks{}, noop: NoopCacheHooks{}}
	serverSlot   = &slot[ServerHooks]{hook: NoopServerHooks{}, noop: NoopServerHooks{}}
)

// SetPipelineHooks registers pipeline hooks. Call it once at startup, before
// any evaluation; nil is ignored.
func SetPipelineHooks(h PipelineHooks) {
	if h != nil {
		pipelineSlot.set(h)
	}
}

// SetCacheHooks registers cache hooks; nil is ignored.
func SetCacheHooks(h CacheHooks) {
	if h != nil {
		cacheSlot.set(h)
	}
}

// SetServerHooks registers server hooks; nil is ignored.
func SetServerHooks(h ServerHooks) {
	if h != nil {
		serverSlot.set(h)
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks { return pipelineSlot.get() }

// Cache returns the registered cache hooks.
func Cache() CacheHooks { return cacheSlot.get() }

// Server returns the registered server hooks.
func Server() ServerHooks { return serverSlot.get() }

// Reset restores all hooks to their no-op defaults. Tests use it to undo
// registrations.
func Reset() {
	pipelineSlot.reset()
	cacheSlot.reset()
	serverSlot.reset()
}
