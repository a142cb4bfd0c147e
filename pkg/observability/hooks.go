// Package observability provides hooks for metrics and tracing around the
// synthesis pipeline.
//
// The package uses a simple hooks pattern: interfaces per event category,
// no-op defaults, and a global registry populated by main at startup. The
// core library stays free of any observability framework dependency while
// backends (OpenTelemetry, Prometheus, plain logging) can plug in.
//
// Libraries emit events through the registry:
//
//	observability.Synthesis().OnCompileStart(ctx, "netconvert")
//	// ... run compiler ...
//	observability.Synthesis().OnCompileComplete(ctx, "netconvert", duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// SynthesisHooks receives events from the description-to-network pipeline.
type SynthesisHooks interface {
	// Extraction events. The provider is the LLM backend name.
	OnExtractStart(ctx context.Context, provider, model string)
	OnExtractComplete(ctx context.Context, provider, model string, duration time.Duration, err error)

	// Plan synthesis events. Backend names the chosen emitter
	// (cross, radial, passthrough).
	OnSynthesizeStart(ctx context.Context, backend string)
	OnSynthesizeComplete(ctx context.Context, backend string, nodes, edges, connections int, duration time.Duration, err error)

	// Compiler events. Tool is netconvert or netgenerate.
	OnCompileStart(ctx context.Context, tool string)
	OnCompileComplete(ctx context.Context, tool string, duration time.Duration, err error)

	// Visualization rendering events.
	OnRenderStart(ctx context.Context, format string)
	OnRenderComplete(ctx context.Context, format string, duration time.Duration, err error)
}

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// NoopSynthesisHooks is a no-op implementation of SynthesisHooks.
type NoopSynthesisHooks struct{}

func (NoopSynthesisHooks) OnExtractStart(context.Context, string, string) {}
func (NoopSynthesisHooks) OnExtractComplete(context.Context, string, string, time.Duration, error) {
}
func (NoopSynthesisHooks) OnSynthesizeStart(context.Context, string) {}
func (NoopSynthesisHooks) OnSynthesizeComplete(context.Context, string, int, int, int, time.Duration, error) {
}
func (NoopSynthesisHooks) OnCompileStart(context.Context, string)                        {}
func (NoopSynthesisHooks) OnCompileComplete(context.Context, string, time.Duration, error) {}
func (NoopSynthesisHooks) OnRenderStart(context.Context, string)                         {}
func (NoopSynthesisHooks) OnRenderComplete(context.Context, string, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

var (
	synthesisHooks SynthesisHooks = NoopSynthesisHooks{}
	cacheHooks     CacheHooks     = NoopCacheHooks{}
	hooksMu        sync.RWMutex
)

// SetSynthesisHooks registers custom synthesis hooks.
// Call once at application startup before any pipeline runs.
func SetSynthesisHooks(h SynthesisHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		synthesisHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// Call once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Synthesis returns the registered synthesis hooks.
func Synthesis() SynthesisHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return synthesisHooks
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
	synthesisHooks = NoopSynthesisHooks{}
	cacheHooks = NoopCacheHooks{}
}
