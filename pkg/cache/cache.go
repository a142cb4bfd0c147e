// Package cache provides pluggable caching for roadforge.
//
// Two things are cached: parameter extraction results (so repeated
// descriptions don't re-hit the language model API) and rendered
// visualization artifacts. Three backends exist:
//   - file: directory-based cache for normal CLI usage
//   - redis: shared cache for multi-user setups, selected via config
//   - null: caching disabled (--no-cache)
//
// Synthesized plans themselves are never cached; synthesis is cheap,
// deterministic, and strictly per-call.
package cache

import (
	"context"
	"time"
)

// Cache TTLs per entry kind.
const (
	// TTLExtract is how long extraction results are kept. Model output for
	// the same description is stable enough to reuse for a while.
	TTLExtract = 7 * 24 * time.Hour

	// TTLArtifact is how long rendered visualization artifacts are kept.
	TTLArtifact = 24 * time.Hour
)

// Cache is the interface all backends implement.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer generates cache keys. Implementations must be deterministic:
// identical inputs yield identical keys.
type Keyer interface {
	// ExtractKey keys a parameter extraction result by provider, model, and
	// description content.
	ExtractKey(provider, model, description string) string

	// ArtifactKey keys a rendered visualization artifact by the source
	// network file's content hash and the output format.
	ArtifactKey(networkHash, format string) string
}

// DefaultKeyer is the standard key scheme.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ExtractKey generates a key for a parameter extraction result.
func (k *DefaultKeyer) ExtractKey(provider, model, description string) string {
	return hashKey("extract", provider, model, description)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(networkHash, format string) string {
	return hashKey("artifact", networkHash, format)
}

// ScopedKeyer wraps a Keyer with a prefix so separate contexts (e.g. test
// fixtures sharing one cache dir) get isolated namespaces.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// ExtractKey generates a prefixed extraction key.
func (k *ScopedKeyer) ExtractKey(provider, model, description string) string {
	return k.prefix + k.inner.ExtractKey(provider, model, description)
}

// ArtifactKey generates a prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(networkHash, format string) string {
	return k.prefix + k.inner.ArtifactKey(networkHash, format)
}
