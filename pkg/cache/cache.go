// Package cache stores rendered artifacts so repeated renders of the
// same scene are served from disk or Redis instead of re-drawn.
//
// A [Cache] is a byte store with TTL expiry. Keys come from a [Keyer],
// which hashes the render parameters that affect output; two requests
// with the same scene, format, and options share one entry.
//
// Backends:
//
//   - [NewFileCache]: hash-sharded files, the CLI and single-node default
//   - [NewRedisCache]: shared cache for multi-instance preview servers
//   - [NewNullCache]: caching disabled
package cache

import (
	"context"
	"time"
)

// Cache stores rendered artifacts by key.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ArtifactKeyOpts are the render parameters that change the produced
// bytes. Anything not listed here must not influence rendering, or
// stale artifacts will be served.
type ArtifactKeyOpts struct {
	Format   string  `json:"format"`
	Width    float64 `json:"width,omitempty"`
	Detailed bool    `json:"detailed,omitempty"`
}

// Keyer generates cache keys for the things drawnet caches.
type Keyer interface {
	// ArtifactKey identifies one rendered artifact of a scene.
	ArtifactKey(scene string, opts ArtifactKeyOpts) string

	// IndexKey identifies the scene catalog listing.
	IndexKey() string
}

// DefaultKeyer is the standard key scheme: a readable prefix naming the
// scene plus a hash of the options.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(scene string, opts ArtifactKeyOpts) string {
	return hashKey("artifact:"+scene, opts)
}

// IndexKey generates the key for the scene catalog.
func (k *DefaultKeyer) IndexKey() string {
	return "index"
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
