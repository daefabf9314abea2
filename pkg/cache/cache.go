// Package cache provides pluggable byte caches for the rendering pipeline.
//
// Laying out and rasterizing a large module is pure but not free, so the
// pipeline caches at three levels: parsed trees keyed by source content,
// layout geometry keyed by tree and settings, and finished artifacts keyed
// by layout and output options. Backends: [FileCache] for CLI usage,
// [RedisCache] for the shared service, [NullCache] to disable caching.
package cache

import (
	"context"
	"time"
)

// Cache lifetimes per pipeline stage. Trees outlive layouts and layouts
// outlive artifacts: the further down the pipeline, the cheaper a recompute.
const (
	TTLTree     = 7 * 24 * time.Hour
	TTLLayout   = 24 * time.Hour
	TTLArtifact = 24 * time.Hour
)

// Cache stores opaque byte values with optional expiration.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	Close() error
}

// LayoutKeyOpts captures everything besides the tree that changes layout
// geometry.
type LayoutKeyOpts struct {
	SettingsHash   string
	HideComments   bool
	HideDocstrings bool
}

// ArtifactKeyOpts captures the output options baked into a rendered artifact.
type ArtifactKeyOpts struct {
	Format   string
	Scale    float64
	Tooltips bool
}

// Keyer generates cache keys for the pipeline stages.
type Keyer interface {
	// TreeKey keys a parsed scope tree by its source content hash.
	TreeKey(sourceHash string) string

	// LayoutKey keys computed layout geometry.
	LayoutKey(treeHash string, opts LayoutKeyOpts) string

	// ArtifactKey keys a rendered artifact.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer generates globally-scoped keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// TreeKey generates a key for a parsed tree.
func (k *DefaultKeyer) TreeKey(sourceHash string) string {
	return hashKey("tree", sourceHash)
}

// LayoutKey generates a key for layout geometry.
func (k *DefaultKeyer) LayoutKey(treeHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", treeHash, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}

var _ Keyer = (*DefaultKeyer)(nil)
