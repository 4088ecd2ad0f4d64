// Package cache stores evaluation results between runs.
//
// Evaluating a task is cheap, but batch runs over a full task directory are
// repeated constantly while solutions are being written. The runner in
// [github.com/matzehuels/arcgrid/pkg/pipeline] keys each result by the task
// content and the build version, so unchanged tasks are served from cache and
// any edit to a task file or a new build invalidates its entry.
//
// Three backends implement [Cache]:
//   - [FileCache]: JSON entries under a directory, for CLI use
//   - [RedisCache]: a shared Redis instance, for the HTTP server
//   - [NullCache]: stores nothing, for --no-cache and tests
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the stored value and true, or nil and false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// Keyer builds cache keys.
type Keyer interface {
	// ResultKey returns the key for an evaluation of taskID whose file
	// content hashes to taskHash, produced by the given build version.
	ResultKey(taskID, taskHash, version string) string
}

// DefaultKeyer produces "result:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ResultKey hashes all components so keys have a fixed length.
func (DefaultKeyer) ResultKey(taskID, taskHash, version string) string {
	return hashKey("result", taskID, taskHash, version)
}
