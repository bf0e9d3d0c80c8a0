package i

import "context"

// MeshCache caches rendered mesh exports across service instances.
type MeshCache interface {
	// Fetch returns the cached payload for key. On a miss it invokes
	// fill under a per-key lock, stores the result and returns it, so
	// concurrent requests for the same key render only once.
	Fetch(ctx context.Context, key string, fill func() ([]byte, error)) ([]byte, error)
}
