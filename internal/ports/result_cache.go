package ports

import (
	"context"

	"route-optimization-service/internal/domain"
)

// Port: a cache of optimization results keyed by a digest of the
// engine input. The engine is deterministic, so a hit can be served
// without recomputation. Keys are expected to be consistent (e.g.,
// already hashed and normalized) by the caller.
type ResultCache interface {
	// Return the cached result for key, or ok=false on a miss.
	Get(ctx context.Context, key string) (result *domain.OptimizationResult, ok bool, err error)

	// Store a result under key. Implementations may bound retention
	// with a TTL.
	Put(ctx context.Context, key string, result *domain.OptimizationResult) error
}
