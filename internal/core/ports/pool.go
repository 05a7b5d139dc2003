package ports

import (
	"context"

	"go.trai.ch/shrink/internal/core/domain"
)

//go:generate mockgen -source=pool.go -destination=mocks/mock_pool.go -package=mocks

// TransformPool runs minify jobs off the calling goroutine.
type TransformPool interface {
	// Run executes the transform on a pool worker and waits for its result.
	// Concurrent calls are individually correct and never share options or results.
	Run(ctx context.Context, code string, opts domain.MinifyOptions) (domain.MinifyOutput, error)

	// Stop terminates all workers. Callers must await every Run before calling Stop.
	// Calling Stop more than once is a no-op.
	Stop() error
}

// PoolProvider creates a TransformPool on demand.
// Each Acquire returns a new pool owned by the caller, who must Stop it.
type PoolProvider interface {
	Acquire(ctx context.Context) (TransformPool, error)
}
