package ports

import (
	"context"

	"go.trai.ch/shrink/internal/core/domain"
)

// Minifier is the opaque code-shrinking transform.
//
//go:generate mockgen -source=minifier.go -destination=mocks/mock_minifier.go -package=mocks
type Minifier interface {
	// Minify transforms code using opts and returns the shrunk code.
	// Implementations must be safe for concurrent use.
	Minify(ctx context.Context, code string, opts domain.MinifyOptions) (domain.MinifyOutput, error)
}
