package esbuild

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shrink/internal/core/ports"
)

// NodeID is the unique identifier for the esbuild minifier Graft node.
const NodeID graft.ID = "adapter.minifier"

func init() {
	graft.Register(graft.Node[ports.Minifier]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Minifier, error) {
			return New(), nil
		},
	})
}
