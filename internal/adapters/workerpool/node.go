package workerpool

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shrink/internal/adapters/esbuild"
	"go.trai.ch/shrink/internal/core/ports"
)

// NodeID is the unique identifier for the worker pool provider Graft node.
const NodeID graft.ID = "adapter.workerpool"

func init() {
	graft.Register(graft.Node[*Provider]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{esbuild.NodeID},
		Run: func(ctx context.Context) (*Provider, error) {
			minifier, err := graft.Dep[ports.Minifier](ctx)
			if err != nil {
				return nil, err
			}
			return NewProvider(minifier, 0, nil), nil
		},
	})
}
