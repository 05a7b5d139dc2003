package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shrink/internal/core/ports"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run:       runLoggerNode,
	})
}

// runLoggerNode builds the single stderr logger shared by the config loader,
// the minify stage, and the CLI.
func runLoggerNode(_ context.Context) (ports.Logger, error) {
	return New(), nil
}
