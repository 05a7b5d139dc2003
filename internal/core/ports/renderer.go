package ports

import "time"

// Renderer is the abstraction for progress output.
// It decouples telemetry collection from presentation.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// OnPlanEmit is called when the stage has decided which artifacts to minify.
	OnPlanEmit(artifacts []string)

	// OnTaskStart is called when a unit of work begins.
	OnTaskStart(spanID, parentID, name string, startTime time.Time)

	// OnTaskComplete is called when a unit of work finishes.
	// err is nil if successful.
	OnTaskComplete(spanID string, endTime time.Time, err error)

	// Flush writes any buffered output.
	Flush() error
}
