package minify

// Phase is the lifecycle position of a Stage within one build.
type Phase int

const (
	// PhaseUnconfigured is the initial phase; only Configure may run.
	PhaseUnconfigured Phase = iota
	// PhaseConfigured is entered by Configure.
	PhaseConfigured
	// PhasePoolCreated is entered when GenerateBundle first acquires the pool.
	PhasePoolCreated
	// PhaseClosed is terminal until Reset.
	PhaseClosed
)

// String returns the string representation of the Phase.
func (p Phase) String() string {
	switch p {
	case PhaseUnconfigured:
		return "unconfigured"
	case PhaseConfigured:
		return "configured"
	case PhasePoolCreated:
		return "pool-created"
	case PhaseClosed:
		return "closed"
	default:
		return "unknown"
	}
}
