package solver

import "time"

// Config controls a solve's logging, diagnostics, and resource limits
// (spec §5 SolverConfig).
type Config struct {
	// LogSolving enables per-algorithm debug logging of what changed.
	LogSolving bool
	// KeepIntermediateGraphs retains every pass's output graph in
	// Result.IntermediateGraphs instead of only the final one.
	KeepIntermediateGraphs bool
	// RewriteTimeout bounds the whole solve's wall-clock time. Zero means
	// no timeout. Checked between algorithms, never mid-algorithm, so a
	// timeout always lands on an algorithm boundary.
	RewriteTimeout time.Duration
	// MaxPasses bounds how many times the full canonical algorithm
	// sequence may repeat before the solve gives up and returns its best
	// effort. Zero means unlimited (bounded only by RewriteTimeout).
	MaxPasses int
}

// DefaultConfig returns the solver's defaults: no logging, no
// intermediate-graph retention, no timeout, and a generous pass cap that
// still bounds runaway non-convergence.
func DefaultConfig() Config {
	return Config{MaxPasses: 100}
}
