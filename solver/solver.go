package solver

import (
	"context"
	"log/slog"
	"time"

	"github.com/fabll/core/graph"
	"github.com/fabll/core/internal/trace"
	"github.com/fabll/core/literal"
	"github.com/fabll/core/mutator"
)

// Result is a completed (or best-effort) solve's outcome.
type Result struct {
	// Graph is the final output graph: the input's structure rewritten by
	// every algorithm that fired, across every pass, until a fixpoint.
	Graph *graph.Graph
	// Passes is how many full canonical-sequence iterations ran.
	Passes int
	// Supersets is the best known superset literal per parameter name,
	// accumulated across every pass.
	Supersets map[string]literal.Literal
	// IntermediateGraphs holds every pass's output graph, oldest first,
	// when Config.KeepIntermediateGraphs is set; nil otherwise.
	IntermediateGraphs []*graph.Graph
}

// Solver runs the canonical rewrite sequence to a fixpoint (spec §4.5,
// §5).
type Solver struct {
	config Config
	logger *slog.Logger
}

// Option configures a Solver.
type Option func(*Solver)

// WithLogger attaches a logger used for per-pass trace spans and, when
// Config.LogSolving is set, per-algorithm change logging.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Solver) { s.logger = logger }
}

// New creates a Solver with the given configuration.
func New(cfg Config, opts ...Option) *Solver {
	s := &Solver{config: cfg}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Solve runs the canonical algorithm sequence against input repeatedly
// until no algorithm reports a change (a fixpoint), a contradiction is
// raised, Config.MaxPasses is reached, or Config.RewriteTimeout elapses.
// On contradiction, Solve returns the partial Result alongside the
// *ContradictionByLiteral or *PredicateContradiction error; on timeout,
// alongside a *TimedOut error.
func (s *Solver) Solve(ctx context.Context, input *graph.Graph) (*Result, error) {
	op := trace.Begin(ctx, s.logger, "fabll.solver.solve")
	var retErr error
	defer func() { op.End(retErr) }()

	result := &Result{Supersets: make(map[string]literal.Literal)}
	aliasOf := make(map[string]string)
	current := input

	deadline := time.Time{}
	if s.config.RewriteTimeout > 0 {
		deadline = time.Now().Add(s.config.RewriteTimeout)
	}
	elapsed := make(map[string]int64)

	for passNum := 0; s.config.MaxPasses == 0 || passNum < s.config.MaxPasses; passNum++ {
		m := mutator.New(current, mutator.WithLogger(s.logger))
		p := newPass(m, result.Supersets, aliasOf)

		for _, alg := range canonicalAlgorithms {
			if !deadline.IsZero() && time.Now().After(deadline) {
				retErr = &TimedOut{LastAlgorithm: lastCompleted(elapsed, canonicalAlgorithms), Elapsed: elapsed}
				result.Graph = m.Output(ctx)
				result.Passes = passNum
				return result, retErr
			}

			start := time.Now()
			err := alg.run(ctx, p)
			elapsed[alg.name] += time.Since(start).Milliseconds()

			if s.config.LogSolving && s.logger != nil {
				s.logger.DebugContext(ctx, "solver algorithm ran", slog.String("algorithm", alg.name), slog.Bool("changed", p.changed))
			}

			if err != nil {
				// err is one of *ContradictionByLiteral, *PredicateContradiction,
				// or *mutator.Contradiction (spec §7); callers use errors.As to
				// distinguish them.
				retErr = err
				result.Graph = m.Output(ctx)
				result.Passes = passNum + 1
				return result, retErr
			}
		}

		current = m.Output(ctx)
		if s.config.KeepIntermediateGraphs {
			result.IntermediateGraphs = append(result.IntermediateGraphs, current)
		}
		result.Passes = passNum + 1
		if !p.changed {
			break
		}
	}

	result.Graph = current
	return result, nil
}

func lastCompleted(elapsed map[string]int64, algorithms []algorithm) string {
	last := ""
	for _, a := range algorithms {
		if _, ok := elapsed[a.name]; ok {
			last = a.name
		}
	}
	return last
}
