package solver

import (
	"fmt"

	"github.com/fabll/core/expr"
	"github.com/fabll/core/graph"
	"github.com/fabll/core/literal"
)

// ContradictionByLiteral is raised when an expression's operands require
// a literal set that is_empty (spec §7, §4.5 empty_set): e.g. merging
// two IsSubset constraints on the same parameter into a disjoint
// intersection.
type ContradictionByLiteral struct {
	Parameter graph.BoundNode
	Result    literal.Literal
	Algorithm string
}

func (c *ContradictionByLiteral) Error() string {
	return fmt.Sprintf("solver: %s: %s has no admissible value (%s is empty)",
		c.Algorithm, c.Parameter.Node().ID(), c.Result)
}

// PredicateContradiction is raised when two constrained predicates
// cannot simultaneously hold (spec §7): e.g. GreaterOrEqual(p, 10) and
// GreaterOrEqual(10, p) with p strictly inside neither bound, or two Is
// predicates aliasing the same parameter to incompatible literals.
type PredicateContradiction struct {
	First, Second expr.Expression
	Reason        string
}

func (c *PredicateContradiction) Error() string {
	return fmt.Sprintf("solver: predicate contradiction: %s vs %s: %s", c.First, c.Second, c.Reason)
}

// TimedOut is returned (wrapping the best-effort Result) when
// Config.RewriteTimeout elapses between algorithms before the pipeline
// reached a fixpoint.
type TimedOut struct {
	// LastAlgorithm is the name of the last algorithm that completed
	// before the timeout was observed.
	LastAlgorithm string
	// Elapsed is the per-algorithm timing collected up to the timeout,
	// keyed by algorithm name, in the canonical order they ran.
	Elapsed map[string]int64
}

func (t *TimedOut) Error() string {
	return fmt.Sprintf("solver: timed out after %s", t.LastAlgorithm)
}
