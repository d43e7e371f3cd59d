package solver

import (
	"github.com/fabll/core/expr"
	"github.com/fabll/core/graph"
	"github.com/fabll/core/literal"
	"github.com/fabll/core/param"
)

// Inspect is the read-only view of a completed Result a caller queries
// instead of walking Graph directly (spec §4.5 inspection API:
// inspect_get_known_supersets, extract_superset, is_predicate_true,
// assert_any_predicate).
type Inspect struct {
	result *Result
}

// NewInspect wraps result for querying.
func NewInspect(result *Result) *Inspect {
	return &Inspect{result: result}
}

// KnownSupersets returns every parameter name the solve narrowed down,
// paired with its best known superset literal (inspect_get_known_supersets).
func (i *Inspect) KnownSupersets() map[string]literal.Literal {
	out := make(map[string]literal.Literal, len(i.result.Supersets))
	for name, lit := range i.result.Supersets {
		out[name] = lit
	}
	return out
}

// ExtractSuperset returns the superset literal known for the parameter
// named name, if any (extract_superset).
func (i *Inspect) ExtractSuperset(name string) (literal.Literal, bool) {
	lit, ok := i.result.Supersets[name]
	return lit, ok
}

// IsPredicateTrue reports whether pred (looked up in the result graph by
// node ID) was proven by the solver (is_predicate_true).
func (i *Inspect) IsPredicateTrue(pred graph.BoundNode) bool {
	e, err := expr.Bind(i.result.Graph.Bind(pred.Node()))
	if err != nil {
		return false
	}
	return e.SolverEvaluatesToTrue()
}

// AssertAnyPredicate reports whether at least one of preds was proven
// true by the solver (assert_any_predicate); used by callers who offer
// the solver several equally acceptable ways to satisfy a requirement.
func (i *Inspect) AssertAnyPredicate(preds ...graph.BoundNode) bool {
	for _, pred := range preds {
		if i.IsPredicateTrue(pred) {
			return true
		}
	}
	return false
}

// Parameter looks up a parameter by name in the result graph.
func (i *Inspect) Parameter(name string) (param.Parameter, bool) {
	for _, n := range i.result.Graph.Snapshot().Nodes() {
		prm, err := param.Bind(i.result.Graph.Bind(n))
		if err != nil {
			continue
		}
		if prm.Name() == name {
			return prm, true
		}
	}
	return param.Parameter{}, false
}
