package solver

import (
	"context"

	"github.com/google/uuid"

	"github.com/fabll/core/expr"
	"github.com/fabll/core/graph"
	"github.com/fabll/core/literal"
	"github.com/fabll/core/mutator"
	"github.com/fabll/core/param"
)

// pass is the working state shared by every algorithm within one
// fixpoint iteration of the canonical sequence. supersets and aliasOf
// are keyed by Parameter.Name rather than node ID because the mutator
// mints fresh node IDs every time it materializes an output graph (one
// per pass); name is the stable identity a parameter keeps across passes
// (spec §3 treats a parameter's declared path as its address).
type pass struct {
	m *mutator.Mutator

	// supersets is the best known superset literal for a parameter,
	// accumulated by merge_intersect_subsets and propagated by
	// transitive_subset / uncorrelated_alias_fold.
	supersets map[string]literal.Literal

	// aliasOf maps a parameter name to the name of its alias
	// representative, mirrored alongside mutator.AliasRepr's node-level
	// bookkeeping so superset knowledge can be propagated across passes.
	aliasOf map[string]string

	changed bool
}

func newPass(m *mutator.Mutator, supersets map[string]literal.Literal, aliasOf map[string]string) *pass {
	return &pass{m: m, supersets: supersets, aliasOf: aliasOf}
}

func (p *pass) markChanged() {
	p.changed = true
}

// expressions returns every Expression node in the pass's output graph,
// in deterministic (snapshot) order.
func (p *pass) expressions(ctx context.Context) []expr.Expression {
	snap := p.m.Output(ctx).Snapshot()
	var out []expr.Expression
	for _, n := range snap.Nodes() {
		bound := p.m.Output(ctx).Bind(n)
		e, err := expr.Bind(bound)
		if err != nil {
			continue
		}
		out = append(out, e)
	}
	return out
}

// parameters returns every Parameter node in the pass's output graph, in
// deterministic (snapshot) order.
func (p *pass) parameters(ctx context.Context) []param.Parameter {
	snap := p.m.Output(ctx).Snapshot()
	var out []param.Parameter
	for _, n := range snap.Nodes() {
		bound := p.m.Output(ctx).Bind(n)
		prm, err := param.Bind(bound)
		if err != nil {
			continue
		}
		out = append(out, prm)
	}
	return out
}

// asParameter reports whether node is a Parameter leaf.
func asParameter(node graph.BoundNode) (param.Parameter, bool) {
	prm, err := param.Bind(node)
	return prm, err == nil
}

// asExpression reports whether node is an Expression node (as opposed to
// a Parameter or a bare Literal leaf without a wrapping kind — every
// Literal leaf IS an Expression of Kind Literal, so this also matches
// literal leaves).
func asExpression(node graph.BoundNode) (expr.Expression, bool) {
	e, err := expr.Bind(node)
	return e, err == nil
}

// order returns id's position in the pass's canonical node order, used to
// pick a deterministic representative when several candidates are
// otherwise equally valid (spec §5: "the solver always picks the one
// with the smallest insertion order"). graph.Node carries no monotonic
// creation counter, so this package uses Graph.Snapshot's deterministic
// (ID-sorted) ordering as the stand-in canonical order: it is fully
// reproducible for a fixed graph, even though it is not literally the
// sequence nodes were created in.
func (p *pass) order(ctx context.Context, id uuid.UUID) int {
	// Recomputed on every call rather than cached: the graph mutates
	// throughout a pass, and a stale index could pick an inconsistent
	// representative between two algorithms.
	for i, n := range p.m.Output(ctx).Snapshot().Nodes() {
		if n.ID() == id {
			return i
		}
	}
	return -1
}

// resolveGroupRepresentative returns name's ultimate alias
// representative within p.aliasOf (path compression is not performed;
// chains are expected to be short since resolveAliasClasses always
// attaches a new member directly to the existing root).
func (p *pass) resolveGroupRepresentative(name string) string {
	seen := map[string]bool{}
	for {
		next, ok := p.aliasOf[name]
		if !ok || seen[next] {
			return name
		}
		seen[name] = true
		name = next
	}
}

// canonical returns the name under which superset knowledge about a
// parameter is stored: its alias class's representative name, so that
// every member of an alias class accumulates onto the same entry
// regardless of which member's constraint supplied the knowledge.
func (p *pass) canonical(name string) string {
	return p.resolveGroupRepresentative(name)
}

// mergeSuperset intersects existing with lit for parameter name,
// returning the ContradictionByLiteral if the result is empty.
func (p *pass) mergeSuperset(ctx context.Context, node graph.BoundNode, name, algorithm string, lit literal.Literal) error {
	existing, ok := p.supersets[name]
	if !ok {
		p.supersets[name] = lit
		p.markChanged()
		return nil
	}
	if literal.Equal(existing, lit) {
		return nil
	}
	merged, err := intersectLiterals(existing, lit)
	if err != nil {
		return err
	}
	if merged.IsEmpty() {
		return &ContradictionByLiteral{Parameter: node, Result: merged, Algorithm: algorithm}
	}
	p.supersets[name] = merged
	p.markChanged()
	return nil
}

func intersectLiterals(a, b literal.Literal) (literal.Literal, error) {
	switch x := a.(type) {
	case literal.QuantityIntervalDisjoint:
		y, ok := b.(literal.QuantityIntervalDisjoint)
		if !ok {
			return nil, literal.ErrDomainMismatch
		}
		return x.Intersect(y)
	case literal.EnumSet:
		y, ok := b.(literal.EnumSet)
		if !ok {
			return nil, literal.ErrDomainMismatch
		}
		return x.Intersect(y)
	case literal.BoolSet:
		y, ok := b.(literal.BoolSet)
		if !ok {
			return nil, literal.ErrDomainMismatch
		}
		return x.Intersect(y), nil
	default:
		return nil, literal.ErrDomainMismatch
	}
}
