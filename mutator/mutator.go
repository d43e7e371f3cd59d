package mutator

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fabll/core/expr"
	"github.com/fabll/core/graph"
	"github.com/fabll/core/immutable"
	"github.com/fabll/core/internal/trace"
	"github.com/fabll/core/literal"
)

// Mutator is a single solver-pass transaction over a graph (spec §4.4).
// Not safe for concurrent use; a solver pass owns one Mutator at a time.
type Mutator struct {
	logger *slog.Logger

	input    *graph.Graph
	output   *graph.Graph
	realized bool

	// copied maps an input node ID to its copy in output, populated when
	// the output graph is first materialized.
	copied map[uuid.UUID]*graph.Node

	// repr maps a parameter's output node ID to the output node ID of its
	// alias representative, if any (spec §3 `_override_repr`).
	repr map[uuid.UUID]uuid.UUID

	// known maps a representative's output node ID to the literal it has
	// been asserted to be aliased to.
	known map[uuid.UUID]literal.Literal

	// rewritten marks output node IDs produced by Rewrite this pass, so
	// RemoveNode's cascade does not also delete them.
	rewritten map[uuid.UUID]bool

	newNodes     []*graph.Node
	changedNodes map[uuid.UUID]bool
}

// Option configures a Mutator.
type Option func(*Mutator)

// WithLogger attaches a logger used for trace spans.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Mutator) { m.logger = logger }
}

// New creates a Mutator wrapping input. The output graph is not built
// until the first mutating call.
func New(input *graph.Graph, opts ...Option) *Mutator {
	m := &Mutator{
		input:        input,
		copied:       make(map[uuid.UUID]*graph.Node),
		repr:         make(map[uuid.UUID]uuid.UUID),
		known:        make(map[uuid.UUID]literal.Literal),
		rewritten:    make(map[uuid.UUID]bool),
		changedNodes: make(map[uuid.UUID]bool),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Output returns the pass's output graph, materializing it from the
// input on first call.
func (m *Mutator) Output(ctx context.Context) *graph.Graph {
	m.realize(ctx)
	return m.output
}

// NewNodes returns the nodes created during this pass (in output), in
// creation order. Includes nodes realized by the initial copy only if
// they were subsequently rewritten; the bulk copy itself does not count
// as "new".
func (m *Mutator) NewNodes() []*graph.Node {
	return append([]*graph.Node(nil), m.newNodes...)
}

// Changed reports whether node (an output-graph node ID) was created or
// modified during this pass.
func (m *Mutator) Changed(id uuid.UUID) bool {
	return m.changedNodes[id]
}

func (m *Mutator) realize(ctx context.Context) {
	if m.realized {
		return
	}
	m.realized = true
	m.output = graph.New()
	if m.input == nil {
		return
	}

	op := trace.Begin(ctx, m.logger, "fabll.mutator.realize")
	var err error
	defer func() { op.End(err) }()

	snap := m.input.Snapshot()
	for _, n := range snap.Nodes() {
		out := m.output.AddNode(immutable.WrapProperties(n.Attrs().Clone()))
		m.copied[n.ID()] = out
	}
	for _, e := range snap.Edges() {
		src := m.copied[e.Source().ID()]
		dst := m.copied[e.Target().ID()]
		if src == nil || dst == nil {
			continue
		}
		if _, addErr := m.output.AddEdge(ctx, e.Kind(), src, dst, e.Identifier(), e.Attrs()); addErr != nil {
			err = addErr
			return
		}
	}
}

// Resolve returns the output-graph counterpart of an input-graph node,
// following any alias representative override.
func (m *Mutator) Resolve(ctx context.Context, node *graph.Node) graph.BoundNode {
	m.realize(ctx)
	target := node
	if out, ok := m.copied[node.ID()]; ok {
		target = out
	}
	for {
		rep, ok := m.repr[target.ID()]
		if !ok {
			break
		}
		if next, ok := m.copied[rep]; ok {
			target = next
		} else {
			break
		}
	}
	return m.output.Bind(target)
}

func (m *Mutator) markChanged(n *graph.Node) {
	m.changedNodes[n.ID()] = true
}

func (m *Mutator) markNew(n *graph.Node) {
	m.newNodes = append(m.newNodes, n)
	m.markChanged(n)
}

// MarkPredicateTrue copies pred's node with solver_evaluates_to_true set
// to true and returns the new Expression (spec §4.4 mark_predicate_true).
// A no-op (returns pred unchanged) if pred already evaluates true.
func (m *Mutator) MarkPredicateTrue(ctx context.Context, pred expr.Expression) (expr.Expression, error) {
	m.realize(ctx)
	if pred.SolverEvaluatesToTrue() {
		return pred, nil
	}
	attrs := pred.Node().Node().Attrs().Clone()
	attrs["solver_evaluates_to_true"] = true

	node := m.output.AddNode(immutable.WrapProperties(attrs))
	for _, operand := range pred.Operands() {
		resolved := m.Resolve(ctx, operand.Node())
		if _, err := m.output.AddEdge(ctx, graph.EdgeOperand, node, resolved.Node(), "", immutable.Properties{}); err != nil {
			return expr.Expression{}, err
		}
	}
	m.markNew(node)

	next, err := expr.Bind(m.output.Bind(node))
	if err != nil {
		return expr.Expression{}, err
	}
	if removeErr := m.removeNoCascade(ctx, pred.Node().Node()); removeErr != nil {
		return expr.Expression{}, removeErr
	}
	m.rewritten[node.ID()] = true
	return next, nil
}

// Add marks a freshly built node (e.g. a synthesized estimate the
// solver has no prior node to replace) as new output-graph state,
// without removing anything. The caller builds node directly on
// Output(ctx) via the expr/param constructors before calling Add.
func (m *Mutator) Add(ctx context.Context, node graph.BoundNode) {
	m.realize(ctx)
	m.markNew(node.Node())
}

// Rewrite retires old in favor of replacement, which the caller must
// already have built directly on Output (e.g. via expr constructors).
// replacement is marked new and exempt from later removal cascades; old
// is removed without cascading, since replacement is its designated
// successor (spec §4.4 invariant: no node referenced by both old and new
// form).
func (m *Mutator) Rewrite(ctx context.Context, old, replacement graph.BoundNode) error {
	m.realize(ctx)
	resolvedOld := m.Resolve(ctx, old.Node())
	m.rewritten[replacement.Node().ID()] = true
	m.markNew(replacement.Node())
	return m.removeNoCascade(ctx, resolvedOld.Node())
}

// AliasLiteral asserts that the representative of param is lit. Returns
// a *Contradiction if a different, disjoint literal was already
// asserted for that representative.
func (m *Mutator) AliasLiteral(ctx context.Context, param graph.BoundNode, lit literal.Literal) error {
	m.realize(ctx)
	resolved := m.Resolve(ctx, param.Node())
	id := resolved.Node().ID()
	if existing, ok := m.known[id]; ok {
		if !literal.Equal(existing, lit) {
			return &Contradiction{Parameter: resolved, Existing: existing, Asserted: lit}
		}
		return nil
	}
	m.known[id] = lit
	return nil
}

// KnownLiteral returns the literal currently asserted for param's
// representative, if any.
func (m *Mutator) KnownLiteral(ctx context.Context, param graph.BoundNode) (literal.Literal, bool) {
	m.realize(ctx)
	resolved := m.Resolve(ctx, param.Node())
	lit, ok := m.known[resolved.Node().ID()]
	return lit, ok
}

// AliasRepr makes representative the alias representative of node (spec
// §3 `_override_repr`): subsequent Resolve calls on node return
// representative instead.
func (m *Mutator) AliasRepr(ctx context.Context, node, representative graph.BoundNode) {
	m.realize(ctx)
	from := m.Resolve(ctx, node.Node())
	to := m.Resolve(ctx, representative.Node())
	if from.Node().ID() == to.Node().ID() {
		return
	}
	m.repr[from.Node().ID()] = to.Node().ID()
	m.markChanged(from.Node())
}

// Merge redirects every inbound EdgeOperand edge of duplicate onto
// canonical, then removes duplicate without cascading (spec §4.5
// remove_congruent_expressions and the constant-folding algorithms:
// "replace an expression with an equivalent, already-built node"). Unlike
// AliasRepr, which only affects future mutator.Resolve lookups, Merge
// physically rewires the graph so that expr.Expression.Operands sees the
// new target immediately.
func (m *Mutator) Merge(ctx context.Context, duplicate, canonical graph.BoundNode) error {
	m.realize(ctx)
	from := m.Resolve(ctx, duplicate.Node())
	to := m.Resolve(ctx, canonical.Node())
	if from.Node().ID() == to.Node().ID() {
		return nil
	}
	inbound := m.dependents(from.Node())
	for _, src := range inbound {
		if _, err := m.output.AddEdge(ctx, graph.EdgeOperand, src, to.Node(), "", immutable.Properties{}); err != nil {
			return err
		}
	}
	m.markChanged(to.Node())
	return m.removeNoCascade(ctx, from.Node())
}

// RemoveNode deletes node from the output graph, cascading to remove any
// predicate expression that referenced it as an operand, unless that
// predicate was already rewritten this pass (spec §4.4: "removing a node
// removes its dependent predicates unless rewritten").
func (m *Mutator) RemoveNode(ctx context.Context, node graph.BoundNode) error {
	m.realize(ctx)
	resolved := m.Resolve(ctx, node.Node())
	return m.removeCascade(ctx, resolved.Node())
}

func (m *Mutator) removeCascade(ctx context.Context, n *graph.Node) error {
	dependents := m.dependents(n)
	if err := m.removeNoCascade(ctx, n); err != nil {
		return err
	}
	for _, dep := range dependents {
		if m.rewritten[dep.ID()] {
			continue
		}
		if err := m.removeCascade(ctx, dep); err != nil {
			return err
		}
	}
	return nil
}

func (m *Mutator) removeNoCascade(ctx context.Context, n *graph.Node) error {
	if !n.Valid() {
		return nil
	}
	m.markChanged(n)
	return m.output.RemoveNode(ctx, n)
}

// dependents returns every node with an EdgeOperand edge into n.
func (m *Mutator) dependents(n *graph.Node) []*graph.Node {
	kind := graph.EdgeOperand
	var out []*graph.Node
	for edge := range m.output.EdgesOf(n, &kind, graph.In) {
		out = append(out, edge.Source())
	}
	return out
}
