package expr

import (
	"context"
	"fmt"

	"github.com/fabll/core/graph"
	"github.com/fabll/core/immutable"
	"github.com/fabll/core/literal"
)

const attrKind = "expr_kind"

// Expression is a node in the algebraic expression graph (spec §3,
// §4.3). It is a thin, stateless view over a graph.BoundNode; Operands
// walks the node's outgoing EdgeOperand edges in Position order.
type Expression struct {
	node graph.BoundNode
}

// Bind views an existing graph.BoundNode as an Expression, failing if
// the node was not built by one of this package's constructors.
func Bind(node graph.BoundNode) (Expression, error) {
	if _, ok := node.Node().Attrs().Get(attrKind); !ok {
		return Expression{}, ErrNotAnExpression
	}
	return Expression{node: node}, nil
}

// Node returns the underlying bound node.
func (e Expression) Node() graph.BoundNode {
	return e.node
}

// Kind returns the expression's operation tag.
func (e Expression) Kind() Kind {
	v, _ := e.node.Node().Attrs().Get(attrKind)
	k, _ := v.Unwrap().(Kind)
	return k
}

// Constrained reports whether this predicate expression has been
// asserted to hold (spec §3 `constrained`). Meaningless for non-
// predicate kinds.
func (e Expression) Constrained() bool {
	v, ok := e.node.Node().Attrs().Get("constrained")
	if !ok {
		return false
	}
	b, _ := v.Bool()
	return b
}

// SolverEvaluatesToTrue reports whether the solver has proven this
// predicate true (spec §3 `_solver_evaluates_to_true`). Meaningless for
// non-predicate kinds.
func (e Expression) SolverEvaluatesToTrue() bool {
	v, ok := e.node.Node().Attrs().Get("solver_evaluates_to_true")
	if !ok {
		return false
	}
	b, _ := v.Bool()
	return b
}

// Literal returns the literal value wrapped by a Literal-kind leaf.
func (e Expression) Literal() (literal.Literal, bool) {
	if e.Kind() != Literal {
		return nil, false
	}
	v, ok := e.node.Node().Attrs().Get("value")
	if !ok {
		return nil, false
	}
	lit, ok := v.Unwrap().(literal.Literal)
	return lit, ok
}

// Operands returns the expression's operand nodes in stable operand
// order. Each may itself be an Expression node, a param.Parameter node,
// or a Literal leaf.
func (e Expression) Operands() []graph.BoundNode {
	kind := graph.EdgeOperand
	var out []graph.BoundNode
	for edge := range e.node.Graph().EdgesOf(e.node.Node(), &kind, graph.Out) {
		out = append(out, e.node.Graph().Bind(edge.Target()))
	}
	return out
}

// operand builds a graph node for an Operand value: if it is already a
// graph.BoundNode (an Expression or Parameter), it is used directly; a
// literal.Literal is wrapped in a fresh Literal leaf node.
func operand(gr *graph.Graph, v any) (*graph.Node, error) {
	switch x := v.(type) {
	case graph.BoundNode:
		return x.Node(), nil
	case Expression:
		return x.node.Node(), nil
	case literal.Literal:
		return newLiteralLeaf(gr, x), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedOperand, v)
	}
}

func newLiteralLeaf(gr *graph.Graph, lit literal.Literal) *graph.Node {
	return gr.AddNode(immutable.WrapProperties(map[string]any{
		attrKind: Literal,
		"value":  lit,
	}))
}

// newNode builds a Kind node in gr with the given operands, linked via
// ordered EdgeOperand edges; extra is merged into the node's attribute
// bag (used for the constrained/solver_evaluates_to_true flags on
// predicate kinds).
func newNode(ctx context.Context, gr *graph.Graph, kind Kind, extra map[string]any, operands ...any) (Expression, error) {
	if len(operands) == 0 {
		return Expression{}, fmt.Errorf("%w: %s", ErrNoOperands, kind)
	}
	attrs := map[string]any{attrKind: kind}
	for k, v := range extra {
		attrs[k] = v
	}
	node := gr.AddNode(immutable.WrapProperties(attrs))
	for i, o := range operands {
		target, err := operand(gr, o)
		if err != nil {
			return Expression{}, fmt.Errorf("building %s operand %d: %w", kind, i, err)
		}
		if _, err := gr.AddEdge(ctx, graph.EdgeOperand, node, target, "", immutable.Properties{}); err != nil {
			return Expression{}, fmt.Errorf("linking %s operand %d: %w", kind, i, err)
		}
	}
	return Expression{node: gr.Bind(node)}, nil
}

// Arithmetic and set-algebra constructors. Each takes two or more
// operands (an Expression, a param.Parameter's graph.BoundNode, or a
// literal.Literal).

func NewAdd(ctx context.Context, gr *graph.Graph, operands ...any) (Expression, error) {
	return newNode(ctx, gr, Add, nil, operands...)
}

func NewMultiply(ctx context.Context, gr *graph.Graph, operands ...any) (Expression, error) {
	return newNode(ctx, gr, Multiply, nil, operands...)
}

func NewPower(ctx context.Context, gr *graph.Graph, base, exponent any) (Expression, error) {
	return newNode(ctx, gr, Power, nil, base, exponent)
}

func NewLog(ctx context.Context, gr *graph.Graph, operand any) (Expression, error) {
	return newNode(ctx, gr, Log, nil, operand)
}

func NewAbs(ctx context.Context, gr *graph.Graph, operand any) (Expression, error) {
	return newNode(ctx, gr, Abs, nil, operand)
}

func NewRound(ctx context.Context, gr *graph.Graph, operand any) (Expression, error) {
	return newNode(ctx, gr, Round, nil, operand)
}

func NewIntersection(ctx context.Context, gr *graph.Graph, operands ...any) (Expression, error) {
	return newNode(ctx, gr, Intersection, nil, operands...)
}

func NewUnion(ctx context.Context, gr *graph.Graph, operands ...any) (Expression, error) {
	return newNode(ctx, gr, Union, nil, operands...)
}

// NewCorrelated wraps operand, marking it as correlated with the other
// operands of whatever expression consumes it (spec §4.5
// uncorrelated_alias_fold).
func NewCorrelated(ctx context.Context, gr *graph.Graph, operand any) (Expression, error) {
	return newNode(ctx, gr, Correlated, nil, operand)
}

func NewNot(ctx context.Context, gr *graph.Graph, operand any) (Expression, error) {
	return newNode(ctx, gr, Not, nil, operand)
}

func NewAnd(ctx context.Context, gr *graph.Graph, operands ...any) (Expression, error) {
	return newNode(ctx, gr, And, nil, operands...)
}

func NewOr(ctx context.Context, gr *graph.Graph, operands ...any) (Expression, error) {
	return newNode(ctx, gr, Or, nil, operands...)
}

// NewLiteral wraps lit as a standalone Literal leaf, for callers that
// need a handle to it directly rather than inline as another
// expression's operand.
func NewLiteral(gr *graph.Graph, lit literal.Literal) Expression {
	return Expression{node: gr.Bind(newLiteralLeaf(gr, lit))}
}

// Predicate constructors. constrained marks the predicate as asserted
// (spec §3 `constrained`); SolverEvaluatesToTrue always starts false and
// is only ever set later, by mutator.MarkPredicateTrue.

func NewIs(ctx context.Context, gr *graph.Graph, lhs, rhs any, constrained bool) (Expression, error) {
	return newNode(ctx, gr, Is, map[string]any{"constrained": constrained, "solver_evaluates_to_true": false}, lhs, rhs)
}

func NewIsSubset(ctx context.Context, gr *graph.Graph, lhs, rhs any, constrained bool) (Expression, error) {
	return newNode(ctx, gr, IsSubset, map[string]any{"constrained": constrained, "solver_evaluates_to_true": false}, lhs, rhs)
}

func NewGreaterOrEqual(ctx context.Context, gr *graph.Graph, lhs, rhs any, constrained bool) (Expression, error) {
	return newNode(ctx, gr, GreaterOrEqual, map[string]any{"constrained": constrained, "solver_evaluates_to_true": false}, lhs, rhs)
}

// String renders the expression as "Kind(op0, op1, ...)".
func (e Expression) String() string {
	s := e.Kind().String() + "("
	for i, o := range e.Operands() {
		if i > 0 {
			s += ", "
		}
		if v, ok := o.Node().Attrs().Get("value"); ok {
			s += fmt.Sprint(v.Unwrap())
			continue
		}
		s += o.Node().ID().String()
	}
	return s + ")"
}
