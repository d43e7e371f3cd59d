package param

import (
	"fmt"

	"github.com/fabll/core/graph"
	"github.com/fabll/core/immutable"
	"github.com/fabll/core/literal"
)

const attrKind = "kind"
const kindParameter = "parameter"

// Parameter is a named unknown with a fixed Domain (spec §3). It is a
// thin, stateless view over a graph.BoundNode; all of its fields are set
// once at construction and never rewritten in place — the solver's
// knowledge about a parameter's current value lives elsewhere (in the
// mutator's alias bookkeeping), never on the node itself, so that a
// Parameter handle remains valid and meaningful across solver passes.
type Parameter struct {
	node graph.BoundNode
}

type config struct {
	heuristic Heuristic
	tolerance float64
	guess     literal.Literal
}

// Option configures Parameter construction.
type Option func(*config)

// WithHeuristic attaches a heuristic to the parameter's initial guess.
func WithHeuristic(h Heuristic) Option {
	return func(c *config) { c.heuristic = h }
}

// WithGuess attaches an initial guess literal, used by heuristics Guess,
// ToleranceGuess, and SoftSet.
func WithGuess(lit literal.Literal) Option {
	return func(c *config) { c.guess = lit }
}

// WithTolerance sets the tolerance fraction for a ToleranceGuess
// heuristic (spec §4.5 upper_estimation_of_expressions_with_subsets).
func WithTolerance(fraction float64) Option {
	return func(c *config) { c.tolerance = fraction }
}

// New creates a Parameter node with the given name and domain in gr.
func New(gr *graph.Graph, name string, domain Domain, opts ...Option) (Parameter, error) {
	if name == "" {
		return Parameter{}, ErrEmptyName
	}
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	attrs := map[string]any{
		attrKind:      kindParameter,
		"name":        name,
		"domain_kind": domain.kind,
		"heuristic":   cfg.heuristic,
		"tolerance":   cfg.tolerance,
	}
	switch domain.kind {
	case Numbers:
		attrs["unit"] = domain.unit.Symbol()
	case EnumDomain:
		attrs["enum_type"] = domain.enumType
	}
	if cfg.guess != nil {
		attrs["guess"] = cfg.guess
	}

	node := gr.AddNode(immutable.WrapProperties(attrs))
	return Parameter{node: gr.Bind(node)}, nil
}

// Bind views an existing graph.BoundNode as a Parameter, failing if the
// node was not created by New.
func Bind(node graph.BoundNode) (Parameter, error) {
	v, ok := node.Node().Attrs().Get(attrKind)
	if !ok {
		return Parameter{}, ErrNotAParameter
	}
	s, ok := v.String()
	if !ok || s != kindParameter {
		return Parameter{}, ErrNotAParameter
	}
	return Parameter{node: node}, nil
}

// Node returns the underlying bound node.
func (p Parameter) Node() graph.BoundNode {
	return p.node
}

// Name returns the parameter's declared name.
func (p Parameter) Name() string {
	v, _ := p.node.Node().Attrs().Get("name")
	s, _ := v.String()
	return s
}

// Domain reconstructs the parameter's Domain from its node attributes.
func (p Parameter) Domain() Domain {
	v, _ := p.node.Node().Attrs().Get("domain_kind")
	kind, _ := v.Unwrap().(Kind)
	switch kind {
	case Numbers:
		uv, _ := p.node.Node().Attrs().Get("unit")
		symbol, _ := uv.String()
		return NewNumbers(literal.NewUnit(symbol))
	case EnumDomain:
		ev, _ := p.node.Node().Attrs().Get("enum_type")
		enumType, _ := ev.String()
		return NewEnumDomain(enumType)
	default:
		return NewBoolean()
	}
}

// Heuristic returns the parameter's declared heuristic, if any.
func (p Parameter) Heuristic() Heuristic {
	v, _ := p.node.Node().Attrs().Get("heuristic")
	h, _ := v.Unwrap().(Heuristic)
	return h
}

// Tolerance returns the parameter's tolerance fraction, meaningful only
// when Heuristic is ToleranceGuess.
func (p Parameter) Tolerance() float64 {
	v, _ := p.node.Node().Attrs().Get("tolerance")
	f, _ := v.Float()
	return f
}

// Guess returns the parameter's initial guess literal, if any.
func (p Parameter) Guess() (literal.Literal, bool) {
	v, ok := p.node.Node().Attrs().Get("guess")
	if !ok {
		return nil, false
	}
	lit, ok := v.Unwrap().(literal.Literal)
	return lit, ok
}

// String renders the parameter as "name: Domain".
func (p Parameter) String() string {
	return fmt.Sprintf("%s: %s", p.Name(), p.Domain().Kind())
}
