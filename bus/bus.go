// Package bus resolves bus-parameter traits (spec §4.6): parameters
// attached to a module interface whose semantics span every interface
// electrically connected to it.
package bus

import (
	"context"
	"fmt"
	"sort"

	"github.com/fabll/core/bus/internal/connectivity"
	"github.com/fabll/core/expr"
	"github.com/fabll/core/graph"
	"github.com/fabll/core/immutable"
	"github.com/fabll/core/param"
)

const (
	attrKind          = "kind"
	kindInterface     = "bus_interface"
	attrInterfaceType = "interface_type"
	attrRole          = "role"
)

// Strategy is a bus parameter's resolution strategy (spec §4.6).
type Strategy int

const (
	// Alias constrains every connected interface's same-named parameter
	// Is equal to one representative.
	Alias Strategy = iota
	// Sum constrains the total drawn by sink interfaces to never exceed
	// the total supplied by source interfaces: Σ sinks ≤ Σ sources.
	Sum
)

// Role distinguishes a Sum parameter's sink members from its source
// members; meaningless for Alias.
type Role int

const (
	RoleUnspecified Role = iota
	RoleSource
	RoleSink
)

// Spec names one bus parameter to resolve and the strategy to resolve it
// with (spec §4.6 "alias" / "sum").
type Spec struct {
	Name     string
	Strategy Strategy
}

// NewInterface creates a bus-member node of the declared interface type.
// Resolve's same-type enforcement (spec §4.6.4) compares this type name
// across every interface on a bus.
func NewInterface(gr *graph.Graph, interfaceType string) graph.BoundNode {
	node := gr.AddNode(immutable.WrapProperties(map[string]any{
		attrKind:          kindInterface,
		attrInterfaceType: interfaceType,
	}))
	return gr.Bind(node)
}

// InterfaceType returns iface's declared interface type, if it is a bus
// interface node.
func InterfaceType(iface graph.BoundNode) (string, bool) {
	v, ok := iface.Node().Attrs().Get(attrInterfaceType)
	if !ok {
		return "", false
	}
	return v.String()
}

// AttachParameter composes prm under iface as a slot named slotName — the
// name Spec.Name matches against, independent of prm's own declared
// (usually fully-qualified) Name — tagged with role (meaningful for Sum
// specs; pass RoleUnspecified for Alias specs).
func AttachParameter(ctx context.Context, iface graph.BoundNode, slotName string, prm param.Parameter, role Role) error {
	_, err := iface.Graph().AddEdge(ctx, graph.EdgeComposition, iface.Node(), prm.Node().Node(), slotName,
		immutable.WrapProperties(map[string]any{attrRole: role}))
	return err
}

// Connect records that a and b sit on the same electrical bus (spec §4.6
// "connected-to relation is reflexive, symmetric, transitive over
// `connected` edges"). Call once per physical connection; Resolve follows
// the edge in either direction, so a and b are interchangeable.
func Connect(ctx context.Context, a, b graph.BoundNode) error {
	_, err := a.Graph().AddEdge(ctx, graph.EdgePointer, a.Node(), b.Node(), connectivity.ConnectedRef, immutable.Properties{})
	return err
}

// parameterOn returns the Parameter iface attached under name, if any.
func parameterOn(iface graph.BoundNode, name string) (param.Parameter, Role, bool) {
	for _, child := range iface.Children(name) {
		prm, err := param.Bind(child)
		if err != nil {
			continue
		}
		role := RoleUnspecified
		if v, ok := roleAttr(iface, name); ok {
			role = v
		}
		return prm, role, true
	}
	return param.Parameter{}, RoleUnspecified, false
}

func roleAttr(iface graph.BoundNode, identifier string) (Role, bool) {
	kind := graph.EdgeComposition
	for _, e := range iface.Graph().EdgesOf(iface.Node(), &kind, graph.Out) {
		if e.Identifier() != identifier {
			continue
		}
		v, ok := e.Attrs().Get(attrRole)
		if !ok {
			return RoleUnspecified, false
		}
		r, ok := v.Unwrap().(Role)
		return r, ok
	}
	return RoleUnspecified, false
}

// Resolve groups interfaces into electrical buses by connectivity, then for
// every bus and every Spec asserts the predicate(s) that spec's Strategy
// calls for (spec §4.6 steps 1-4), returning every predicate it created so
// the caller can feed them to the solver. A bus whose members declare more
// than one interface_type fails with ErrBusSpecializationUnsupported
// (spec §4.6.4, §9: bus specialization is an open question this package
// declines to guess at).
func Resolve(ctx context.Context, gr *graph.Graph, interfaces []graph.BoundNode, specs []Spec) ([]expr.Expression, error) {
	buses := connectivity.Classes(gr, interfaces)

	var predicates []expr.Expression
	for _, members := range buses {
		if err := enforceSameType(members); err != nil {
			return nil, err
		}
		for _, spec := range specs {
			preds, err := resolveSpec(ctx, gr, members, spec)
			if err != nil {
				return nil, err
			}
			predicates = append(predicates, preds...)
		}
	}
	return predicates, nil
}

func enforceSameType(members []graph.BoundNode) error {
	var want string
	var haveWant bool
	for _, m := range members {
		t, ok := InterfaceType(m)
		if !ok {
			continue
		}
		if !haveWant {
			want, haveWant = t, true
			continue
		}
		if t != want {
			return fmt.Errorf("%w: %s vs %s", ErrBusSpecializationUnsupported, want, t)
		}
	}
	return nil
}

func resolveSpec(ctx context.Context, gr *graph.Graph, members []graph.BoundNode, spec Spec) ([]expr.Expression, error) {
	switch spec.Strategy {
	case Alias:
		return resolveAlias(ctx, gr, members, spec.Name)
	case Sum:
		return resolveSum(ctx, gr, members, spec.Name)
	default:
		return nil, fmt.Errorf("bus: unknown strategy %d for %s", spec.Strategy, spec.Name)
	}
}

// resolveAlias picks the first (by node-ID order, for determinism) member
// carrying spec.Name as the bus's representative, and asserts every other
// member's same-named parameter Is equal to it.
func resolveAlias(ctx context.Context, gr *graph.Graph, members []graph.BoundNode, name string) ([]expr.Expression, error) {
	carriers := carriersOf(members, name)
	if len(carriers) == 0 {
		return nil, nil
	}
	rep := carriers[0]
	var preds []expr.Expression
	for _, other := range carriers[1:] {
		pred, err := expr.NewIs(ctx, gr, other.Node(), rep.Node(), true)
		if err != nil {
			return nil, err
		}
		preds = append(preds, pred)
	}
	return preds, nil
}

// resolveSum partitions spec.Name's carriers by the Role AttachParameter
// recorded, and asserts Σ sinks ≤ Σ sources as a single GreaterOrEqual
// predicate over two Add expressions (or a direct comparison when only one
// term sits on each side).
func resolveSum(ctx context.Context, gr *graph.Graph, members []graph.BoundNode, name string) ([]expr.Expression, error) {
	var sinks, sources []param.Parameter
	for _, m := range members {
		prm, role, ok := parameterOn(m, name)
		if !ok {
			continue
		}
		switch role {
		case RoleSink:
			sinks = append(sinks, prm)
		case RoleSource:
			sources = append(sources, prm)
		}
	}
	if len(sinks) == 0 || len(sources) == 0 {
		return nil, nil
	}

	sinkTotal, err := sumOf(ctx, gr, sinks)
	if err != nil {
		return nil, err
	}
	sourceTotal, err := sumOf(ctx, gr, sources)
	if err != nil {
		return nil, err
	}
	pred, err := expr.NewGreaterOrEqual(ctx, gr, sourceTotal, sinkTotal, true)
	if err != nil {
		return nil, err
	}
	return []expr.Expression{pred}, nil
}

func sumOf(ctx context.Context, gr *graph.Graph, prms []param.Parameter) (any, error) {
	if len(prms) == 1 {
		return prms[0].Node(), nil
	}
	operands := make([]any, len(prms))
	for i, prm := range prms {
		operands[i] = prm.Node()
	}
	return expr.NewAdd(ctx, gr, operands...)
}

// carriersOf returns the members carrying a parameter named name, ordered
// deterministically by node ID so Resolve always picks the same alias
// representative for a given input.
func carriersOf(members []graph.BoundNode, name string) []param.Parameter {
	type entry struct {
		id  string
		prm param.Parameter
	}
	var entries []entry
	for _, m := range members {
		prm, _, ok := parameterOn(m, name)
		if !ok {
			continue
		}
		entries = append(entries, entry{id: prm.Node().Node().ID().String(), prm: prm})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].id < entries[j].id })
	out := make([]param.Parameter, len(entries))
	for i, e := range entries {
		out[i] = e.prm
	}
	return out
}
