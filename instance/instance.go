package instance

import (
	"context"
	"fmt"

	"github.com/fabll/core/graph"
	"github.com/fabll/core/graph/internal/walk"
	"github.com/fabll/core/immutable"
)

// specializesSlot is the reserved composition identifier a narrower
// instance is attached under when it specializes a broader one (spec
// SPEC_FULL.md "Specialization / narrowing", grounded on fabll.py's
// get_most_specific). It is a normal composition edge; the type graph
// itself has no subtype relation, so narrowing is recorded node-by-node
// as each instance is specialized, not declared on the type.
const specializesSlot = "$specializes"

const (
	pickedSlot     = "$picked"
	attrDescriptor = "descriptor"
)

// Instance is a bound node in the instance graph (spec §3 "instance
// nodes... created by instantiate_node"). It adds no data of its own;
// every method reads or extends the composition subtree the node already
// sits in.
type Instance struct {
	node graph.BoundNode
}

// Bind wraps an already-instantiated node, typically one returned by
// [typegraph.TypeGraph.InstantiateNode].
func Bind(node graph.BoundNode) Instance {
	return Instance{node: node}
}

// Node returns the wrapped bound node.
func (i Instance) Node() graph.BoundNode {
	return i.node
}

// IsZero reports whether i wraps no node.
func (i Instance) IsZero() bool {
	return i.node.IsZero()
}

// Specialize records that narrower replaces i as the most specific bound
// type for this instance (spec SPEC_FULL.md "Specialization / narrowing").
// Call it once per narrowing step; MostSpecific follows the chain to its
// end.
func Specialize(ctx context.Context, i Instance, narrower Instance) error {
	_, err := i.node.Graph().AddEdge(ctx, graph.EdgeComposition, i.node.Node(), narrower.node.Node(), specializesSlot, immutable.Properties{})
	if err != nil {
		return fmt.Errorf("instance: specialize: %w", err)
	}
	return nil
}

// MostSpecific returns the narrowest instance known for this identity:
// i itself, or the end of its $specializes chain if it has been narrowed
// at least once (spec SPEC_FULL.md; used by bus's same-type-on-a-bus
// check, spec §4.6.4).
func (i Instance) MostSpecific() Instance {
	node := i.node
	for {
		children := node.Children(specializesSlot)
		if len(children) == 0 {
			return Instance{node: node}
		}
		node = children[0]
	}
}

// MarkPicked records descriptor (the picker's part identifier) as this
// instance's commit marker, so a later picker pass can detect "already
// decided" parameters without re-deriving supersets (spec SPEC_FULL.md,
// grounded on ato_part.py/picker.py's literal-alias commit semantics).
// It is the picker's job, not MarkPicked's, to also assert the
// literal-alias predicates attach_chosen_part calls for (spec §6).
func (i Instance) MarkPicked(ctx context.Context, descriptor string) error {
	marker := i.node.Graph().AddNode(immutable.WrapProperties(map[string]any{
		attrDescriptor: descriptor,
	}))
	if _, err := i.node.Graph().AddEdge(ctx, graph.EdgeComposition, i.node.Node(), marker, pickedSlot, immutable.Properties{}); err != nil {
		return fmt.Errorf("instance: mark picked: %w", err)
	}
	return nil
}

// Picked returns the descriptor a prior MarkPicked recorded, if any.
func (i Instance) Picked() (string, bool) {
	children := i.node.Children(pickedSlot)
	if len(children) == 0 {
		return "", false
	}
	v, ok := children[0].Node().Attrs().Get(attrDescriptor)
	if !ok {
		return "", false
	}
	return v.String()
}

// Walk performs a deterministic depth-first traversal of i's composition
// subtree, yielding each instance it visits (spec SPEC_FULL.md
// "GetInstanceTree style depth-first instance enumeration", adapting
// [walk.Walk]'s visitor-driven DFS from "composition tree of bound
// nodes" to "composition tree of instances"). Traversal stops as soon as
// yield returns false.
func (i Instance) Walk(yield func(Instance) bool) {
	if i.IsZero() {
		return
	}
	v := &yieldVisitor{yield: yield}
	_ = walk.Walk(context.Background(), i.node, v)
}

var errStopWalk = fmt.Errorf("instance: walk stopped")

type yieldVisitor struct {
	walk.BaseVisitor
	yield func(Instance) bool
}

func (v *yieldVisitor) EnterNode(node graph.BoundNode) error {
	if !v.yield(Instance{node: node}) {
		return errStopWalk
	}
	return nil
}

// IterPickable yields every instance in root's subtree that carries the
// named trait, in the same deterministic depth-first order Walk uses
// (spec §6 "iter_pickable(root) → iter(instance) yields instances with a
// pickable trait in a deterministic topological order"; composition DFS
// is that order, since a child's trait predicates can only be fully
// formed once its own subtree exists).
func IterPickable(root Instance, traitType string) func(yield func(Instance) bool) {
	return func(yield func(Instance) bool) {
		root.Walk(func(inst Instance) bool {
			if _, ok := inst.node.Trait(traitType); ok {
				if !yield(inst) {
					return false
				}
			}
			return true
		})
	}
}
