package typegraph

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fabll/core/graph"
	"github.com/fabll/core/immutable"
	"github.com/fabll/core/internal/trace"
)

// InstantiateNode builds a fresh composition subtree rooted at a node of
// type id, recursively instantiating every composition slot's children
// and attaching every trait slot's trait node (spec §4.2
// instantiate_node). Link templates declared anywhere in the subtree are
// applied only after the whole subtree exists, since a template's
// Reference may walk through a sibling composition slot that hasn't been
// built yet when the template's owner itself is instantiated.
//
// Returns ErrAbstractInstantiation if the named type is abstract, and
// ErrUnknownType if id is not registered.
func (g *TypeGraph) InstantiateNode(ctx context.Context, gr *graph.Graph, id TypeID) (graph.BoundNode, error) {
	op := trace.Begin(ctx, g.config.logger, "fabll.typegraph.instantiate_node", slog.String("type", id.String()))
	var err error
	defer func() { op.End(err) }()

	root, buildErr := g.buildSubtree(ctx, gr, id)
	if buildErr != nil {
		err = buildErr
		return graph.BoundNode{}, err
	}

	if linkErr := g.applyLinks(ctx, gr, root); linkErr != nil {
		err = linkErr
		return graph.BoundNode{}, err
	}
	return root, nil
}

func (g *TypeGraph) buildSubtree(ctx context.Context, gr *graph.Graph, id TypeID) (graph.BoundNode, error) {
	t, ok := g.byID[id]
	if !ok {
		return graph.BoundNode{}, fmt.Errorf("%w: %s", ErrUnknownType, id)
	}
	if t.IsAbstract() {
		return graph.BoundNode{}, fmt.Errorf("%w: %s", ErrAbstractInstantiation, id)
	}

	attrs := immutable.WrapProperties(map[string]any{"type": id.String()})
	node := gr.AddNode(attrs)
	bound := gr.Bind(node)

	for slot := range t.Compositions() {
		count := 1
		if slot.Many() {
			count = slot.Count()
		}
		for i := 0; i < count; i++ {
			child, err := g.buildSubtree(ctx, gr, slot.TargetID())
			if err != nil {
				return graph.BoundNode{}, fmt.Errorf("instantiating child %q of %s: %w", slot.Identifier(), id, err)
			}
			if _, err := gr.AddEdge(ctx, graph.EdgeComposition, node, child.Node(), slot.Identifier(), immutable.Properties{}); err != nil {
				return graph.BoundNode{}, fmt.Errorf("linking child %q of %s: %w", slot.Identifier(), id, err)
			}
		}
	}

	for slot := range t.Traits() {
		trait, err := g.buildSubtree(ctx, gr, slot.TargetID())
		if err != nil {
			return graph.BoundNode{}, fmt.Errorf("instantiating trait %q of %s: %w", slot.Identifier(), id, err)
		}
		if _, err := gr.AddEdge(ctx, graph.EdgeTrait, node, trait.Node(), slot.Identifier(), immutable.Properties{}); err != nil {
			return graph.BoundNode{}, fmt.Errorf("linking trait %q of %s: %w", slot.Identifier(), id, err)
		}
	}

	return bound, nil
}

func (g *TypeGraph) applyLinks(ctx context.Context, gr *graph.Graph, root graph.BoundNode) error {
	typeOf := func(n graph.BoundNode) (*Type, bool) {
		v, ok := n.Node().Attrs().Get("type")
		if !ok {
			return nil, false
		}
		s, ok := v.String()
		if !ok {
			return nil, false
		}
		for _, t := range g.types {
			if t.ID().String() == s {
				return t, true
			}
		}
		return nil, false
	}

	var walkLinks func(node graph.BoundNode) error
	walkLinks = func(node graph.BoundNode) error {
		t, ok := typeOf(node)
		if !ok {
			return nil
		}
		for link := range t.Links() {
			lhs, lok := resolveReference(node, link.LHS())
			rhs, rok := resolveReference(node, link.RHS())
			if !lok || !rok {
				return fmt.Errorf("typegraph: applying link on %s: unresolved reference", t.ID())
			}
			if _, err := gr.AddEdge(ctx, link.Kind(), lhs.Node(), rhs.Node(), "", immutable.Properties{}); err != nil {
				return fmt.Errorf("typegraph: applying link on %s: %w", t.ID(), err)
			}
		}
		for _, identifier := range node.Compositions() {
			for _, child := range node.Children(identifier) {
				if err := walkLinks(child); err != nil {
					return err
				}
			}
		}
		return nil
	}
	return walkLinks(root)
}

// resolveReference walks a Reference's TraversalSteps starting from root,
// returning the node it lands on (spec §4.2 reference_resolve).
func resolveReference(root graph.BoundNode, ref Reference) (graph.BoundNode, bool) {
	current := root
	for _, step := range ref.Steps() {
		switch step.Kind() {
		case StepParent:
			parent, ok := current.Parent()
			if !ok {
				return graph.BoundNode{}, false
			}
			current = parent
		case StepTrait:
			trait, ok := current.Trait(step.Identifier())
			if !ok {
				return graph.BoundNode{}, false
			}
			current = trait
		default: // StepChild
			children := current.Children(step.Identifier())
			if idx, hasIdx := step.Index(); hasIdx {
				if idx < 0 || idx >= len(children) {
					return graph.BoundNode{}, false
				}
				current = children[idx]
			} else {
				if len(children) == 0 {
					return graph.BoundNode{}, false
				}
				current = children[0]
			}
		}
	}
	return current, true
}
