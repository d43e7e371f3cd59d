package graph

import (
	"github.com/google/uuid"

	"github.com/fabll/core/immutable"
)

// Node is an opaque, identity-bearing vertex in a [Graph].
//
// A Node carries no domain meaning by itself; the typegraph and instance
// packages attach meaning to a Node through the edges connected to it
// (Composition parent, Trait attachments, the type a node instantiates)
// and through an attribute bag carried alongside it.
//
// Node identity survives mutation: [Graph.RemoveNode] marks a Node
// invalid rather than reusing its ID, so a stale handle is detectable
// instead of silently resolving to an unrelated node.
type Node struct {
	id      uuid.UUID
	attrs   immutable.Properties
	invalid bool
}

// ID returns the node's stable identity.
func (n *Node) ID() uuid.UUID {
	if n == nil {
		return uuid.Nil
	}
	return n.id
}

// Attrs returns the node's attribute bag, as passed to [Graph.AddNode].
func (n *Node) Attrs() immutable.Properties {
	if n == nil {
		return immutable.Properties{}
	}
	return n.attrs
}

// Valid reports whether the node has not been removed from its graph.
func (n *Node) Valid() bool {
	return n != nil && !n.invalid
}

// BoundNode is a [Node] handle scoped to a particular [Graph] view.
//
// Higher layers (instance, typegraph) hold a BoundNode rather than a bare
// Node so that navigation methods (Parent, Children, Traverse) can resolve
// edges without every caller threading a *Graph through every call.
type BoundNode struct {
	g    *Graph
	node *Node
}

// Node returns the underlying node.
func (b BoundNode) Node() *Node { return b.node }

// Graph returns the graph this handle is bound to.
func (b BoundNode) Graph() *Graph { return b.g }

// IsZero reports whether this is the zero BoundNode (no graph, no node).
func (b BoundNode) IsZero() bool { return b.g == nil && b.node == nil }

// Parent returns the node's single composition parent, if any.
//
// A node's composition-inbound edge is O(1): the graph keeps a direct
// parent index alongside the general adjacency lists (spec §4.1, "A
// node's parent edge (composition inbound) is O(1)").
func (b BoundNode) Parent() (BoundNode, bool) {
	if b.g == nil || b.node == nil {
		return BoundNode{}, false
	}
	edge, ok := b.g.parentOf(b.node)
	if !ok {
		return BoundNode{}, false
	}
	return b.g.Bind(edge.source), true
}

// Children returns the composition children under the given identifier,
// in insertion order. For a (one) slot this returns at most one node; for
// a (many) slot it returns the ordered sequence.
func (b BoundNode) Children(identifier string) []BoundNode {
	if b.g == nil || b.node == nil {
		return nil
	}
	var out []BoundNode
	for _, e := range b.g.edgesFrom(b.node, EdgeComposition) {
		if e.identifier == identifier {
			out = append(out, b.g.Bind(e.target))
		}
	}
	return out
}

// Trait returns the trait node attached to this host under the given
// trait type name, if any.
func (b BoundNode) Trait(traitTypeName string) (BoundNode, bool) {
	if b.g == nil || b.node == nil {
		return BoundNode{}, false
	}
	for _, e := range b.g.edgesFrom(b.node, EdgeTrait) {
		if e.identifier == traitTypeName {
			return b.g.Bind(e.target), true
		}
	}
	return BoundNode{}, false
}

// Compositions returns the sorted, distinct composition identifiers used
// by this node's children, for deterministic composition-tree traversal.
func (b BoundNode) Compositions() []string {
	if b.g == nil || b.node == nil {
		return nil
	}
	return b.g.compositionIdentifiers(b.node)
}

// Traverse dereferences a pointer edge with the given reference-path
// identifier, returning the node it points to.
func (b BoundNode) Traverse(identifier string) (BoundNode, bool) {
	if b.g == nil || b.node == nil {
		return BoundNode{}, false
	}
	for _, e := range b.g.edgesFrom(b.node, EdgePointer) {
		if e.identifier == identifier {
			return b.g.Bind(e.target), true
		}
	}
	return BoundNode{}, false
}
