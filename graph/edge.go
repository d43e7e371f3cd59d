package graph

import (
	"github.com/fabll/core/immutable"
)

// EdgeKind identifies the semantic role an [Edge] plays (spec §3 "Edge
// kinds").
type EdgeKind int

const (
	// EdgeComposition is an ownership edge, parent → child. A child has
	// exactly one composition parent.
	EdgeComposition EdgeKind = iota
	// EdgeTrait attaches a trait node to a host node. A host has at most
	// one trait instance per trait type.
	EdgeTrait
	// EdgePointer is a non-owning reference along a named reference path.
	EdgePointer
	// EdgeOperand links an expression node to one of its operands; the
	// edge's Position is stable and meaningful.
	EdgeOperand
	// EdgeSelf is an auxiliary self-edge used by adjacency queries.
	EdgeSelf
	// EdgeSibling is an auxiliary edge linking nodes that share a
	// composition parent, used by adjacency queries.
	EdgeSibling
)

// String returns the edge kind's name, used in diagnostics.
func (k EdgeKind) String() string {
	switch k {
	case EdgeComposition:
		return "composition"
	case EdgeTrait:
		return "trait"
	case EdgePointer:
		return "pointer"
	case EdgeOperand:
		return "operand"
	case EdgeSelf:
		return "self"
	case EdgeSibling:
		return "sibling"
	default:
		return "unknown"
	}
}

// Direction selects which end of an edge [Graph.EdgesOf] matches against.
type Direction int

const (
	// Out matches edges where the queried node is the source.
	Out Direction = iota
	// In matches edges where the queried node is the target.
	In
	// Both matches edges in either direction.
	Both
)

// Edge is a typed, directed connection between two nodes in a [Graph].
//
// Edge is safe for concurrent read access; edges are immutable once
// created. An edge is retrieved via [Graph.EdgesOf] or [Result.Edges],
// never constructed directly by callers.
type Edge struct {
	kind EdgeKind

	source *Node
	target *Node

	// identifier is the composition attribute name, the trait type name,
	// or the pointer reference-path name, depending on kind. Unused (empty)
	// for Operand/Self/Sibling edges.
	identifier string

	// position is the stable ordinal for Operand edges; it is the
	// insertion order of this edge among the sibling edges sharing the
	// same (source, kind) otherwise.
	position int

	attrs immutable.Properties
}

// Kind returns the edge's semantic role.
func (e *Edge) Kind() EdgeKind {
	if e == nil {
		return EdgeSelf
	}
	return e.kind
}

// Source returns the edge's source node.
func (e *Edge) Source() *Node {
	if e == nil {
		return nil
	}
	return e.source
}

// Target returns the edge's target node.
func (e *Edge) Target() *Node {
	if e == nil {
		return nil
	}
	return e.target
}

// Identifier returns the composition attribute name, trait type name, or
// pointer reference-path name this edge carries. Empty for Operand, Self,
// and Sibling edges.
func (e *Edge) Identifier() string {
	if e == nil {
		return ""
	}
	return e.identifier
}

// Position returns the edge's stable ordinal. For Operand edges this is
// the operand's position among an expression's operands; for other kinds
// it is the insertion order among same-kind edges from the same source.
func (e *Edge) Position() int {
	if e == nil {
		return 0
	}
	return e.position
}

// Attrs returns the edge's attribute bag.
func (e *Edge) Attrs() immutable.Properties {
	if e == nil {
		return immutable.Properties{}
	}
	return e.attrs
}
