// Package walk provides deterministic depth-first traversal of a
// composition subtree using the visitor pattern.
//
// This is an internal package for the graph layer, used by
// instance.Instance.Walk to produce the ordering the egress APIs promise
// (spec §6 iter_pickable's "deterministic topological order").
//
// # Visitor Pattern
//
// The [Visitor] interface defines callbacks for each structural element
// encountered walking composition edges from a root node: EnterNode /
// ExitNode, VisitAttr for each attribute on the node, and
// EnterComposition / ExitComposition bracketing each composition slot's
// children. Embed [BaseVisitor] for no-op defaults.
//
// # Traversal Order
//
// Composition identifiers are visited in lexicographic order; children
// under a (many) slot are visited in insertion order (their stable
// Operand-style position), not sorted by value, since composed children
// have no primary key to sort by in this domain.
//
// # Error Handling
//
// Visitor methods return errors to stop traversal; Walk returns the
// first such error, or the context error if cancelled.
package walk
