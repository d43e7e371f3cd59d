// Package graph implements the untyped directed multigraph that underlies
// both the type graph and the instance graph (see the TypeGraph vs.
// instance graph distinction in the package docs of typegraph and
// instance).
//
// A [Graph] holds [Node] values with stable identity and typed [Edge]
// values. Six edge kinds carry the semantics every higher layer builds
// on:
//
//   - Composition: ownership, parent → child. A child has exactly one
//     composition parent; the composition forest has no cycles.
//   - Trait: attaches a trait node to a host node. A host has at most one
//     trait instance per trait type.
//   - Pointer: a non-owning reference from a source node to a target node
//     along a named reference path.
//   - Operand: links an expression node to one of its operands, in stable
//     ordered position.
//   - Self / Sibling: auxiliary edges used by adjacency queries that do
//     not fit the owning/pointing/operand shapes above.
//
// The graph itself carries no notion of "type", "parameter", or
// "expression" — those meanings are layered on top by the typegraph,
// instance, param, and expr packages. Keeping storage, locking, and
// deterministic iteration in one untyped place avoids duplicating them
// across every layer that needs a graph.
//
// # Thread Safety
//
// [Graph] is safe for concurrent use. [Graph.AddNode] and [Graph.AddEdge]
// may be called concurrently; a [Result] returned by [Graph.Snapshot] is
// an immutable point-in-time copy, safe for concurrent reads.
//
// # Ordering Guarantees
//
// Edge iteration via [Graph.EdgesOf] is in insertion order within each
// direction and kind, with directions and kinds visited in a fixed order,
// so solver output built by walking the graph is reproducible. [Graph.Snapshot]
// additionally produces lexicographically sorted slices for callers that
// need a canonical ordering independent of insertion order.
package graph
