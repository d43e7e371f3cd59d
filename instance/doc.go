// Package instance wraps a [graph.BoundNode] produced by
// [typegraph.TypeGraph.InstantiateNode] with the thin set of operations the
// rest of the core needs from an instance graph (spec §3, §6):
// specialization lookup, deterministic depth-first enumeration, and the
// picker's commit marker.
//
// Instance itself carries no state beyond the node it wraps — every
// operation reads or extends the composition tree [typegraph] already
// built, the same way [graph/internal/walk] reads it for diagnostics.
package instance
