// Package mutator implements the solver's copy-and-modify transaction
// over a graph (spec §4.4). A Mutator wraps an input graph and lazily
// builds an output graph: nothing is copied until the first mutating
// call, at which point the entire input is materialized into the output
// via graph.Graph.Snapshot (the teacher's own notion of a deterministic,
// point-in-time copy), after which every further read and write goes
// through the output.
//
// Expressions in the output graph are never edited in place: Rewrite
// builds a brand-new expression node and retires the old one,
// MarkPredicateTrue copies a predicate node with its
// solver_evaluates_to_true flag set, and RemoveNode deletes a node and
// cascades to remove any predicate that referenced it as an operand,
// unless that predicate has already been rewritten this pass. AliasRepr
// assigns one parameter as another's representative (spec §3
// `_override_repr`) and OpAdd conflicting with previously asserted
// knowledge about a representative surfaces as a
// [mutator.Contradiction].
package mutator
