// Package solver implements the parameter constraint solver's rewrite
// pipeline (spec §4.5): a fixed, canonically ordered sequence of
// rewrite algorithms run to a fixpoint (or until a contradiction or
// timeout), each expressed as a [mutator.Mutator] pass over the
// expression graph built by [expr] and [param].
//
// Solve runs single-threaded and cooperative (spec §5): algorithms
// always run in the same canonical order, and within an algorithm,
// iteration is in graph insertion order, so two solves over the same
// input graph produce byte-identical results. When a fixed-point
// decision must pick a representative among several equally valid
// candidates (e.g. which parameter in an alias class becomes the
// representative), the solver always picks the one with the smallest
// insertion order.
//
// Inspect exposes the read-only query API (inspect_get_known_supersets,
// extract_superset, is_predicate_true, assert_any_predicate) a caller
// uses to read the solver's conclusions without mutating the graph
// directly; Fork starts a speculative sub-solve whose mutations are
// discarded unless the caller commits them.
package solver
