// Package param implements Parameter nodes: named unknowns whose value
// is known only as a set of possibilities (spec §3, §4.3). A Parameter
// has a Domain — Numbers(unit), EnumDomain(enum_type), or Boolean — that
// fixes which literal/expr package a predicate about it may be built
// from, and an optional Heuristic that records how the parameter's
// initial guess, if any, was derived.
//
// A Parameter is a graph.Node like any other; param only adds the
// construction and introspection API. The solver's working set of
// "what is currently known about this parameter" lives in the mutator's
// literal-alias bookkeeping, not on the Parameter node itself — the node
// only ever records its Domain and Heuristic, which are fixed at
// creation and never rewritten by the solver.
package param
