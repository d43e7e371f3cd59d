// Package expr implements the solver's algebraic expression graph (spec
// §3, §4.3): nodes tagged with a [Kind] (Add, Multiply, Power, Log, Abs,
// Round, Is, IsSubset, GreaterOrEqual, Intersection, Union, Correlated,
// Not, And, Or), whose operands are graph.EdgeOperand edges to other
// expression nodes, Parameter nodes, or literal leaves.
//
// An Expression is never mutated in place once built — the solver
// replaces or removes expression nodes rather than editing their
// operands, so that an Expression handle taken before a solver pass
// remains a faithful snapshot of the graph at that point (spec §4.4,
// §4.5). Predicate expressions (Is, IsSubset, GreaterOrEqual) carry two
// flags, Constrained and SolverEvaluatesToTrue, set at construction and
// by [mutator.MarkPredicateTrue] respectively — never edited any other
// way.
package expr
