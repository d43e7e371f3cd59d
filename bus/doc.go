// Package bus resolves bus-parameter traits (spec §4.6): a parameter
// attached to a module interface whose semantics span every interface
// electrically connected to it.
//
// Callers build bus interface nodes with [NewInterface], attach each
// interface's parameters with [AttachParameter], and record electrical
// connections with [Connect]. [Resolve] then groups the interfaces into
// electrical buses (bus/internal/connectivity's transitive closure over
// "connected" edges), enforces that every interface on a bus declares the
// same interface type ([ErrBusSpecializationUnsupported] otherwise), and
// asserts the predicate each [Spec] calls for — an Is chain to one
// representative for [Alias], or a GreaterOrEqual of two Add sums for
// [Sum] — leaving the solver to actually close them.
package bus
