// Package core is an EDA compiler's symbolic core: a type/instance graph
// plus a parameter constraint solver (spec §1 "a backend library, not an
// end-user tool").
//
// # Architecture Overview
//
// The module is organized into tiers with strict dependency ordering:
//
//	Foundation tier (no internal dependencies):
//	  - location: Source positions, spans, and canonical paths
//	  - diag: Structured diagnostics with stable error codes
//	  - immutable: Read-only wrappers for safe data sharing
//	  - graph: The typed node/edge data model (composition, trait,
//	    pointer, operand edges) underlying both type and instance graphs
//
//	Core library tier:
//	  - typegraph: Module/interface type declarations and instantiation
//	  - instance: Thin instance-graph wrapper (specialization, commit
//	    markers, deterministic enumeration)
//	  - literal: Quantity intervals, enum sets, bool sets — a
//	    Parameter's domain knowledge
//	  - param: Parameter nodes, domains, heuristics
//	  - expr: Algebraic expression nodes over parameters
//	  - mutator: Transactional copy-on-write graph rewriter
//	  - solver: The fixed 16-algorithm constraint-propagation pipeline
//	  - bus: Bus-parameter trait resolution across connected interfaces
//
//	Adapter tier:
//	  - adapter/json: Literal on-wire form and solver.Config loading
//
// # Entry Points
//
// Declaring types and instantiating:
//
//	import "github.com/fabll/core/typegraph"
//
//	tg := typegraph.New()
//	// ... declare types via tg's builder ...
//	root, err := tg.InstantiateNode(ctx, gr, rootTypeID)
//
// Constraining and solving:
//
//	import "github.com/fabll/core/param"
//	import "github.com/fabll/core/expr"
//	import "github.com/fabll/core/solver"
//
//	p, err := param.New(gr, "u1.power.voltage", param.NewNumbers(literal.NewUnit("V")))
//	_, err = expr.NewIsSubset(ctx, gr, p.Node(), literal.Single(literal.NewUnit("V"), 3.3), true)
//	result, err := solver.New(solver.DefaultConfig()).Solve(ctx, gr)
//	lit, ok := solver.NewInspect(result).ExtractSuperset(p.Name())
//
// # Subpackages
//
// See the individual package documentation for detailed usage:
//
//   - [github.com/fabll/core/diag]: Structured diagnostics
//   - [github.com/fabll/core/location]: Source location tracking
//   - [github.com/fabll/core/immutable]: Read-only data wrappers
//   - [github.com/fabll/core/graph]: Typed node/edge data model
//   - [github.com/fabll/core/typegraph]: Type declarations and instantiation
//   - [github.com/fabll/core/instance]: Instance-graph wrapper
//   - [github.com/fabll/core/literal]: Value-set literals
//   - [github.com/fabll/core/param]: Parameter nodes and domains
//   - [github.com/fabll/core/expr]: Algebraic expression nodes
//   - [github.com/fabll/core/mutator]: Transactional graph rewriter
//   - [github.com/fabll/core/solver]: Constraint-propagation pipeline
//   - [github.com/fabll/core/bus]: Bus-parameter trait resolution
//   - [github.com/fabll/core/adapter/json]: JSON adapter
package core
