package graph

import (
	"errors"
	"fmt"
)

// Error sentinels for internal graph failures. These indicate programmer
// errors or structural invariant violations, not data issues — data
// issues belong in a diag.Result returned by higher layers (typegraph,
// instance, solver), mirroring the teacher's split between error returns
// (precondition failures) and diag.Result (recoverable issues).
var (
	// ErrInternal is the base error for internal graph failures.
	ErrInternal = errors.New("internal graph failure")

	// ErrNilGraph indicates a method was called on a nil *Graph receiver.
	ErrNilGraph = fmt.Errorf("%w: nil *Graph receiver", ErrInternal)

	// ErrNodeInvalid indicates an operation targeted a node that has
	// already been removed from the graph.
	ErrNodeInvalid = fmt.Errorf("%w: node has been removed", ErrInternal)

	// ErrForeignNode indicates a node handle was not minted by this graph.
	ErrForeignNode = fmt.Errorf("%w: node does not belong to this graph", ErrInternal)

	// ErrEdgeKindMismatch indicates an edge's endpoints disagree with what
	// its kind requires (spec §4.1 "edge types disagree with endpoint
	// kinds").
	ErrEdgeKindMismatch = fmt.Errorf("%w: edge kind incompatible with endpoint", ErrInternal)

	// ErrDuplicateIdentifier indicates two composition or trait edges from
	// the same source used the same identifier where the slot forbids it
	// (spec §4.1 "duplicate identifiers in the same composition parent").
	ErrDuplicateIdentifier = fmt.Errorf("%w: duplicate identifier under composition parent", ErrInternal)

	// ErrMultipleParents indicates an attempt to give a node a second
	// composition parent, violating the composition-forest invariant
	// (spec §3 "a child has exactly one composition parent").
	ErrMultipleParents = fmt.Errorf("%w: node already has a composition parent", ErrInternal)
)
