package typegraph

import "errors"

// Sentinel errors returned by TypeGraph builder methods and instantiation
// (spec §4.2, §7). Diagnostics that need a Code/Detail/Span wrap these
// with diag.Issue at the call site; the sentinels themselves carry no
// location.
var (
	// ErrTypeCollision indicates a type identifier is already registered
	// (spec §7 E_TYPE_COLLISION).
	ErrTypeCollision = errors.New("typegraph: type already registered")

	// ErrUnknownType indicates a TypeID has no corresponding registered
	// Type (spec §7 E_UNKNOWN_TYPE).
	ErrUnknownType = errors.New("typegraph: unknown type")

	// ErrAbstractInstantiation indicates instantiate_node was called on an
	// abstract type (spec §7 E_ABSTRACT_INSTANTIATION).
	ErrAbstractInstantiation = errors.New("typegraph: cannot instantiate abstract type")

	// ErrTypeSealed indicates a builder call was made on a type that has
	// already been sealed.
	ErrTypeSealed = errors.New("typegraph: type is sealed")

	// ErrLinkerUnresolved indicates link_imports found no registered type
	// root for a global identifier (spec §7 E_LINKER_UNRESOLVED).
	ErrLinkerUnresolved = errors.New("typegraph: unresolved global identifier")

	// ErrLinkerAmbiguous indicates link_imports found more than one
	// registered type root for a global identifier (spec §7
	// E_LINKER_AMBIGUOUS).
	ErrLinkerAmbiguous = errors.New("typegraph: ambiguous global identifier")

	// ErrRecursiveComposition indicates a composition slot's target-type
	// chain cycles back to itself, which would make instantiate_node
	// recurse forever.
	ErrRecursiveComposition = errors.New("typegraph: recursive composition slot")
)
