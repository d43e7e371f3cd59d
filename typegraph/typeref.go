package typegraph

import (
	"github.com/fabll/core/location"
)

// TypeRef is a syntactic reference to a type root, preserving the module
// qualifier and type name as written by the caller of the builder API
// (spec §4.2). It is used for diagnostics before the reference has been
// resolved against a registered type; for semantic equality once resolved,
// use TypeID.
type TypeRef struct {
	qualifier string        // module alias, empty for locally-registered types
	name      string        // type name
	span      location.Span // builder call site, for diagnostics
}

// NewTypeRef creates a TypeRef with the given qualifier, name, and span.
func NewTypeRef(qualifier, name string, span location.Span) TypeRef {
	return TypeRef{qualifier: qualifier, name: name, span: span}
}

// LocalTypeRef creates a TypeRef for a type registered in the same module.
func LocalTypeRef(name string, span location.Span) TypeRef {
	return TypeRef{name: name, span: span}
}

// Qualifier returns the module alias, or empty string for a local reference.
func (r TypeRef) Qualifier() string {
	return r.qualifier
}

// Name returns the type name.
func (r TypeRef) Name() string {
	return r.name
}

// Span returns the builder call site of this reference.
func (r TypeRef) Span() location.Span {
	return r.span
}

// IsQualified reports whether this reference names a module other than its
// own.
func (r TypeRef) IsQualified() bool {
	return r.qualifier != ""
}

// IsZero reports whether this is the zero value.
func (r TypeRef) IsZero() bool {
	return r.qualifier == "" && r.name == "" && r.span.IsZero()
}

// String returns the fully qualified name (e.g., "parts.Resistor" or
// "Resistor").
func (r TypeRef) String() string {
	if r.qualifier != "" {
		return r.qualifier + "." + r.name
	}
	return r.name
}

// ResolvedTypeRef combines a syntactic TypeRef with the TypeID it resolved
// to, for diagnostics that need to show both the original spelling and
// semantic identity.
type ResolvedTypeRef struct {
	ref TypeRef
	id  TypeID
}

// NewResolvedTypeRef creates a ResolvedTypeRef from a TypeRef and TypeID.
func NewResolvedTypeRef(ref TypeRef, id TypeID) ResolvedTypeRef {
	return ResolvedTypeRef{ref: ref, id: id}
}

// Ref returns the original syntactic TypeRef.
func (r ResolvedTypeRef) Ref() TypeRef {
	return r.ref
}

// ID returns the resolved canonical TypeID.
func (r ResolvedTypeRef) ID() TypeID {
	return r.id
}

// String returns the display string using the syntactic representation.
func (r ResolvedTypeRef) String() string {
	return r.ref.String()
}

// IsZero reports whether this is the zero value.
func (r ResolvedTypeRef) IsZero() bool {
	return r.ref.IsZero() && r.id.IsZero()
}

// Equal reports whether two ResolvedTypeRefs name the same type, by TypeID
// rather than by syntactic spelling.
func (r ResolvedTypeRef) Equal(other ResolvedTypeRef) bool {
	return r.id == other.id
}
