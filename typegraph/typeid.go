package typegraph

import (
	"github.com/fabll/core/location"
)

// TypeID uniquely identifies a type across all registered modules. It is the
// semantic identity of a type node, used for equality, map keys, and
// cross-module reference resolution (spec §4.2 add_type/add_reference).
//
// Two type nodes are equal if and only if they have the same TypeID.
// TypeID is a value type with comparable semantics; use == for equality.
type TypeID struct {
	modulePath location.SourceID
	name       string
}

// NewTypeID creates a TypeID from a module source ID and type name.
func NewTypeID(modulePath location.SourceID, name string) TypeID {
	return TypeID{modulePath: modulePath, name: name}
}

// ModulePath returns the canonical source identity of the module that
// registered this type (spec §4.2's type root).
func (id TypeID) ModulePath() location.SourceID {
	return id.modulePath
}

// Name returns the type name within its module.
func (id TypeID) Name() string {
	return id.name
}

// String returns "modulePath:typeName", or just "typeName" when the module
// path is empty.
func (id TypeID) String() string {
	if id.modulePath.IsZero() {
		return id.name
	}
	return id.modulePath.String() + ":" + id.name
}

// IsZero reports whether the TypeID is the zero value.
func (id TypeID) IsZero() bool {
	return id.modulePath.IsZero() && id.name == ""
}
