package param

import (
	"math"

	"github.com/fabll/core/literal"
)

// Kind identifies which of the three literal-set kinds a Parameter's
// Domain admits (spec §3).
type Kind int

const (
	// Numbers is a quantity domain over a fixed unit; its literals are
	// literal.QuantityIntervalDisjoint values in that unit.
	Numbers Kind = iota
	// EnumDomain is a domain over the members of a single enum type; its
	// literals are literal.EnumSet values tagged with that type.
	EnumDomain
	// Boolean is the domain {true, false}; its literals are
	// literal.BoolSet values.
	Boolean
)

// String returns the domain kind's name, used in diagnostics.
func (k Kind) String() string {
	switch k {
	case Numbers:
		return "Numbers"
	case EnumDomain:
		return "EnumDomain"
	case Boolean:
		return "Boolean"
	default:
		return "unknown"
	}
}

// Domain is a Parameter's declared universe of possible values (spec §3
// Numbers(unit)/EnumDomain(enum_type)/Boolean).
type Domain struct {
	kind     Kind
	unit     literal.Unit
	enumType string
}

// NewNumbers returns the Numbers(unit) domain.
func NewNumbers(unit literal.Unit) Domain {
	return Domain{kind: Numbers, unit: unit}
}

// NewEnumDomain returns the EnumDomain(enumType) domain.
func NewEnumDomain(enumType string) Domain {
	return Domain{kind: EnumDomain, enumType: enumType}
}

// NewBoolean returns the Boolean domain.
func NewBoolean() Domain {
	return Domain{kind: Boolean}
}

// Kind returns the domain's kind.
func (d Domain) Kind() Kind {
	return d.kind
}

// Unit returns the domain's unit. Only meaningful for Numbers.
func (d Domain) Unit() literal.Unit {
	return d.unit
}

// EnumType returns the domain's enum type name. Only meaningful for
// EnumDomain.
func (d Domain) EnumType() string {
	return d.enumType
}

// Full returns the domain's universal literal: the set of every value
// the domain admits.
func (d Domain) Full() literal.Literal {
	switch d.kind {
	case Numbers:
		return literal.NewQuantityInterval(d.unit, literal.Range{Min: math.Inf(-1), Max: math.Inf(1)})
	case EnumDomain:
		// The universe of enum members is declared by the caller, not the
		// domain itself (spec §3 leaves enum member enumeration to the
		// enum type's definition, outside the solver's concern); an empty
		// EnumDomain.Full is refined by the first constraint applied.
		return literal.EmptyEnumSet(d.enumType)
	case Boolean:
		return literal.FullBoolSet()
	default:
		return literal.EmptyBoolSet()
	}
}

// Empty returns the domain's empty literal.
func (d Domain) Empty() literal.Literal {
	switch d.kind {
	case Numbers:
		return literal.EmptyQuantityInterval(d.unit)
	case EnumDomain:
		return literal.EmptyEnumSet(d.enumType)
	default:
		return literal.EmptyBoolSet()
	}
}
