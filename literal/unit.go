package literal

import "github.com/fabll/core/internal/normalize"

// Unit identifies the physical dimension a Quantity_Interval_Disjoint's
// bounds are expressed in (spec §3 Numbers(unit)). Two units are the same
// unit iff their normalized symbols match, regardless of spelling
// ("ohm" vs "Ω", "uF" vs "µF").
type Unit struct {
	symbol string
}

// NewUnit returns the Unit identified by symbol, normalizing it first.
func NewUnit(symbol string) Unit {
	return Unit{symbol: normalize.Unit(symbol)}
}

// Dimensionless is the unit of ratios, counts, and other unitless
// quantities.
func Dimensionless() Unit {
	return Unit{}
}

// Symbol returns the unit's canonical symbol.
func (u Unit) Symbol() string {
	return u.symbol
}

// IsDimensionless reports whether u is the dimensionless unit.
func (u Unit) IsDimensionless() bool {
	return u.symbol == ""
}

// Equal reports whether u and other identify the same unit.
func (u Unit) Equal(other Unit) bool {
	return u.symbol == other.symbol
}

// String implements fmt.Stringer.
func (u Unit) String() string {
	if u.symbol == "" {
		return "1"
	}
	return u.symbol
}
