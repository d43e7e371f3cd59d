// Package literal implements the three concrete value-set kinds a
// Parameter's knowledge is expressed in (spec §3): disjoint quantity
// intervals, enum sets, and bool sets. Each kind supports union,
// intersect, and the arithmetic operators the solver's algebraic folds
// need; these operations are total — operating on an empty set yields the
// empty set, and operating outside a quantity's unit dimension fails with
// a typed unit error rather than panicking. The element accessors MinElem,
// MaxElem and AsCenterTuple are undefined on an empty set.
//
// Literal values are immutable; every operation returns a new value.
package literal
