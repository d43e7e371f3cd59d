package literal

import "errors"

// ErrUnitMismatch indicates an operation was attempted between two
// quantity intervals with incompatible units (spec §7 UnitError).
var ErrUnitMismatch = errors.New("literal: unit mismatch")

// ErrDomainMismatch indicates an operation was attempted between values
// of different literal kinds, or enum values from different enum types
// (spec §7 DomainError).
var ErrDomainMismatch = errors.New("literal: domain mismatch")
