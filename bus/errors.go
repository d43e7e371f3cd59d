package bus

import "errors"

// ErrBusSpecializationUnsupported is returned when a bus's connected
// interfaces do not all declare the same interface type. Spec §4.6.4:
// "Enforce same type across a bus; if specialization is present on the
// same bus, fail as not-supported" — spec §9 leaves the correct long-term
// policy (narrow to the common supertype? reject?) as an open question, so
// this package refuses rather than guessing.
var ErrBusSpecializationUnsupported = errors.New("bus: specialization across a connected bus is not supported")

// ErrMissingParameter names the case of a bus member that does not carry
// a requested Spec.Name. Resolve does not return it: members without the
// parameter are skipped, and a bus where no member carries it yields no
// predicate.
var ErrMissingParameter = errors.New("bus: interface does not carry the requested parameter")
