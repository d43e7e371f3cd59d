package json

import "errors"

// ErrUnknownLiteralKind is returned when a literal envelope's "kind"
// field is missing or not one of "interval", "enum", "bool".
var ErrUnknownLiteralKind = errors.New("json adapter: unknown literal kind")

// ErrMalformedLiteral is returned when a literal envelope's kind-specific
// fields do not match the shape spec §6 defines for that kind.
var ErrMalformedLiteral = errors.New("json adapter: malformed literal")
