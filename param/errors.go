package param

import "errors"

// ErrEmptyName is returned when a Parameter is constructed with an empty
// name.
var ErrEmptyName = errors.New("param: empty name")

// ErrNotAParameter is returned when a graph.BoundNode expected to be a
// Parameter does not carry the parameter attribute shape.
var ErrNotAParameter = errors.New("param: node is not a parameter")
