package expr

import "errors"

// ErrNotAnExpression is returned by Bind when a graph.BoundNode was not
// built by one of this package's constructors.
var ErrNotAnExpression = errors.New("expr: node is not an expression")

// ErrNoOperands is returned when an expression constructor is called
// with zero operands.
var ErrNoOperands = errors.New("expr: expression requires at least one operand")

// ErrUnsupportedOperand is returned when an operand value is neither a
// graph.BoundNode, an Expression, nor a literal.Literal.
var ErrUnsupportedOperand = errors.New("expr: unsupported operand type")
