package expr

// Kind tags an Expression node with which of the spec's algebraic
// operations it performs (spec §3, §4.3).
type Kind int

const (
	// Arithmetic, over Numbers operands.
	Add Kind = iota
	Multiply
	Power
	Log
	Abs
	Round

	// Predicates. Binary; lhs is the constrained operand, rhs is the
	// literal or other operand it is compared against.
	Is
	IsSubset
	GreaterOrEqual

	// Set algebra, over operands of the same literal kind.
	Intersection
	Union
	// Correlated wraps an operand to mark it as dependent on another
	// operand elsewhere in the expression tree for the purposes of
	// uncorrelated_alias_fold (spec §4.5): the solver must not fold a
	// Correlated operand's alias class independently of the operand it is
	// correlated with.
	Correlated
	Not

	// Boolean, over Boolean-domain operands or predicate results.
	And
	Or

	// Literal is a leaf node wrapping a concrete literal.Literal value.
	// A Parameter is never wrapped this way — an operand edge points
	// directly at the Parameter's own node when the operand is a bare
	// parameter reference.
	Literal
)

// String returns the kind's name, used in diagnostics and expression
// rendering.
func (k Kind) String() string {
	switch k {
	case Add:
		return "Add"
	case Multiply:
		return "Multiply"
	case Power:
		return "Power"
	case Log:
		return "Log"
	case Abs:
		return "Abs"
	case Round:
		return "Round"
	case Is:
		return "Is"
	case IsSubset:
		return "IsSubset"
	case GreaterOrEqual:
		return "GreaterOrEqual"
	case Intersection:
		return "Intersection"
	case Union:
		return "Union"
	case Correlated:
		return "Correlated"
	case Not:
		return "Not"
	case And:
		return "And"
	case Or:
		return "Or"
	case Literal:
		return "Literal"
	default:
		return "unknown"
	}
}

// IsPredicate reports whether k produces a boolean truth value about its
// operands rather than a new value in their domain.
func (k Kind) IsPredicate() bool {
	switch k {
	case Is, IsSubset, GreaterOrEqual:
		return true
	default:
		return false
	}
}

// IsAssociativeCommutative reports whether k's operand order is
// semantically irrelevant, the property compress_associative and the
// canonical-form comparisons in remove_congruent_expressions rely on
// (spec §4.5, §8).
func (k Kind) IsAssociativeCommutative() bool {
	switch k {
	case Add, Multiply, And, Or, Union, Intersection:
		return true
	default:
		return false
	}
}
