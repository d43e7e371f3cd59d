package literal

// Literal is the common interface satisfied by QuantityIntervalDisjoint,
// EnumSet, and BoolSet (spec §3): the three concrete value-set kinds a
// Parameter's domain knowledge can be expressed in. The solver operates
// on Literal uniformly for the kind-agnostic parts of its algorithms
// (is_empty, is_singleton) and type-switches to the concrete kind for
// intersect/union/arithmetic, since those operations are only defined
// between literals of the same kind.
type Literal interface {
	IsEmpty() bool
	IsSingleton() bool
	String() string
}

var (
	_ Literal = QuantityIntervalDisjoint{}
	_ Literal = EnumSet{}
	_ Literal = BoolSet{}
)

// Equal reports whether a and b denote the same set of values. Literals
// of different concrete kinds are never equal.
func Equal(a, b Literal) bool {
	switch x := a.(type) {
	case QuantityIntervalDisjoint:
		y, ok := b.(QuantityIntervalDisjoint)
		return ok && x.Equal(y)
	case EnumSet:
		y, ok := b.(EnumSet)
		return ok && x.Equal(y)
	case BoolSet:
		y, ok := b.(BoolSet)
		return ok && x.Equal(y)
	default:
		return false
	}
}

// SameKind reports whether a and b are the same concrete Literal kind.
func SameKind(a, b Literal) bool {
	switch a.(type) {
	case QuantityIntervalDisjoint:
		_, ok := b.(QuantityIntervalDisjoint)
		return ok
	case EnumSet:
		_, ok := b.(EnumSet)
		return ok
	case BoolSet:
		_, ok := b.(BoolSet)
		return ok
	default:
		return false
	}
}
