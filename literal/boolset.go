package literal

// BoolSet is a subset of {true, false} (spec §3 Boolean domain / BoolSet
// literal): empty, {true}, {false}, or {true, false}.
type BoolSet struct {
	hasTrue  bool
	hasFalse bool
}

// NewBoolSet returns {v}.
func NewBoolSet(v bool) BoolSet {
	if v {
		return BoolSet{hasTrue: true}
	}
	return BoolSet{hasFalse: true}
}

// FullBoolSet returns {true, false}.
func FullBoolSet() BoolSet {
	return BoolSet{hasTrue: true, hasFalse: true}
}

// EmptyBoolSet returns the empty set.
func EmptyBoolSet() BoolSet {
	return BoolSet{}
}

// IsEmpty reports whether the set has no members.
func (b BoolSet) IsEmpty() bool {
	return !b.hasTrue && !b.hasFalse
}

// IsSingleton reports whether the set has exactly one member.
func (b BoolSet) IsSingleton() bool {
	return b.hasTrue != b.hasFalse
}

// Contains reports whether v is a member of the set.
func (b BoolSet) Contains(v bool) bool {
	if v {
		return b.hasTrue
	}
	return b.hasFalse
}

// SingleValue returns the set's lone member and true, if IsSingleton.
func (b BoolSet) SingleValue() (bool, bool) {
	if b.hasTrue && !b.hasFalse {
		return true, true
	}
	if b.hasFalse && !b.hasTrue {
		return false, true
	}
	return false, false
}

// Intersect returns the members common to b and o.
func (b BoolSet) Intersect(o BoolSet) BoolSet {
	return BoolSet{hasTrue: b.hasTrue && o.hasTrue, hasFalse: b.hasFalse && o.hasFalse}
}

// Union returns the members of b and o combined.
func (b BoolSet) Union(o BoolSet) BoolSet {
	return BoolSet{hasTrue: b.hasTrue || o.hasTrue, hasFalse: b.hasFalse || o.hasFalse}
}

// Not returns the logical negation of every member of b.
func (b BoolSet) Not() BoolSet {
	return BoolSet{hasTrue: b.hasFalse, hasFalse: b.hasTrue}
}

// And returns {x && y : x in b, y in o}.
func (b BoolSet) And(o BoolSet) BoolSet {
	out := EmptyBoolSet()
	for _, x := range b.values() {
		for _, y := range o.values() {
			out = out.Union(NewBoolSet(x && y))
		}
	}
	return out
}

// Or returns {x || y : x in b, y in o}.
func (b BoolSet) Or(o BoolSet) BoolSet {
	out := EmptyBoolSet()
	for _, x := range b.values() {
		for _, y := range o.values() {
			out = out.Union(NewBoolSet(x || y))
		}
	}
	return out
}

func (b BoolSet) values() []bool {
	var out []bool
	if b.hasTrue {
		out = append(out, true)
	}
	if b.hasFalse {
		out = append(out, false)
	}
	return out
}

// IsSubsetOf reports whether every member of b is also a member of o.
func (b BoolSet) IsSubsetOf(o BoolSet) bool {
	return (!b.hasTrue || o.hasTrue) && (!b.hasFalse || o.hasFalse)
}

// Equal reports whether b and o have the same members.
func (b BoolSet) Equal(o BoolSet) bool {
	return b.hasTrue == o.hasTrue && b.hasFalse == o.hasFalse
}

// String renders the set as "{true, false}", "{true}", "{false}", or
// "{}".
func (b BoolSet) String() string {
	switch {
	case b.hasTrue && b.hasFalse:
		return "{true, false}"
	case b.hasTrue:
		return "{true}"
	case b.hasFalse:
		return "{false}"
	default:
		return "{}"
	}
}
