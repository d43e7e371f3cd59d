package literal

import (
	"fmt"
	"sort"
	"strings"
)

// EnumSet is a finite set of members of a single enum type (spec §3
// EnumDomain / EnumSet literal). Membership is by string value; the enum
// type name disambiguates sets from different enums so that e.g.
// Package.SOT23 and Orientation.SOT23 never compare equal.
type EnumSet struct {
	enumType string
	members  map[string]struct{}
}

// NewEnumSet returns the set containing exactly members, tagged with
// enumType.
func NewEnumSet(enumType string, members ...string) EnumSet {
	set := make(map[string]struct{}, len(members))
	for _, m := range members {
		set[m] = struct{}{}
	}
	return EnumSet{enumType: enumType, members: set}
}

// EmptyEnumSet returns the empty set for enumType.
func EmptyEnumSet(enumType string) EnumSet {
	return EnumSet{enumType: enumType}
}

// EnumType returns the name of the enum this set draws members from.
func (e EnumSet) EnumType() string {
	return e.enumType
}

// IsEmpty reports whether the set has no members.
func (e EnumSet) IsEmpty() bool {
	return len(e.members) == 0
}

// IsSingleton reports whether the set has exactly one member.
func (e EnumSet) IsSingleton() bool {
	return len(e.members) == 1
}

// Members returns the set's members in deterministic (sorted) order.
func (e EnumSet) Members() []string {
	out := make([]string, 0, len(e.members))
	for m := range e.members {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// Contains reports whether member is in the set.
func (e EnumSet) Contains(member string) bool {
	_, ok := e.members[member]
	return ok
}

func (e EnumSet) requireSameType(o EnumSet) error {
	if e.enumType != o.enumType {
		return fmt.Errorf("%w: %s vs %s", ErrDomainMismatch, e.enumType, o.enumType)
	}
	return nil
}

// Intersect returns the members common to e and o.
func (e EnumSet) Intersect(o EnumSet) (EnumSet, error) {
	if err := e.requireSameType(o); err != nil {
		return EnumSet{}, err
	}
	out := EmptyEnumSet(e.enumType)
	out.members = make(map[string]struct{})
	for m := range e.members {
		if _, ok := o.members[m]; ok {
			out.members[m] = struct{}{}
		}
	}
	return out, nil
}

// Union returns the members of e and o combined.
func (e EnumSet) Union(o EnumSet) (EnumSet, error) {
	if err := e.requireSameType(o); err != nil {
		return EnumSet{}, err
	}
	out := EmptyEnumSet(e.enumType)
	out.members = make(map[string]struct{}, len(e.members)+len(o.members))
	for m := range e.members {
		out.members[m] = struct{}{}
	}
	for m := range o.members {
		out.members[m] = struct{}{}
	}
	return out, nil
}

// IsSubsetOf reports whether every member of e is also a member of o.
func (e EnumSet) IsSubsetOf(o EnumSet) (bool, error) {
	if err := e.requireSameType(o); err != nil {
		return false, err
	}
	for m := range e.members {
		if _, ok := o.members[m]; !ok {
			return false, nil
		}
	}
	return true, nil
}

// Equal reports whether e and o have the same enum type and members.
func (e EnumSet) Equal(o EnumSet) bool {
	if e.enumType != o.enumType || len(e.members) != len(o.members) {
		return false
	}
	for m := range e.members {
		if _, ok := o.members[m]; !ok {
			return false
		}
	}
	return true
}

// String renders the set as "EnumType{a, b, c}".
func (e EnumSet) String() string {
	return fmt.Sprintf("%s{%s}", e.enumType, strings.Join(e.Members(), ", "))
}
