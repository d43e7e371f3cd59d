package typegraph

import (
	"slices"

	"github.com/fabll/core/location"
)

// StepKind identifies what a single TraversalStep does when resolved
// against a bound instance (spec §4.2 add_reference / §7 PathError).
type StepKind uint8

const (
	// StepChild moves to the named composition child. If the slot allows
	// many children, Index selects among them.
	StepChild StepKind = iota
	// StepParent moves to the composition parent.
	StepParent
	// StepTrait moves to the attached trait of the named trait type.
	StepTrait
)

// String returns the step kind's name.
func (k StepKind) String() string {
	switch k {
	case StepChild:
		return "child"
	case StepParent:
		return "parent"
	case StepTrait:
		return "trait"
	default:
		return "unknown"
	}
}

// TraversalStep is one hop in a Reference's path: a composition child by
// identifier (optionally indexed), a move to the composition parent, or a
// move to an attached trait.
type TraversalStep struct {
	kind       StepKind
	identifier string // child identifier or trait type name; empty for StepParent
	index      int    // slot index, only meaningful when HasIndex is true
	hasIndex   bool
}

// ChildStep creates a step that moves to a (one) composition child.
func ChildStep(identifier string) TraversalStep {
	return TraversalStep{kind: StepChild, identifier: identifier}
}

// IndexedChildStep creates a step that moves to one member of a (many)
// composition slot.
func IndexedChildStep(identifier string, index int) TraversalStep {
	return TraversalStep{kind: StepChild, identifier: identifier, index: index, hasIndex: true}
}

// ParentStep creates a step that moves to the composition parent.
func ParentStep() TraversalStep {
	return TraversalStep{kind: StepParent}
}

// TraitStep creates a step that moves to an attached trait.
func TraitStep(traitTypeName string) TraversalStep {
	return TraversalStep{kind: StepTrait, identifier: traitTypeName}
}

// Kind returns the step's kind.
func (s TraversalStep) Kind() StepKind {
	return s.kind
}

// Identifier returns the child identifier or trait type name. Empty for
// StepParent.
func (s TraversalStep) Identifier() string {
	return s.identifier
}

// Index returns the slot index and whether one was given.
func (s TraversalStep) Index() (index int, ok bool) {
	return s.index, s.hasIndex
}

// String renders the step the way it appears in a formatted Reference path.
func (s TraversalStep) String() string {
	switch s.kind {
	case StepParent:
		return ".."
	case StepTrait:
		return "<" + s.identifier + ">"
	default:
		if s.hasIndex {
			return s.identifier + "[" + itoa(s.index) + "]"
		}
		return s.identifier
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// Reference is a declared path from a type's own instances to another
// instance reachable via composition/trait edges (spec §4.2 add_reference).
// References are resolved per-instance at instantiation or link-application
// time by reference_resolve; Reference itself only carries the declared
// path, not any resolved target.
type Reference struct {
	owner TypeID
	steps []TraversalStep
	span  location.Span
}

// NewReference creates a Reference declared on owner, following steps in
// order.
func NewReference(owner TypeID, steps []TraversalStep, span location.Span) Reference {
	return Reference{owner: owner, steps: slices.Clone(steps), span: span}
}

// Owner returns the type the reference is declared on.
func (r Reference) Owner() TypeID {
	return r.owner
}

// Steps returns a defensive copy of the traversal path.
func (r Reference) Steps() []TraversalStep {
	return slices.Clone(r.steps)
}

// Span returns the builder call site of this reference.
func (r Reference) Span() location.Span {
	return r.span
}

// String renders the path as dot-joined steps (e.g., "a.b[2].<Power>").
func (r Reference) String() string {
	out := ""
	for i, s := range r.steps {
		if i > 0 && s.kind != StepTrait {
			out += "."
		}
		out += s.String()
	}
	return out
}
