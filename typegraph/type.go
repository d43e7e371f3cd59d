package typegraph

import (
	"iter"
	"slices"

	"github.com/fabll/core/location"
)

// Type is a type node in the TypeGraph: a named template of composition
// slots, trait slots, declared references, and link templates, built up by
// repeated add_make_child/add_make_trait/add_reference/add_make_link calls
// (spec §4.2). A Type is sealed once registration completes; instantiation
// reads a sealed Type only.
type Type struct {
	id       TypeID
	name     string
	modName  string
	span     location.Span
	nameSpan location.Span
	doc      string
	abstract bool

	compositions []CompositionSlot
	traits       []TraitSlot
	references   []Reference
	links        []LinkTemplate

	sealed bool
}

// NewType creates a Type node. Slots, references, and links are added
// afterward via the TypeGraph builder methods, then the type is sealed.
func NewType(id TypeID, name string, span location.Span, doc string, abstract bool) *Type {
	return &Type{id: id, name: name, span: span, doc: doc, abstract: abstract}
}

// ID returns the type's canonical identity.
func (t *Type) ID() TypeID { return t.id }

// Name returns the type name.
func (t *Type) Name() string { return t.name }

// ModulePath returns the canonical source identity of the registering
// module.
func (t *Type) ModulePath() location.SourceID { return t.id.modulePath }

// ModuleName returns the display name of the registering module, used to
// derive an import qualifier when a type is viewed from a different
// module (see ResolvedTypeRefFromType-style callers).
func (t *Type) ModuleName() string { return t.modName }

// SetModuleName sets the display name used for qualified references.
// Internal use only; called during registration.
func (t *Type) SetModuleName(name string) {
	if t.sealed {
		panic("typegraph: cannot mutate sealed type")
	}
	t.modName = name
}

// Span returns the builder call site that declared this type.
func (t *Type) Span() location.Span { return t.span }

// NameSpan returns the span of just the type's name token, for precise
// diagnostic underlines.
func (t *Type) NameSpan() location.Span { return t.nameSpan }

// SetNameSpan sets the name-only span.
func (t *Type) SetNameSpan(span location.Span) {
	if t.sealed {
		panic("typegraph: cannot mutate sealed type")
	}
	t.nameSpan = span
}

// Documentation returns the type's doc comment, if any.
func (t *Type) Documentation() string { return t.doc }

// IsAbstract reports whether instantiate_node must refuse to build a node
// of this type directly (spec §7 E_ABSTRACT_INSTANTIATION).
func (t *Type) IsAbstract() bool { return t.abstract }

// CompositionSlot returns the named composition slot, if declared directly
// on this type.
func (t *Type) CompositionSlot(identifier string) (CompositionSlot, bool) {
	for _, c := range t.compositions {
		if c.identifier == identifier {
			return c, true
		}
	}
	return CompositionSlot{}, false
}

// Compositions iterates the type's composition slots in declaration order.
func (t *Type) Compositions() iter.Seq[CompositionSlot] {
	return func(yield func(CompositionSlot) bool) {
		for _, c := range t.compositions {
			if !yield(c) {
				return
			}
		}
	}
}

// CompositionsSlice returns a defensive copy of the composition slots.
func (t *Type) CompositionsSlice() []CompositionSlot {
	return slices.Clone(t.compositions)
}

// TraitSlot returns the named trait slot, if declared directly on this
// type.
func (t *Type) TraitSlot(identifier string) (TraitSlot, bool) {
	for _, tr := range t.traits {
		if tr.identifier == identifier {
			return tr, true
		}
	}
	return TraitSlot{}, false
}

// Traits iterates the type's trait slots in declaration order.
func (t *Type) Traits() iter.Seq[TraitSlot] {
	return func(yield func(TraitSlot) bool) {
		for _, tr := range t.traits {
			if !yield(tr) {
				return
			}
		}
	}
}

// TraitsSlice returns a defensive copy of the trait slots.
func (t *Type) TraitsSlice() []TraitSlot {
	return slices.Clone(t.traits)
}

// References iterates the type's declared references in declaration
// order.
func (t *Type) References() iter.Seq[Reference] {
	return func(yield func(Reference) bool) {
		for _, r := range t.references {
			if !yield(r) {
				return
			}
		}
	}
}

// ReferencesSlice returns a defensive copy of the declared references.
func (t *Type) ReferencesSlice() []Reference {
	return slices.Clone(t.references)
}

// Links iterates the type's link templates in declaration order.
func (t *Type) Links() iter.Seq[LinkTemplate] {
	return func(yield func(LinkTemplate) bool) {
		for _, l := range t.links {
			if !yield(l) {
				return
			}
		}
	}
}

// LinksSlice returns a defensive copy of the type's link templates.
func (t *Type) LinksSlice() []LinkTemplate {
	return slices.Clone(t.links)
}

// Seal prevents further mutation. Called by the TypeGraph once a type's
// registration (all add_make_child/add_make_trait/add_reference/
// add_make_link calls) is complete.
func (t *Type) Seal() {
	t.sealed = true
}

// IsSealed reports whether the type has been sealed.
func (t *Type) IsSealed() bool { return t.sealed }

func (t *Type) addComposition(slot CompositionSlot) {
	if t.sealed {
		panic("typegraph: cannot mutate sealed type")
	}
	t.compositions = append(t.compositions, slot)
}

func (t *Type) addTrait(slot TraitSlot) {
	if t.sealed {
		panic("typegraph: cannot mutate sealed type")
	}
	t.traits = append(t.traits, slot)
}

func (t *Type) addReference(ref Reference) {
	if t.sealed {
		panic("typegraph: cannot mutate sealed type")
	}
	t.references = append(t.references, ref)
}

func (t *Type) addLink(link LinkTemplate) {
	if t.sealed {
		panic("typegraph: cannot mutate sealed type")
	}
	t.links = append(t.links, link)
}

func (t *Type) resolveSlotTargets(resolve func(TypeRef) (TypeID, bool)) (unresolved []TypeRef) {
	for i := range t.compositions {
		if id, ok := resolve(t.compositions[i].target); ok {
			t.compositions[i].setTargetID(id)
		} else {
			unresolved = append(unresolved, t.compositions[i].target)
		}
	}
	for i := range t.traits {
		if id, ok := resolve(t.traits[i].target); ok {
			t.traits[i].setTargetID(id)
		} else {
			unresolved = append(unresolved, t.traits[i].target)
		}
	}
	return unresolved
}
