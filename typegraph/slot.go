package typegraph

import (
	"github.com/fabll/core/location"
)

// CompositionSlot declares a named composition child of a type
// (spec §4.2 add_make_child). A slot with Many true produces an indexed
// (many) composition relationship; otherwise it produces exactly one child
// per instance.
type CompositionSlot struct {
	identifier string
	target     TypeRef
	targetID   TypeID // resolved once the builder links imports
	many       bool
	count      int // number of children to instantiate when Many is true
	span       location.Span
	doc        string
}

// NewCompositionSlot creates a CompositionSlot. count is ignored unless
// many is true.
func NewCompositionSlot(identifier string, target TypeRef, many bool, count int, span location.Span, doc string) CompositionSlot {
	return CompositionSlot{identifier: identifier, target: target, many: many, count: count, span: span, doc: doc}
}

// Identifier returns the slot's composition identifier.
func (s CompositionSlot) Identifier() string { return s.identifier }

// Target returns the syntactic reference to the child type.
func (s CompositionSlot) Target() TypeRef { return s.target }

// TargetID returns the resolved child TypeID, set after import linking.
func (s CompositionSlot) TargetID() TypeID { return s.targetID }

// Many reports whether this slot holds an indexed group of children.
func (s CompositionSlot) Many() bool { return s.many }

// Count returns the number of children to instantiate for a (many) slot.
// Meaningless when Many() is false.
func (s CompositionSlot) Count() int { return s.count }

// Span returns the builder call site.
func (s CompositionSlot) Span() location.Span { return s.span }

// Documentation returns the slot's doc comment, if any.
func (s CompositionSlot) Documentation() string { return s.doc }

func (s *CompositionSlot) setTargetID(id TypeID) { s.targetID = id }

// TraitSlot declares a named trait attached to a type (spec §4.2
// add_make_trait). Traits are addressed by their type name rather than by
// a composition identifier; a type may carry at most one trait per
// identifier (spec §4.1 ErrDuplicateIdentifier).
type TraitSlot struct {
	identifier string
	target     TypeRef
	targetID   TypeID
	span       location.Span
	doc        string
}

// NewTraitSlot creates a TraitSlot.
func NewTraitSlot(identifier string, target TypeRef, span location.Span, doc string) TraitSlot {
	return TraitSlot{identifier: identifier, target: target, span: span, doc: doc}
}

// Identifier returns the trait's identifier on the owning type.
func (s TraitSlot) Identifier() string { return s.identifier }

// Target returns the syntactic reference to the trait type.
func (s TraitSlot) Target() TypeRef { return s.target }

// TargetID returns the resolved trait TypeID, set after import linking.
func (s TraitSlot) TargetID() TypeID { return s.targetID }

// Span returns the builder call site.
func (s TraitSlot) Span() location.Span { return s.span }

// Documentation returns the trait slot's doc comment, if any.
func (s TraitSlot) Documentation() string { return s.doc }

func (s *TraitSlot) setTargetID(id TypeID) { s.targetID = id }
