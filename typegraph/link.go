package typegraph

import (
	"github.com/fabll/core/graph"
	"github.com/fabll/core/location"
)

// LinkTemplate declares that, for every instance of the owning type, an
// edge of Kind should be added between whatever the LHS and RHS
// References resolve to on that instance (spec §4.2 add_make_link).
// LinkTemplates are applied at instantiate_node time, after the
// instance's own composition subtree exists, since a Reference may walk
// through children not yet created when the template was declared.
type LinkTemplate struct {
	owner TypeID
	lhs   Reference
	rhs   Reference
	kind  graph.EdgeKind
	span  location.Span
}

// NewLinkTemplate creates a LinkTemplate declared on owner.
func NewLinkTemplate(owner TypeID, lhs, rhs Reference, kind graph.EdgeKind, span location.Span) LinkTemplate {
	return LinkTemplate{owner: owner, lhs: lhs, rhs: rhs, kind: kind, span: span}
}

// Owner returns the type the link template is declared on.
func (l LinkTemplate) Owner() TypeID { return l.owner }

// LHS returns the left-hand reference.
func (l LinkTemplate) LHS() Reference { return l.lhs }

// RHS returns the right-hand reference.
func (l LinkTemplate) RHS() Reference { return l.rhs }

// Kind returns the edge kind to create between the resolved endpoints.
func (l LinkTemplate) Kind() graph.EdgeKind { return l.kind }

// Span returns the builder call site.
func (l LinkTemplate) Span() location.Span { return l.span }
