package walk

import (
	"github.com/fabll/core/graph"
	"github.com/fabll/core/immutable"
)

// Visitor receives callbacks during composition-tree traversal.
//
// Each method returns an error to stop traversal. For partial
// implementations, embed [BaseVisitor] to get no-op defaults.
type Visitor interface {
	// EnterNode is called when entering a node.
	EnterNode(node graph.BoundNode) error

	// ExitNode is called after all attrs and compositions have been
	// visited for this node.
	ExitNode(node graph.BoundNode) error

	// VisitAttr is called for each attribute on a node, in alphabetic
	// order by name.
	VisitAttr(node graph.BoundNode, name string, value immutable.Value) error

	// EnterComposition is called when entering a composition slot.
	EnterComposition(node graph.BoundNode, identifier string) error

	// ExitComposition is called when leaving a composition slot, after
	// all of its children have been visited.
	ExitComposition(node graph.BoundNode, identifier string) error
}

// BaseVisitor provides no-op implementations of all Visitor methods.
type BaseVisitor struct{}

func (BaseVisitor) EnterNode(graph.BoundNode) error                      { return nil }
func (BaseVisitor) ExitNode(graph.BoundNode) error                       { return nil }
func (BaseVisitor) VisitAttr(graph.BoundNode, string, immutable.Value) error { return nil }
func (BaseVisitor) EnterComposition(graph.BoundNode, string) error       { return nil }
func (BaseVisitor) ExitComposition(graph.BoundNode, string) error        { return nil }
