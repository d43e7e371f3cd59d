package graph

import (
	"cmp"
	"context"
	"iter"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/fabll/core/immutable"
	"github.com/fabll/core/internal/trace"
)

// Graph is the untyped directed multigraph that backs both the type graph
// and the instance graph (spec §4.1).
//
// Graph is safe for concurrent use from multiple goroutines. Multiple
// callers may invoke [Graph.AddNode] and [Graph.AddEdge] concurrently;
// node minting and adjacency indexing happen atomically under a single
// lock, the same way the teacher's instance-add path serializes duplicate
// detection.
type Graph struct {
	config graphConfig
	mu     sync.RWMutex

	nodes map[uuid.UUID]*Node

	// edges holds every edge ever added, in insertion order, so iteration
	// is reproducible regardless of concurrent caller ordering.
	edges []*Edge

	// outByKind/inByKind index edges by (node, kind) for EdgesOf queries.
	outByKind map[uuid.UUID]map[EdgeKind][]*Edge
	inByKind  map[uuid.UUID]map[EdgeKind][]*Edge

	// parent gives O(1) access to a node's single composition-inbound edge
	// (spec §4.1: "a node's parent edge (composition inbound) is O(1)").
	parent map[uuid.UUID]*Edge
}

// New creates an empty Graph.
func New(opts ...GraphOption) *Graph {
	cfg := graphConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Graph{
		config:    cfg,
		nodes:     make(map[uuid.UUID]*Node),
		outByKind: make(map[uuid.UUID]map[EdgeKind][]*Edge),
		inByKind:  make(map[uuid.UUID]map[EdgeKind][]*Edge),
		parent:    make(map[uuid.UUID]*Edge),
	}
}

// AddNode mints a new node with the given attribute bag.
func (g *Graph) AddNode(attrs immutable.Properties) *Node {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := &Node{id: uuid.New(), attrs: attrs}
	g.nodes[n.id] = n
	return n
}

// AddEdge adds a typed edge between two nodes owned by this graph.
//
// identifier carries the composition attribute name, trait type name, or
// pointer reference-path name, depending on kind; it is ignored for
// EdgeOperand, EdgeSelf, and EdgeSibling. AddEdge sets the edge's position
// to its insertion order among same-source, same-kind edges; for EdgeOperand
// edges this is the operand position.
//
// AddEdge enforces the structural invariants this package is responsible
// for: a node may have at most one composition parent, and a source node
// may not reuse an identifier across two Composition or two Trait edges
// (spec §4.1 "Fails when ... duplicate identifiers in the same
// composition parent"). Type-level edge/endpoint compatibility (e.g. "a
// trait edge must point at a trait-type instance") is enforced by the
// typegraph and instance layers, which are the only layers that know
// what a node's type is.
func (g *Graph) AddEdge(ctx context.Context, kind EdgeKind, source, target *Node, identifier string, attrs immutable.Properties) (*Edge, error) {
	if ctx == nil {
		panic("graph.AddEdge: nil context")
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	op := trace.Begin(ctx, g.config.logger, "fabll.graph.add_edge",
		slog.String("kind", kind.String()),
		slog.String("identifier", identifier),
	)
	var retErr error
	defer func() { op.End(retErr) }()

	if err := ctx.Err(); err != nil {
		retErr = err
		return nil, retErr
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkOwned(source); err != nil {
		retErr = err
		return nil, retErr
	}
	if err := g.checkOwned(target); err != nil {
		retErr = err
		return nil, retErr
	}

	if kind == EdgeComposition {
		if existing, ok := g.parent[target.id]; ok {
			_ = existing
			retErr = ErrMultipleParents
			return nil, retErr
		}
		if g.hasIdentifier(source, EdgeComposition, identifier) {
			retErr = ErrDuplicateIdentifier
			return nil, retErr
		}
	}
	if kind == EdgeTrait && g.hasIdentifier(source, EdgeTrait, identifier) {
		retErr = ErrDuplicateIdentifier
		return nil, retErr
	}

	position := len(g.outByKind[source.id][kind])
	e := &Edge{kind: kind, source: source, target: target, identifier: identifier, position: position, attrs: attrs}

	g.edges = append(g.edges, e)
	g.index(e)

	if kind == EdgeComposition {
		g.parent[target.id] = e
	}

	trace.Debug(ctx, g.config.logger, "edge added",
		slog.String("kind", kind.String()),
		slog.String("identifier", identifier),
	)
	return e, nil
}

func (g *Graph) checkOwned(n *Node) error {
	if n == nil {
		return ErrForeignNode
	}
	owned, ok := g.nodes[n.id]
	if !ok || owned != n {
		return ErrForeignNode
	}
	if n.invalid {
		return ErrNodeInvalid
	}
	return nil
}

func (g *Graph) hasIdentifier(source *Node, kind EdgeKind, identifier string) bool {
	for _, e := range g.outByKind[source.id][kind] {
		if e.identifier == identifier {
			return true
		}
	}
	return false
}

func (g *Graph) index(e *Edge) {
	if g.outByKind[e.source.id] == nil {
		g.outByKind[e.source.id] = make(map[EdgeKind][]*Edge)
	}
	g.outByKind[e.source.id][e.kind] = append(g.outByKind[e.source.id][e.kind], e)

	if g.inByKind[e.target.id] == nil {
		g.inByKind[e.target.id] = make(map[EdgeKind][]*Edge)
	}
	g.inByKind[e.target.id][e.kind] = append(g.inByKind[e.target.id][e.kind], e)
}

// RemoveNode detaches all edges touching node and marks it invalid.
// Subsequent operations against the stale handle return [ErrNodeInvalid].
func (g *Graph) RemoveNode(ctx context.Context, node *Node) error {
	if ctx == nil {
		panic("graph.RemoveNode: nil context")
	}
	if g == nil {
		return ErrNilGraph
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkOwned(node); err != nil {
		return err
	}

	keep := g.edges[:0:0]
	for _, e := range g.edges {
		if e.source.id == node.id || e.target.id == node.id {
			continue
		}
		keep = append(keep, e)
	}
	g.edges = keep

	delete(g.outByKind, node.id)
	delete(g.inByKind, node.id)
	delete(g.parent, node.id)
	for _, kinds := range g.outByKind {
		for k, es := range kinds {
			kinds[k] = slices.DeleteFunc(slices.Clone(es), func(e *Edge) bool { return e.target.id == node.id })
		}
	}
	for _, kinds := range g.inByKind {
		for k, es := range kinds {
			kinds[k] = slices.DeleteFunc(slices.Clone(es), func(e *Edge) bool { return e.source.id == node.id })
		}
	}

	node.invalid = true
	trace.Debug(ctx, g.config.logger, "node removed", slog.String("id", node.id.String()))
	return nil
}

// EdgesOf iterates edges touching node, optionally filtered by kind, in
// the requested direction. Outgoing edges come before incoming ones; within
// a direction, edges are grouped by kind in EdgeKind order, and each group
// is in insertion order.
func (g *Graph) EdgesOf(node *Node, kind *EdgeKind, dir Direction) iter.Seq[*Edge] {
	return func(yield func(*Edge) bool) {
		if g == nil || node == nil {
			return
		}
		g.mu.RLock()
		defer g.mu.RUnlock()

		emit := func(es []*Edge) bool {
			for _, e := range es {
				if kind != nil && e.kind != *kind {
					continue
				}
				if !yield(e) {
					return false
				}
			}
			return true
		}

		if dir == Out || dir == Both {
			for k := EdgeComposition; k <= EdgeSibling; k++ {
				if !emit(g.outByKind[node.id][k]) {
					return
				}
			}
		}
		if dir == In || dir == Both {
			for k := EdgeComposition; k <= EdgeSibling; k++ {
				if !emit(g.inByKind[node.id][k]) {
					return
				}
			}
		}
	}
}

// edgesFrom is the internal, unlocked-by-caller helper used by BoundNode
// navigation methods; it takes the read lock itself.
func (g *Graph) edgesFrom(node *Node, kind EdgeKind) []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return slices.Clone(g.outByKind[node.id][kind])
}

func (g *Graph) parentOf(node *Node) (*Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.parent[node.id]
	return e, ok
}

// compositionIdentifiers returns the sorted, distinct identifiers among
// node's outgoing Composition edges.
func (g *Graph) compositionIdentifiers(node *Node) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, e := range g.outByKind[node.id][EdgeComposition] {
		seen[e.identifier] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// Bind returns a handle scoped to this graph view.
func (g *Graph) Bind(node *Node) BoundNode {
	return BoundNode{g: g, node: node}
}

// NodesOfType iterates every node for which predicate returns true, in
// ascending ID order. Graph itself has no notion of "type"; callers such
// as instance.Instance wrap this with a predicate that consults the type
// graph (spec §4.1 "nodes_of_type ... for instance-graph queries that
// need typed filtering via the type graph").
func (g *Graph) NodesOfType(predicate func(*Node) bool) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		if g == nil {
			return
		}
		g.mu.RLock()
		ids := make([]uuid.UUID, 0, len(g.nodes))
		for id := range g.nodes {
			ids = append(ids, id)
		}
		slices.SortFunc(ids, func(a, b uuid.UUID) int { return cmp.Compare(a.String(), b.String()) })
		nodes := make([]*Node, len(ids))
		for i, id := range ids {
			nodes[i] = g.nodes[id]
		}
		g.mu.RUnlock()

		for _, n := range nodes {
			if predicate == nil || predicate(n) {
				if !yield(n) {
					return
				}
			}
		}
	}
}
