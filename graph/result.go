package graph

import (
	"cmp"
	"slices"

	"github.com/google/uuid"
)

// Result is an immutable, point-in-time snapshot of a [Graph], returned
// by [Graph.Snapshot]. It is safe for concurrent read access from
// multiple goroutines.
//
// Nodes and Edges are returned in a deterministic order (nodes by
// ascending ID; edges by source ID, then kind, then position) independent of the
// originating graph's concurrent mutation order, mirroring the teacher's
// Snapshot ordering guarantees.
type Result struct {
	nodes []*Node
	edges []*Edge
}

// Nodes returns every node present at snapshot time, sorted by ID.
func (r *Result) Nodes() []*Node {
	if r == nil {
		return nil
	}
	return slices.Clone(r.nodes)
}

// Edges returns every edge present at snapshot time, sorted by
// (source ID, kind, position).
func (r *Result) Edges() []*Edge {
	if r == nil {
		return nil
	}
	return slices.Clone(r.edges)
}

// Snapshot captures a point-in-time, deterministically ordered copy of
// the graph. Snapshot acquires a read lock; concurrent AddNode/AddEdge
// calls block until it completes.
func (g *Graph) Snapshot() *Result {
	if g == nil {
		return nil
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	nodes := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		nodes = append(nodes, n)
	}
	slices.SortFunc(nodes, func(a, b *Node) int { return cmp.Compare(a.id.String(), b.id.String()) })

	edges := slices.Clone(g.edges)
	slices.SortFunc(edges, func(a, b *Edge) int {
		if c := cmp.Compare(a.source.id.String(), b.source.id.String()); c != 0 {
			return c
		}
		if c := cmp.Compare(int(a.kind), int(b.kind)); c != 0 {
			return c
		}
		return cmp.Compare(a.position, b.position)
	})

	return &Result{nodes: nodes, edges: edges}
}

// nodeID returns n's ID, or uuid.Nil for a nil node.
func nodeID(n *Node) uuid.UUID {
	if n == nil {
		return uuid.Nil
	}
	return n.id
}
