package solver

import (
	"context"

	"github.com/fabll/core/graph"
	"github.com/fabll/core/immutable"
)

// Fork runs a speculative solve: it copies result.Graph into a fresh
// graph (so the original is never touched), applies assume (e.g. adding
// a tentative constrained predicate), then solves the copy. The caller
// inspects the returned Result and, if the speculative branch is
// acceptable, applies the same assume to the real graph and re-solves
// for real; Fork's mutations never leak back on their own (spec §5
// "solver fork for speculative queries").
func (s *Solver) Fork(ctx context.Context, result *Result, assume func(gr *graph.Graph) error) (*Result, error) {
	copyGraph := graph.New()
	copied := make(map[string]*graph.Node)

	snap := result.Graph.Snapshot()
	for _, n := range snap.Nodes() {
		out := copyGraph.AddNode(immutable.WrapProperties(n.Attrs().Clone()))
		copied[n.ID().String()] = out
	}
	for _, e := range snap.Edges() {
		src, dst := copied[e.Source().ID().String()], copied[e.Target().ID().String()]
		if src == nil || dst == nil {
			continue
		}
		if _, err := copyGraph.AddEdge(ctx, e.Kind(), src, dst, e.Identifier(), e.Attrs()); err != nil {
			return nil, err
		}
	}

	if assume != nil {
		if err := assume(copyGraph); err != nil {
			return nil, err
		}
	}

	return s.Solve(ctx, copyGraph)
}
