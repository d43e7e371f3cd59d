package walk

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"github.com/fabll/core/graph"
	"github.com/fabll/core/internal/trace"
)

// ErrNilVisitor is returned when Walk is called with a nil visitor.
var ErrNilVisitor = errors.New("walk: nil visitor")

// WalkOption configures the walker.
type WalkOption func(*walkConfig)

type walkConfig struct {
	logger *slog.Logger
}

// WithLogger enables debug logging during traversal.
func WithLogger(logger *slog.Logger) WalkOption {
	return func(cfg *walkConfig) { cfg.logger = logger }
}

// Walk performs a deterministic depth-first traversal of root's
// composition subtree, calling visitor methods. Returns on first error
// from visitor, or the context error if cancelled.
func Walk(ctx context.Context, root graph.BoundNode, visitor Visitor, opts ...WalkOption) error {
	if ctx == nil {
		panic("walk.Walk: nil context")
	}
	if visitor == nil {
		return ErrNilVisitor
	}
	if root.IsZero() {
		return nil
	}

	cfg := walkConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	op := trace.Begin(ctx, cfg.logger, "fabll.walk.composition")
	w := &walker{visitor: visitor, config: cfg}
	err := w.walkNode(ctx, root)
	op.End(err)
	return err
}

type walker struct {
	visitor Visitor
	config  walkConfig
}

func (w *walker) walkNode(ctx context.Context, node graph.BoundNode) error {
	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck
	}

	if err := w.visitor.EnterNode(node); err != nil {
		return err //nolint:wrapcheck
	}

	trace.Debug(ctx, w.config.logger, "visiting node")

	for name, value := range node.Node().Attrs().SortedRange() {
		if err := w.visitor.VisitAttr(node, name, value); err != nil {
			return err //nolint:wrapcheck
		}
	}

	for _, identifier := range node.Compositions() {
		if err := w.visitor.EnterComposition(node, identifier); err != nil {
			return err //nolint:wrapcheck
		}

		children := slices.Clone(node.Children(identifier))
		for _, child := range children {
			if err := w.walkNode(ctx, child); err != nil {
				return err
			}
		}

		if err := w.visitor.ExitComposition(node, identifier); err != nil {
			return err //nolint:wrapcheck
		}
	}

	return w.visitor.ExitNode(node)
}
