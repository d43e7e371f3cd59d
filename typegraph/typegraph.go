package typegraph

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fabll/core/graph"
	"github.com/fabll/core/internal/trace"
	"github.com/fabll/core/location"
)

// TypeGraph is the registry of Type nodes built up by a series of
// add_type / add_make_child / add_make_trait / add_reference /
// add_make_link calls (spec §4.2). It is the compile-time counterpart of
// the runtime instance graph: every instance produced by instantiate_node
// is a copy of one type's declared shape.
//
// TypeGraph is not safe for concurrent writes; callers build it
// single-threaded (typically from one adapter load) and then use it
// read-only for instantiation.
type TypeGraph struct {
	config typeGraphConfig

	types []*Type // registration order, for deterministic Linker iteration
	byID  map[TypeID]*Type
}

type typeGraphConfig struct {
	logger *slog.Logger
}

// Option configures a TypeGraph.
type Option func(*typeGraphConfig)

// WithLogger attaches a logger used for trace spans during registration
// and instantiation.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *typeGraphConfig) { cfg.logger = logger }
}

// New creates an empty TypeGraph.
func New(opts ...Option) *TypeGraph {
	cfg := typeGraphConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &TypeGraph{config: cfg, byID: make(map[TypeID]*Type)}
}

// AddType registers a new type (spec §4.2 add_type). Returns
// ErrTypeCollision if id is already registered.
func (g *TypeGraph) AddType(ctx context.Context, id TypeID, name string, span location.Span, doc string, abstract bool) (*Type, error) {
	op := trace.Begin(ctx, g.config.logger, "fabll.typegraph.add_type", slog.String("type", id.String()))
	var err error
	defer func() { op.End(err) }()

	if name == "" {
		err = fmt.Errorf("typegraph: type name must not be empty")
		return nil, err
	}
	if _, exists := g.byID[id]; exists {
		err = fmt.Errorf("%w: %s", ErrTypeCollision, id)
		return nil, err
	}

	t := NewType(id, name, span, doc, abstract)
	g.byID[id] = t
	g.types = append(g.types, t)
	trace.Debug(ctx, g.config.logger, "registered type", slog.String("type", id.String()))
	return t, nil
}

// Type returns the registered type for id.
func (g *TypeGraph) Type(id TypeID) (*Type, bool) {
	t, ok := g.byID[id]
	return t, ok
}

// Types iterates registered types in registration order.
func (g *TypeGraph) Types() []*Type {
	out := make([]*Type, len(g.types))
	copy(out, g.types)
	return out
}

// AddMakeChild declares a composition slot on owner (spec §4.2
// add_make_child). count is ignored unless many is true; it gives the
// fixed number of children instantiate_node creates for the slot.
func (g *TypeGraph) AddMakeChild(ctx context.Context, owner TypeID, identifier string, target TypeRef, many bool, count int, span location.Span, doc string) error {
	op := trace.Begin(ctx, g.config.logger, "fabll.typegraph.add_make_child",
		slog.String("owner", owner.String()), slog.String("identifier", identifier))
	var err error
	defer func() { op.End(err) }()

	t, ok := g.byID[owner]
	if !ok {
		err = fmt.Errorf("%w: %s", ErrUnknownType, owner)
		return err
	}
	if t.IsSealed() {
		err = fmt.Errorf("%w: %s", ErrTypeSealed, owner)
		return err
	}
	if _, dup := t.CompositionSlot(identifier); dup {
		err = fmt.Errorf("typegraph: duplicate composition identifier %q on %s", identifier, owner)
		return err
	}
	if _, dup := t.TraitSlot(identifier); dup {
		err = fmt.Errorf("typegraph: identifier %q already used by a trait slot on %s", identifier, owner)
		return err
	}
	t.addComposition(NewCompositionSlot(identifier, target, many, count, span, doc))
	return nil
}

// AddMakeTrait declares a trait slot on owner (spec §4.2 add_make_trait).
func (g *TypeGraph) AddMakeTrait(ctx context.Context, owner TypeID, identifier string, target TypeRef, span location.Span, doc string) error {
	op := trace.Begin(ctx, g.config.logger, "fabll.typegraph.add_make_trait",
		slog.String("owner", owner.String()), slog.String("identifier", identifier))
	var err error
	defer func() { op.End(err) }()

	t, ok := g.byID[owner]
	if !ok {
		err = fmt.Errorf("%w: %s", ErrUnknownType, owner)
		return err
	}
	if t.IsSealed() {
		err = fmt.Errorf("%w: %s", ErrTypeSealed, owner)
		return err
	}
	if _, dup := t.TraitSlot(identifier); dup {
		err = fmt.Errorf("typegraph: duplicate trait identifier %q on %s", identifier, owner)
		return err
	}
	if _, dup := t.CompositionSlot(identifier); dup {
		err = fmt.Errorf("typegraph: identifier %q already used by a composition slot on %s", identifier, owner)
		return err
	}
	t.addTrait(NewTraitSlot(identifier, target, span, doc))
	return nil
}

// AddReference declares a traversal path on owner, for later use as the
// LHS or RHS of a link template (spec §4.2 add_reference).
func (g *TypeGraph) AddReference(ctx context.Context, owner TypeID, steps []TraversalStep, span location.Span) (Reference, error) {
	op := trace.Begin(ctx, g.config.logger, "fabll.typegraph.add_reference", slog.String("owner", owner.String()))
	var err error
	defer func() { op.End(err) }()

	t, ok := g.byID[owner]
	if !ok {
		err = fmt.Errorf("%w: %s", ErrUnknownType, owner)
		return Reference{}, err
	}
	if t.IsSealed() {
		err = fmt.Errorf("%w: %s", ErrTypeSealed, owner)
		return Reference{}, err
	}
	ref := NewReference(owner, steps, span)
	t.addReference(ref)
	return ref, nil
}

// AddMakeLink declares that every instance of owner should gain an edge
// of kind between whatever lhs and rhs resolve to (spec §4.2
// add_make_link).
func (g *TypeGraph) AddMakeLink(ctx context.Context, owner TypeID, lhs, rhs Reference, kind graph.EdgeKind, span location.Span) error {
	op := trace.Begin(ctx, g.config.logger, "fabll.typegraph.add_make_link", slog.String("owner", owner.String()))
	var err error
	defer func() { op.End(err) }()

	t, ok := g.byID[owner]
	if !ok {
		err = fmt.Errorf("%w: %s", ErrUnknownType, owner)
		return err
	}
	if t.IsSealed() {
		err = fmt.Errorf("%w: %s", ErrTypeSealed, owner)
		return err
	}
	t.addLink(NewLinkTemplate(owner, lhs, rhs, kind, span))
	return nil
}

// Seal seals every registered type, preventing further builder calls.
// Call once all types for a module have been fully declared, before
// resolving imports or instantiating.
func (g *TypeGraph) Seal() {
	for _, t := range g.types {
		t.Seal()
	}
}
