package typegraph

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fabll/core/internal/trace"
)

// Linker resolves the qualified TypeRefs left unresolved by each module's
// own TypeGraph into concrete TypeIDs, by searching a set of registered
// type roots (spec §4.2 link_imports). A type root is one module's
// TypeGraph, named by the alias other modules use to reference it.
type Linker struct {
	config  typeGraphConfig
	roots   map[string]*TypeGraph // alias -> root
	unnamed []*TypeGraph          // roots with no alias, searched for unqualified refs
}

// NewLinker creates an empty Linker.
func NewLinker(opts ...Option) *Linker {
	cfg := typeGraphConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Linker{config: cfg, roots: make(map[string]*TypeGraph)}
}

// RegisterRoot makes root searchable under alias (spec §4.2's "registered
// type roots"). An empty alias registers root as an unqualified search
// target, for resolving local references that were declared against a
// forward-referenced type in the same root.
func (l *Linker) RegisterRoot(alias string, root *TypeGraph) {
	if alias == "" {
		l.unnamed = append(l.unnamed, root)
		return
	}
	l.roots[alias] = root
}

// LinkImports resolves every unresolved composition/trait slot target
// across all registered roots, mutating each Type's slots in place. It
// must be called after every root has been registered and before any
// instantiate_node call.
//
// Returns the first resolution failure encountered; callers that want a
// full diagnostic sweep should collect issues via the returned TypeRef
// list instead (see LinkImports's companion, resolveAll, for per-error
// detail).
func (l *Linker) LinkImports(ctx context.Context) error {
	op := trace.Begin(ctx, l.config.logger, "fabll.typegraph.link_imports")
	var err error
	defer func() { op.End(err) }()

	for _, root := range append(l.unnamed, valuesOf(l.roots)...) {
		for _, t := range root.Types() {
			unresolved := t.resolveSlotTargets(func(ref TypeRef) (TypeID, bool) {
				return l.resolve(ref, root)
			})
			if len(unresolved) > 0 {
				err = fmt.Errorf("typegraph: %w: %s", ErrLinkerUnresolved, unresolved[0])
				return err
			}
		}
	}
	return nil
}

// resolve finds the TypeID a TypeRef names, searching local first, then
// the alias-qualified root, then (for unqualified refs) every unnamed
// root.
func (l *Linker) resolve(ref TypeRef, local *TypeGraph) (TypeID, bool) {
	if !ref.IsQualified() {
		if t := findByName(local, ref.Name()); t != nil {
			return t.ID(), true
		}
		var found *Type
		ambiguous := false
		for _, root := range l.unnamed {
			if t := findByName(root, ref.Name()); t != nil {
				if found != nil && found.ID() != t.ID() {
					ambiguous = true
				}
				found = t
			}
		}
		if ambiguous {
			trace.Warn(context.Background(), l.config.logger, "ambiguous global identifier", slog.String("name", ref.Name()))
			return TypeID{}, false
		}
		if found != nil {
			return found.ID(), true
		}
		return TypeID{}, false
	}

	root, ok := l.roots[ref.Qualifier()]
	if !ok {
		return TypeID{}, false
	}
	if t := findByName(root, ref.Name()); t != nil {
		return t.ID(), true
	}
	return TypeID{}, false
}

func findByName(g *TypeGraph, name string) *Type {
	for _, t := range g.types {
		if t.Name() == name {
			return t
		}
	}
	return nil
}

func valuesOf(m map[string]*TypeGraph) []*TypeGraph {
	out := make([]*TypeGraph, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out
}
