package complete

import (
	"fmt"

	"github.com/fabll/core/typegraph"
)

type visitState int

const (
	unvisited visitState = iota
	visiting
	done
)

// DetectCompositionCycles walks every registered type's composition slots
// and reports the first cycle found in the target-type chain (spec §4.2:
// instantiate_node must terminate). Call once all types are registered
// and import-linked, so slot.TargetID() is populated.
//
// Grounded on the depth-first "grey/black" cycle detection the teacher
// used for supertype cycles, adapted here to composition-slot target
// chains since this domain has no inheritance graph to walk.
func DetectCompositionCycles(g *typegraph.TypeGraph) error {
	state := make(map[typegraph.TypeID]visitState)
	var stack []typegraph.TypeID

	var visit func(id typegraph.TypeID) error
	visit = func(id typegraph.TypeID) error {
		switch state[id] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("%w: %s", typegraph.ErrRecursiveComposition, formatCycle(stack, id))
		}

		state[id] = visiting
		stack = append(stack, id)

		t, ok := g.Type(id)
		if ok {
			for slot := range t.Compositions() {
				if err := visit(slot.TargetID()); err != nil {
					return err
				}
			}
		}

		stack = stack[:len(stack)-1]
		state[id] = done
		return nil
	}

	for _, t := range g.Types() {
		if err := visit(t.ID()); err != nil {
			return err
		}
	}
	return nil
}

func formatCycle(stack []typegraph.TypeID, closingAt typegraph.TypeID) string {
	out := ""
	start := 0
	for i, id := range stack {
		if id == closingAt {
			start = i
			break
		}
	}
	for _, id := range stack[start:] {
		out += id.String() + " -> "
	}
	return out + closingAt.String()
}
