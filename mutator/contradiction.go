package mutator

import (
	"fmt"

	"github.com/fabll/core/graph"
	"github.com/fabll/core/literal"
)

// Contradiction is raised when AliasLiteral asserts a literal for a
// parameter whose representative already carries a disjoint literal
// (spec §7 ContradictionByLiteral).
type Contradiction struct {
	Parameter graph.BoundNode
	Existing  literal.Literal
	Asserted  literal.Literal
}

func (c *Contradiction) Error() string {
	return fmt.Sprintf("mutator: contradiction: %s already constrained to %s, cannot also be %s",
		c.Parameter.Node().ID(), c.Existing, c.Asserted)
}
