// Package connectivity groups bus interface nodes into connected-component
// classes over the "connected" pointer-edge relation (spec §4.6: "connected-
// to relation is reflexive, symmetric, transitive").
package connectivity

import (
	"sort"

	"github.com/fabll/core/graph"
)

// ConnectedRef is the EdgePointer identifier bus.Connect uses to record
// that two interfaces sit on the same electrical connection.
const ConnectedRef = "connected"

type visitState int

const (
	unvisited visitState = iota
	visiting
	visited
)

// Classes groups interfaces into connectivity classes: every interface
// reachable from another by a chain of "connected" pointer edges, followed
// in either direction, joins the same class. Classes are returned in
// deterministic (node-ID-sorted) order, and so is each class's membership.
//
// Grounded on the teacher's schema/internal/complete cross-schema cycle
// detector (DetectCrossSchemaInheritanceCycles): the same three-state
// (unvisited/visiting/visited) DFS walk over outgoing references, redirected
// from "fail if a back-edge closes a cycle" to "every node a walk touches
// joins one reachability class" — a bus has no notion of a forbidden cycle,
// only of who shares a connection.
func Classes(gr *graph.Graph, interfaces []graph.BoundNode) [][]graph.BoundNode {
	byID := make(map[string]graph.BoundNode, len(interfaces))
	order := make([]string, 0, len(interfaces))
	for _, iface := range interfaces {
		id := iface.Node().ID().String()
		if _, ok := byID[id]; ok {
			continue
		}
		byID[id] = iface
		order = append(order, id)
	}
	sort.Strings(order)

	state := make(map[string]visitState, len(order))
	pointerKind := graph.EdgePointer

	var classes [][]graph.BoundNode
	var walk func(id string, component *[]string)
	walk = func(id string, component *[]string) {
		if state[id] != unvisited {
			return
		}
		state[id] = visiting
		*component = append(*component, id)
		for _, e := range gr.EdgesOf(byID[id].Node(), &pointerKind, graph.Both) {
			if e.Identifier() != ConnectedRef {
				continue
			}
			other := e.Target().ID().String()
			if other == id {
				other = e.Source().ID().String()
			}
			if _, known := byID[other]; !known {
				continue
			}
			walk(other, component)
		}
		state[id] = visited
	}

	for _, id := range order {
		if state[id] != unvisited {
			continue
		}
		var component []string
		walk(id, &component)
		sort.Strings(component)
		nodes := make([]graph.BoundNode, len(component))
		for i, cid := range component {
			nodes[i] = byID[cid]
		}
		classes = append(classes, nodes)
	}
	return classes
}
