// Package complete runs validation passes over a sealed TypeGraph that
// require looking at more than one type at a time — passes a single
// builder call (add_make_child, add_make_trait, ...) cannot perform
// because the target type it needs to inspect may not exist yet when the
// call is made.
//
// Currently this is composition-slot cycle detection: a slot whose
// target-type chain loops back to the declaring type would make
// instantiate_node recurse forever, so it is rejected once every type in
// the graph has been registered and import-linked.
package complete
