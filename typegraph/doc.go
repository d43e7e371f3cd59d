// Package typegraph implements the compile-time type registry that sits
// above the untyped graph package (spec §4.2): types are declared once
// via a small builder API (add_type, add_make_child, add_make_trait,
// add_reference, add_make_link), then instantiated any number of times
// into composition subtrees on a graph.Graph via InstantiateNode.
//
// # Registration
//
// A TypeGraph holds the types registered by one module. Composition and
// trait slots are declared with a syntactic TypeRef naming their target;
// Linker.LinkImports resolves every TypeRef to a concrete TypeID once all
// modules in a build have registered their types, searching registered
// type roots for global identifiers (spec §7 LinkerError).
//
// # Instantiation
//
// InstantiateNode builds one composition subtree per call: every
// composition slot gets its declared number of children (1, or Count()
// for a many slot), every trait slot gets its trait node, and link
// templates declared anywhere in the subtree are applied afterward by
// resolving their LHS/RHS References against the finished subtree.
package typegraph
