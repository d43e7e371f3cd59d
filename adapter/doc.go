// Package adapter provides format-specific adapters for the core's
// external wire forms (spec §6). Each adapter subpackage handles a
// specific format and may have its own external dependencies.
//
// # Architectural Boundary
//
// Adapters live at the outermost tier of the module. This design provides:
//
//   - Dependency hygiene via import granularity: Go modules are granular at the
//     import level. Consumers who import only the core library packages do not
//     transitively depend on tidwall/jsonc. Adapter dependencies are pulled only
//     when adapter/json is imported.
//
//   - Clear library/consumer boundary: The adapter package explicitly imports
//     the library to use it, mirroring how downstream consumers structure their
//     own adapters.
//
//   - Extensibility signal: Users see adapter/json and understand they can
//     create adapter/myformat using the same pattern.
//
// # Dependency Direction
//
// Adapters depend on library packages; library packages never depend on adapters:
//
//	adapter/json  ──imports──▶  literal
//	adapter/json  ──imports──▶  solver
//
// # Subpackages
//
//   - [json]: Literal on-wire form (spec §6) and solver.Config loading,
//     with JSONC-tolerant parsing
package adapter
