// Package emit provides the artifact emitters.
//
// Each emitter implements builder.Emitter and turns the same declaration
// sequence into a different text:
//   - Header: the type-safe interface struct (aliases, constants, field
//     accessors, function wrappers)
//   - Storage: one entry-point slot definition per function
//   - Reset: the clear() routine nulling every slot
//   - Trace: the canonical ir.Decl record of the sequence
//
// Emitters own their output buffer for exactly one render pass.
package emit
