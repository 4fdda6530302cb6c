// Package ir provides the canonical record of a declaration sequence.
//
// The emit package's Trace emitter turns each declaration into a Decl. A
// sequence of Decls is the portable, hashable form of a catalog: it backs
// the describe command, the declaration fingerprint, and the render
// manifest. ir imports nothing internal.
//
// Key design constraints:
//   - NO float values anywhere - offsets and sizes are int64
//   - Types are recorded by their rendered spelling
//   - All JSON tags use snake_case
//   - Identity is content-addressed, never wall-clock based
package ir
