// Package store provides the SQLite-backed render manifest.
//
// Each row records one rendered artifact: which interface and mode, the
// fingerprint of the declaration sequence that produced it, the hash of
// the rendered text and where it was written. Rows are append-only.
//
// # Patterns
//
// Logical time
//   - Ordering uses seq INTEGER assigned at insert, never timestamps
//   - Identical manifests replay identically regardless of wall time
//
// Idempotency
//   - Row ids are deterministic (ir.RenderID)
//   - Recording the same render twice is a no-op (ON CONFLICT DO NOTHING)
//
// Deterministic queries
//   - All listings use ORDER BY seq ASC, id ASC COLLATE BINARY
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
package store
