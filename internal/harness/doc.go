// Package harness runs conformance scenarios against rendered interface
// artifacts.
//
// A scenario names a declaration source (a catalog file or a built-in
// routine), a render mode, and a list of assertions over the rendered
// text. Every scenario renders from scratch, so results depend only on
// the declaration source.
//
// # Scenario Format
//
//	name: demo_header
//	description: "Header carries one wrapper per function"
//	catalog: ../catalogs/demo.yaml
//	mode: header
//	assertions:
//	  - type: contains
//	    text: "static void* open_ptr;"
//	  - type: count
//	    text: "static inline auto "
//	    count: 2
//	  - type: order
//	    lines:
//	      - "struct demo_interface {"
//	      - "static inline auto open("
//	  - type: balanced
//
// The catalog path is resolved relative to the scenario file. Use builtin
// instead of catalog to render a routine compiled into the binary.
//
// # Assertion Types
//
//   - contains: the artifact contains text
//   - not_contains: the artifact does not contain text
//   - count: text occurs exactly count times (non-overlapping)
//   - order: each entry of lines occurs after the previous one
//   - balanced: braces and parentheses are balanced
//
// # Golden Files
//
// RunWithGolden compares the rendered artifact against
// testdata/golden/{name}.golden. Regenerate with:
//
//	go test ./internal/harness -update
package harness
