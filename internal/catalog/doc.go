// Package catalog supplies declaration routines: the built-in CUDA driver
// table and declarative catalog documents loaded from YAML, TOML or CUE.
//
// A catalog document names the interface struct and lists declarations in
// order. Type expressions inside it may refer only to types declared by
// earlier entries, so a validated catalog always replays cleanly:
//
//	interface: demo_interface
//	declarations:
//	  - kind: opaque_ptr
//	    name: ctx_t
//	    tag: Ctx
//	  - kind: function
//	    name: open
//	    returns: int32
//	    args: ["ctx_t*"]
package catalog
