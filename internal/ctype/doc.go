// Package ctype provides the type algebra used by the interface generators.
//
// A Type describes a C++ type as it appears in emitted source: fixed-width
// scalars, opaque fixed-layout records, tagged strong wrappers over a base
// type, and pointer/const composition. Two further variants, NativeTagged and
// NativeRecord, are produced only by Erase and describe the binary-compatible
// form used across a raw function-pointer call.
//
// Key constraints:
//   - Type values are immutable once built and may be shared freely
//   - Rendering (String) is a pure function of structure
//   - Erase on an already-erased type is a programming error
package ctype
