package ctype

import "fmt"

// Type represents a type in the generated interface.
//
// This is a sealed interface - only types in this package implement it.
// Emitters switch exhaustively over the variants:
//   - Scalar: fixed-width primitive (int32_t, size_t, void, ...)
//   - *Record: opaque blob of known size and alignment
//   - *Tagged: named strong wrapper over a base Type
//   - Pointer, Const: composition over any Type
//   - NativeTagged, NativeRecord: erased forms (see Erase)
type Type interface {
	// String renders the type as C++ source text.
	String() string

	typeNode() // Marker method - seals interface to this package
}

// Scalar is a primitive type with a fixed native spelling.
type Scalar int

const (
	Char Scalar = iota
	Int8
	Int16
	Int32
	Int64
	UInt8
	UInt16
	UInt32
	UInt64
	USize
	Void
)

var scalarSpellings = [...]string{
	Char:   "char",
	Int8:   "int8_t",
	Int16:  "int16_t",
	Int32:  "int32_t",
	Int64:  "int64_t",
	UInt8:  "uint8_t",
	UInt16: "uint16_t",
	UInt32: "uint32_t",
	UInt64: "uint64_t",
	USize:  "size_t",
	Void:   "void",
}

func (s Scalar) String() string {
	if s < 0 || int(s) >= len(scalarSpellings) {
		return fmt.Sprintf("Scalar(%d)", int(s))
	}
	return scalarSpellings[s]
}

func (Scalar) typeNode() {}

// Record is an opaque fixed-size, fixed-alignment blob. The algebra knows
// nothing about its fields; they are attached by byte offset through
// field declarations.
type Record struct {
	size  int
	align int
}

// NewRecord creates a record type of the given size and alignment in bytes.
// Layout is caller-supplied ground truth and is not validated.
func NewRecord(size, align int) *Record {
	return &Record{size: size, align: align}
}

// Size returns the record size in bytes.
func (r *Record) Size() int { return r.size }

// Align returns the record alignment in bytes.
func (r *Record) Align() int { return r.align }

func (r *Record) String() string {
	return fmt.Sprintf("detail::record_type<%d, %d>", r.size, r.align)
}

func (*Record) typeNode() {}

// Tagged is a named strong type over a base Type. It remembers the name of
// the foreign type it mirrors and, optionally, a literal used as the
// "invalid" sentinel value.
type Tagged struct {
	name        string
	base        Type
	tag         string
	sentinel    string
	hasSentinel bool
}

// NewTagged creates a tagged type without a sentinel.
func NewTagged(name string, base Type, tag string) *Tagged {
	return &Tagged{name: name, base: base, tag: tag}
}

// NewTaggedWithSentinel creates a tagged type whose invalid value is the
// given literal. The literal is emitted verbatim.
func NewTaggedWithSentinel(name string, base Type, tag, literal string) *Tagged {
	return &Tagged{name: name, base: base, tag: tag, sentinel: literal, hasSentinel: true}
}

// Name returns the declared identifier.
func (t *Tagged) Name() string { return t.name }

// Base returns the wrapped type.
func (t *Tagged) Base() Type { return t.base }

// Tag returns the foreign type name this wrapper mirrors.
func (t *Tagged) Tag() string { return t.tag }

// Sentinel returns the invalid literal and whether one was declared.
func (t *Tagged) Sentinel() (string, bool) { return t.sentinel, t.hasSentinel }

func (t *Tagged) String() string { return t.name }

func (*Tagged) typeNode() {}

// Pointer is a pointer to its element type.
type Pointer struct {
	elem Type
}

// Elem returns the pointee type.
func (p Pointer) Elem() Type { return p.elem }

func (p Pointer) String() string { return p.elem.String() + "*" }

func (Pointer) typeNode() {}

// Const is the const-qualified form of its element type.
type Const struct {
	elem Type
}

// Elem returns the qualified type.
func (c Const) Elem() Type { return c.elem }

func (c Const) String() string { return c.elem.String() + " const" }

func (Const) typeNode() {}

// NativeTagged is the erased form of a tagged type: the underlying member
// type of the wrapper, as used across the raw call boundary.
type NativeTagged struct {
	tagged *Tagged
}

// Tagged returns the tagged type this form was erased from.
func (n NativeTagged) Tagged() *Tagged { return n.tagged }

func (n NativeTagged) String() string { return "typename " + n.tagged.name + "::native" }

func (NativeTagged) typeNode() {}

// NativeRecord is the erased form of a record. Records cross the raw
// boundary only by address, so the form renders as an untyped pointer.
type NativeRecord struct {
	record *Record
}

// Record returns the record type this form was erased from.
func (n NativeRecord) Record() *Record { return n.record }

func (NativeRecord) String() string { return "void*" }

func (NativeRecord) typeNode() {}

// PointerTo returns a pointer to t.
func PointerTo(t Type) Type { return Pointer{elem: t} }

// ConstOf returns the const-qualified form of t.
func ConstOf(t Type) Type { return Const{elem: t} }

// ConstPointerTo returns a pointer to const t.
func ConstPointerTo(t Type) Type { return PointerTo(ConstOf(t)) }

// CString returns char const*.
func CString() Type { return ConstPointerTo(Char) }

// VoidPtr returns void*.
func VoidPtr() Type { return PointerTo(Void) }

// VoidConstPtr returns void const*.
func VoidConstPtr() Type { return ConstPointerTo(Void) }

// VoidPtrPtr returns void**.
func VoidPtrPtr() Type { return PointerTo(PointerTo(Void)) }
