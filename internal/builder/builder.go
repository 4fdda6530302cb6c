// Package builder provides the declaration surface shared by every
// artifact emitter.
//
// A declaration routine (DeclareFunc) issues calls against a *Builder.
// The Builder owns the shared construction logic - how tagged types,
// enums and opaque pointers are built - and forwards each finished
// declaration to an Emitter. The render driver replays the same routine
// once per emitter, so the artifacts cannot drift apart.
package builder

import (
	"github.com/roach88/ifgen/internal/ctype"
)

// Constant is a named value of a declared type. The literal is emitted
// verbatim and is not parsed or range-checked.
type Constant struct {
	Name  string
	Type  ctype.Type
	Value string
}

// Field is a named member of a record at a caller-supplied byte offset.
// Offsets mirror an external, already-fixed binary layout and are not
// checked against the record's size or alignment.
type Field struct {
	Name   string
	Type   ctype.Type
	Offset int
}

// Function is a foreign function. Argument order is significant; the name
// ties the header wrapper to its storage slot and reset statement.
type Function struct {
	Name   string
	Return ctype.Type
	Args   []ctype.Type
}

// Emitter consumes declarations and produces one artifact.
// Implementations ignore the declaration kinds their artifact does not
// need; none of them validate names.
type Emitter interface {
	TaggedType(t *ctype.Tagged)
	Constant(c Constant)
	Fields(record ctype.Type, fields []Field)
	Function(f Function)
}

// DeclareFunc is a declaration routine. It must issue the same calls on
// every invocation.
type DeclareFunc func(b *Builder)

// Builder is the declaration surface. Each call appends to the emitter's
// output; calling twice with the same name declares twice.
type Builder struct {
	emitter Emitter
}

// New creates a Builder forwarding to e.
func New(e Emitter) *Builder {
	return &Builder{emitter: e}
}

// DefineConstant declares a named value of type t.
func (b *Builder) DefineConstant(name string, t ctype.Type, literal string) {
	b.emitter.Constant(Constant{Name: name, Type: t, Value: literal})
}

// DefineFunction declares a foreign function.
func (b *Builder) DefineFunction(name string, ret ctype.Type, args ...ctype.Type) {
	// Copy so later mutation of the caller's slice cannot reach an emitter.
	owned := make([]ctype.Type, len(args))
	copy(owned, args)
	b.emitter.Function(Function{Name: name, Return: ret, Args: owned})
}

// DefineFields attaches fields to a record-backed type.
func (b *Builder) DefineFields(record ctype.Type, fields ...Field) {
	owned := make([]Field, len(fields))
	copy(owned, fields)
	b.emitter.Fields(record, owned)
}

// DefineTaggedType declares a strong type over base mirroring the foreign
// type tag, and returns it for use in later declarations.
func (b *Builder) DefineTaggedType(name string, base ctype.Type, tag string) ctype.Type {
	return b.defineTagged(ctype.NewTagged(name, base, tag))
}

// DefineTaggedTypeWithSentinel is DefineTaggedType with an invalid-value
// literal.
func (b *Builder) DefineTaggedTypeWithSentinel(name string, base ctype.Type, tag, literal string) ctype.Type {
	return b.defineTagged(ctype.NewTaggedWithSentinel(name, base, tag, literal))
}

// DefineEnum declares a tagged type over int32_t.
func (b *Builder) DefineEnum(name, tag string) ctype.Type {
	return b.DefineTaggedType(name, ctype.Int32, tag)
}

// DefineOpaquePtr declares a tagged type over void*.
func (b *Builder) DefineOpaquePtr(name, tag string) ctype.Type {
	return b.DefineTaggedType(name, ctype.VoidPtr(), tag)
}

func (b *Builder) defineTagged(t *ctype.Tagged) ctype.Type {
	b.emitter.TaggedType(t)
	return t
}
