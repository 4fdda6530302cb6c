package emit

import (
	"github.com/roach88/ifgen/internal/builder"
	"github.com/roach88/ifgen/internal/ctype"
	"github.com/roach88/ifgen/internal/ir"
)

// Trace records the declaration sequence as canonical ir.Decl values.
// Types are recorded by their rendered spelling.
type Trace struct {
	decls []ir.Decl
}

var _ builder.Emitter = (*Trace)(nil)

// NewTrace creates an empty Trace.
func NewTrace() *Trace {
	return &Trace{}
}

func (t *Trace) append(d ir.Decl) {
	d.Seq = int64(len(t.decls))
	t.decls = append(t.decls, d)
}

func (t *Trace) TaggedType(tt *ctype.Tagged) {
	d := ir.Decl{Kind: ir.KindTagged, Name: tt.Name(), Type: tt.Base().String(), Tag: tt.Tag()}
	if lit, ok := tt.Sentinel(); ok {
		d.Sentinel = &lit
	}
	t.append(d)
}

func (t *Trace) Constant(c builder.Constant) {
	t.append(ir.Decl{Kind: ir.KindConstant, Name: c.Name, Type: c.Type.String(), Value: c.Value})
}

func (t *Trace) Fields(record ctype.Type, fields []builder.Field) {
	fds := make([]ir.FieldDecl, len(fields))
	for i, f := range fields {
		fds[i] = ir.FieldDecl{Name: f.Name, Type: f.Type.String(), Offset: int64(f.Offset)}
	}
	t.append(ir.Decl{Kind: ir.KindFields, Type: record.String(), Fields: fds})
}

func (t *Trace) Function(f builder.Function) {
	args := make([]string, len(f.Args))
	for i, a := range f.Args {
		args[i] = a.String()
	}
	t.append(ir.Decl{Kind: ir.KindFunction, Name: f.Name, Return: f.Return.String(), Args: args})
}

// Decls returns the recorded declarations in sequence order.
func (t *Trace) Decls() []ir.Decl {
	out := make([]ir.Decl, len(t.decls))
	copy(out, t.decls)
	return out
}
