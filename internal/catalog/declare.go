package catalog

import (
	"fmt"

	"github.com/roach88/ifgen/internal/builder"
	"github.com/roach88/ifgen/internal/ctype"
)

// Declarer validates c and returns a routine that replays its entries in
// order.
func (c *Catalog) Declarer() (builder.DeclareFunc, error) {
	if errs := Validate(c); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}
	// Dry run so a replay failure is an error here, not a panic in render.
	if err := c.replay(builder.New(builder.Discard)); err != nil {
		return nil, err
	}
	return func(b *builder.Builder) {
		if err := c.replay(b); err != nil {
			panic(err)
		}
	}, nil
}

func (c *Catalog) replay(b *builder.Builder) error {
	s := newScope()
	for i, d := range c.Declarations {
		if err := replayOne(b, s, d); err != nil {
			return fmt.Errorf("%s: %w", d.label(i), err)
		}
	}
	return nil
}

func replayOne(b *builder.Builder, s *scope, d Declaration) error {
	switch d.Kind {
	case KindTagged:
		base, err := s.parse(d.Base)
		if err != nil {
			return err
		}
		if d.Sentinel != "" {
			s.types[d.Name] = b.DefineTaggedTypeWithSentinel(d.Name, base, d.Tag, d.Sentinel)
		} else {
			s.types[d.Name] = b.DefineTaggedType(d.Name, base, d.Tag)
		}

	case KindEnum:
		s.types[d.Name] = b.DefineEnum(d.Name, d.Tag)

	case KindOpaquePtr:
		s.types[d.Name] = b.DefineOpaquePtr(d.Name, d.Tag)

	case KindConstant:
		t, err := s.parse(d.Type)
		if err != nil {
			return err
		}
		b.DefineConstant(d.Name, t, d.Value)

	case KindFields:
		rec, err := s.parse(d.Record)
		if err != nil {
			return err
		}
		fields := make([]builder.Field, len(d.Fields))
		for i, f := range d.Fields {
			t, err := s.parse(f.Type)
			if err != nil {
				return fmt.Errorf("field %s: %w", f.Name, err)
			}
			fields[i] = builder.Field{Name: f.Name, Type: t, Offset: f.Offset}
		}
		b.DefineFields(rec, fields...)

	case KindFunction:
		ret, err := s.parse(d.Returns)
		if err != nil {
			return err
		}
		args := make([]ctype.Type, len(d.Args))
		for i, a := range d.Args {
			if args[i], err = s.parse(a); err != nil {
				return fmt.Errorf("argument %d: %w", i, err)
			}
		}
		b.DefineFunction(d.Name, ret, args...)

	default:
		return fmt.Errorf("unknown kind %q", d.Kind)
	}
	return nil
}
