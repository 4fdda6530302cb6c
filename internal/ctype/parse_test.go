package ctype

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTypeScalars(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"int32", "int32_t"},
		{"int32_t", "int32_t"},
		{"uint64", "uint64_t"},
		{"usize", "size_t"},
		{"size_t", "size_t"},
		{"char", "char"},
		{"void", "void"},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			typ, err := ParseType(tt.expr, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, typ.String())
		})
	}
}

func TestParseTypeComposition(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"void*", "void*"},
		{"void **", "void**"},
		{"void const*", "void const*"},
		{"const void*", "void const*"},
		{"char const* *", "char const**"},
		{"int32 const", "int32_t const"},
		{"record<128, 8>", "detail::record_type<128, 8>"},
		{"record<200,8> const*", "detail::record_type<200, 8> const*"},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			typ, err := ParseType(tt.expr, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, typ.String())
		})
	}
}

func TestParseTypeResolvesNames(t *testing.T) {
	ctx := NewTagged("ctx", VoidPtr(), "Ctx")
	resolve := func(name string) (Type, bool) {
		if name == "ctx" {
			return ctx, true
		}
		return nil, false
	}

	typ, err := ParseType("ctx*", resolve)
	require.NoError(t, err)
	assert.Equal(t, "ctx*", typ.String())

	p, ok := typ.(Pointer)
	require.True(t, ok)
	assert.Same(t, ctx, p.Elem())
}

func TestParseTypeErrors(t *testing.T) {
	tests := []struct {
		name string
		expr string
		msg  string
	}{
		{"empty", "", "empty type expression"},
		{"blank", "   ", "empty type expression"},
		{"unknown name", "stream_t", `unknown type name "stream_t"`},
		{"trailing junk", "int32 &", `unexpected "&"`},
		{"only const", "const", "missing base type"},
		{"record missing align", "record<8>", `expected ","`},
		{"record not closed", "record<8, 8", `expected ">"`},
		{"record bad size", "record<x, 8>", `expected integer, got "x"`},
		{"record zero size", "record<0, 8>", "must be positive"},
		{"double base", "int32 int64", `unexpected "int64"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseType(tt.expr, nil)
			require.Error(t, err)

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Contains(t, pe.Message, tt.msg)
		})
	}
}

func TestLookupScalar(t *testing.T) {
	s, ok := LookupScalar("uint32")
	require.True(t, ok)
	assert.Equal(t, UInt32, s)

	_, ok = LookupScalar("float")
	assert.False(t, ok)
}
