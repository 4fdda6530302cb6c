package emit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/ifgen/internal/builder"
	"github.com/roach88/ifgen/internal/ctype"
)

func TestReset(t *testing.T) {
	r := NewReset("cuda_interface")
	b := builder.New(r)

	b.DefineOpaquePtr("ctx_t", "Ctx")
	b.DefineFunction("open", ctype.Int32)
	b.DefineFunction("close_it", ctype.Int32)

	want := "void cuda_interface::clear() {\n" +
		"    open_ptr = nullptr;\n" +
		"    close_it_ptr = nullptr;\n" +
		"    pimpl_.reset();\n" +
		"}\n"
	assert.Equal(t, want, r.Finish())
	assert.True(t, balanced(want))
}

func TestReset_Empty(t *testing.T) {
	assert.Equal(t, "void x::clear() {\n    pimpl_.reset();\n}\n", NewReset("x").Finish())
}

func TestReset_FinishIdempotent(t *testing.T) {
	r := NewReset("x")
	assert.Equal(t, r.Finish(), r.Finish())
}
