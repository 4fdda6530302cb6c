package emit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/ifgen/internal/builder"
	"github.com/roach88/ifgen/internal/ctype"
)

// balanced reports whether every bracket class opens and closes the same
// number of times.
func balanced(s string) bool {
	pairs := map[rune]rune{'(': ')', '{': '}', '<': '>', '[': ']'}
	for open, closing := range pairs {
		if strings.Count(s, string(open)) != strings.Count(s, string(closing)) {
			return false
		}
	}
	return true
}

func TestHeader_Empty(t *testing.T) {
	out := NewHeader("foo_interface").Finish()

	assert.True(t, strings.HasPrefix(out, "#pragma once\n"))
	assert.Contains(t, out, "struct foo_interface {\n    using this_type = foo_interface;\n")
	assert.Contains(t, out, "    static error::result<void> init();\n")
	assert.Contains(t, out, "    static void close();\n")
	assert.Contains(t, out, "    static void clear();\n")
	assert.Contains(t, out, "    static std::string version_str();\n")
	assert.Contains(t, out, "    static std::unique_ptr<impl> pimpl_;\n")
	assert.True(t, strings.HasSuffix(out, "public:\n};\n\n}  // namespace runtime\n\nCHARM_SYCL_END_NAMESPACE\n"))
	assert.True(t, balanced(out), "unbalanced brackets in:\n%s", out)
}

func TestHeader_FinishIdempotent(t *testing.T) {
	h := NewHeader("x")
	first := h.Finish()
	assert.Equal(t, first, h.Finish())
	assert.Equal(t, 1, strings.Count(first, "CHARM_SYCL_END_NAMESPACE"))
}

func TestHeader_TaggedType(t *testing.T) {
	h := NewHeader("x")
	b := builder.New(h)

	b.DefineTaggedType("device_t", ctype.Int32, "CUdevice")
	b.DefineTaggedTypeWithSentinel("device2_t", ctype.Int32, "CUdevice", "-2")
	out := h.Finish()

	plain := "    using device_t = detail::tagged_t<this_type, int32_t, detail::tag_name(\"CUdevice\")>;\n"
	withSentinel := "    using device2_t = detail::tagged_t<this_type, int32_t, detail::tag_name(\"CUdevice\"), detail::init_val(-2)>;\n"
	assert.Contains(t, out, plain)
	assert.Contains(t, out, withSentinel)

	// The two aliases differ only in name and the trailing sentinel.
	stripped := strings.Replace(withSentinel, ", detail::init_val(-2)", "", 1)
	stripped = strings.Replace(stripped, "device2_t", "device_t", 1)
	assert.Equal(t, plain, stripped)
}

func TestHeader_OpaqueAndEnum(t *testing.T) {
	h := NewHeader("x")
	b := builder.New(h)

	b.DefineOpaquePtr("stream_t", "CUstream")
	b.DefineEnum("result_t", "CUresult")
	out := h.Finish()

	assert.Contains(t, out, "    using stream_t = detail::tagged_t<this_type, void*, detail::tag_name(\"CUstream\")>;\n")
	assert.Contains(t, out, "    using result_t = detail::tagged_t<this_type, int32_t, detail::tag_name(\"CUresult\")>;\n")
}

func TestHeader_Constant(t *testing.T) {
	h := NewHeader("x")
	b := builder.New(h)

	status := b.DefineEnum("status_t", "Status")
	b.DefineConstant("k_OK", status, "0")
	b.DefineConstant("k_MAX", ctype.UInt64, "0xffffffffffffffff")
	out := h.Finish()

	assert.Contains(t, out, "    static constexpr auto k_OK = status_t(0);\n")
	assert.Contains(t, out, "    static constexpr auto k_MAX = uint64_t(0xffffffffffffffff);\n")
}

func TestHeader_Fields(t *testing.T) {
	h := NewHeader("x")
	b := builder.New(h)

	rec := b.DefineTaggedType("copy_t", ctype.NewRecord(16, 8), "COPY")
	b.DefineFields(rec,
		builder.Field{Name: "width", Type: ctype.UInt64, Offset: 0},
		builder.Field{Name: "src", Type: ctype.VoidConstPtr(), Offset: 8},
	)
	out := h.Finish()

	want := `    static inline void set_width(copy_t& x, uint64_t val) {
        set_<0>(x, val);
    }
    static inline auto get_width(copy_t const& x) {
        return get_<0, uint64_t>(x);
    }
    static inline void set_src(copy_t& x, void const* val) {
        set_<8>(x, val);
    }
    static inline auto get_src(copy_t const& x) {
        return get_<8, void const*>(x);
    }
`
	assert.Contains(t, out, want)
	assert.Equal(t, 2, strings.Count(out, "static inline void set_"))
	assert.Equal(t, 2, strings.Count(out, "static inline auto get_"))
	assert.Contains(t, out, "using copy_t = detail::tagged_t<this_type, detail::record_type<16, 8>, detail::tag_name(\"COPY\")>;")
	assert.True(t, balanced(out))
}

func TestHeader_FieldsEmpty(t *testing.T) {
	h := NewHeader("x")
	before := h.buf.String()
	builder.New(h).DefineFields(ctype.NewRecord(8, 8))
	assert.Equal(t, before, h.buf.String())
}

func TestHeader_Function(t *testing.T) {
	h := NewHeader("x")
	b := builder.New(h)

	ctx := b.DefineOpaquePtr("ctx_t", "Ctx")
	status := b.DefineEnum("status_t", "Status")
	b.DefineFunction("open", status, ctype.PointerTo(ctx), ctype.UInt32)
	out := h.Finish()

	want := `
private:
    static void* open_ptr;

public:
    static inline auto open(ctx_t* param0, uint32_t param1) {
        using Fn = typename status_t::native (*)(typename ctx_t::native*, uint32_t);
        return detail::wrap<status_t>(reinterpret_cast<Fn>(open_ptr)(detail::unwrap(param0), detail::unwrap(param1)));
    }
`
	assert.Contains(t, out, want)
	assert.True(t, balanced(out))
}

func TestHeader_FunctionNoArgs(t *testing.T) {
	h := NewHeader("x")
	builder.New(h).DefineFunction("shutdown", ctype.Void)
	out := h.Finish()

	assert.Contains(t, out, "    static inline auto shutdown() {\n")
	assert.Contains(t, out, "        using Fn = void (*)();\n")
	assert.Contains(t, out, "        return detail::wrap<void>(reinterpret_cast<Fn>(shutdown_ptr)());\n")
}

func TestHeader_FunctionRecordPointer(t *testing.T) {
	h := NewHeader("x")
	b := builder.New(h)

	copy2d := b.DefineTaggedType("copy_t", ctype.NewRecord(128, 8), "COPY")
	b.DefineFunction("do_copy", ctype.Int32, ctype.ConstPointerTo(copy2d))
	out := h.Finish()

	assert.Contains(t, out, "static inline auto do_copy(copy_t const* param0) {")
	assert.Contains(t, out, "using Fn = int32_t (*)(typename copy_t::native const*);")
}

func TestHeader_FunctionRejectsNative(t *testing.T) {
	h := NewHeader("x")
	native := ctype.MustErase(ctype.NewTagged("t", ctype.Int32, "T"))

	assert.PanicsWithError(t, "erase typename t::native: type is already in native form", func() {
		builder.New(h).DefineFunction("bad", ctype.Int32, native)
	})
}

func TestHeader_Interleaving(t *testing.T) {
	h := NewHeader("x")
	b := builder.New(h)

	b.DefineFunction("first", ctype.Void)
	b.DefineEnum("mid_t", "Mid")
	b.DefineFunction("second", ctype.Void)
	out := h.Finish()

	i1 := strings.Index(out, "auto first(")
	i2 := strings.Index(out, "using mid_t")
	i3 := strings.Index(out, "auto second(")
	require.True(t, i1 >= 0 && i2 >= 0 && i3 >= 0)
	assert.Less(t, i1, i2)
	assert.Less(t, i2, i3)
}
