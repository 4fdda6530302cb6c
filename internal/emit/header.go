package emit

import (
	"fmt"
	"strings"

	"github.com/roach88/ifgen/internal/builder"
	"github.com/roach88/ifgen/internal/ctype"
)

// Header emits the type-safe interface declaration.
type Header struct {
	name     string
	buf      strings.Builder
	finished bool
}

var _ builder.Emitter = (*Header)(nil)

// NewHeader creates a Header for the interface struct name and writes the
// prologue.
func NewHeader(name string) *Header {
	h := &Header{name: name}
	h.begin()
	return h
}

// begin writes the fixed scaffolding: includes, namespaces, the lifecycle
// entry points, the owned implementation handle, and the byte-offset
// primitives. set_ and get_ are the only place record layout is trusted;
// they perform no bounds or alignment checks.
func (h *Header) begin() {
	fmt.Fprintf(&h.buf, `#pragma once

#include <cstdint>
#include <cstdlib>
#include <memory>
#include <string>
#include <error.hpp>
#include <interfaces.hpp>

CHARM_SYCL_BEGIN_NAMESPACE

namespace runtime {

struct %[1]s {
    using this_type = %[1]s;

    static error::result<void> init();
    static void close();
    static void clear();
    static std::string version_str();

private:
    struct impl;
    static std::unique_ptr<impl> pimpl_;

    template <size_t Offset, class R, class T>
    [[maybe_unused]]
    static inline void set_(R& record, T val) {
        *reinterpret_cast<T*>(reinterpret_cast<std::byte*>(record.address()) + Offset) = val;
    }

    template <size_t Offset, class T, class R>
    [[maybe_unused]]
    static inline auto get_(R const& record) {
        return *reinterpret_cast<T const*>(reinterpret_cast<std::byte const*>(record.address()) + Offset);
    }

public:
`, h.name)
}

// TaggedType emits the strong alias for t.
func (h *Header) TaggedType(t *ctype.Tagged) {
	sentinel := ""
	if lit, ok := t.Sentinel(); ok {
		sentinel = fmt.Sprintf(", detail::init_val(%s)", lit)
	}
	fmt.Fprintf(&h.buf, "    using %s = detail::tagged_t<this_type, %s, detail::tag_name(\"%s\")%s>;\n",
		t.Name(), t.Base(), t.Tag(), sentinel)
}

// Constant emits a compile-time value of the declared type.
func (h *Header) Constant(c builder.Constant) {
	fmt.Fprintf(&h.buf, "    static constexpr auto %s = %s(%s);\n", c.Name, c.Type, c.Value)
}

// Fields emits one setter/getter pair per field.
func (h *Header) Fields(record ctype.Type, fields []builder.Field) {
	for _, f := range fields {
		fmt.Fprintf(&h.buf, `    static inline void set_%[1]s(%[2]s& x, %[3]s val) {
        set_<%[4]d>(x, val);
    }
    static inline auto get_%[1]s(%[2]s const& x) {
        return get_<%[4]d, %[3]s>(x);
    }
`, f.Name, record, f.Type, f.Offset)
	}
}

// Function emits the private entry-point slot and the public wrapper.
// The wrapper calls through a pointer of the fully erased signature,
// unwrapping each argument and wrapping the result back into the declared
// return type.
func (h *Header) Function(f builder.Function) {
	nativeReturn := ctype.MustErase(f.Return)

	nativeArgs := make([]string, len(f.Args))
	params := make([]string, len(f.Args))
	unwrapped := make([]string, len(f.Args))
	for i, arg := range f.Args {
		nativeArgs[i] = ctype.MustErase(arg).String()
		params[i] = fmt.Sprintf("%s param%d", arg, i)
		unwrapped[i] = fmt.Sprintf("detail::unwrap(param%d)", i)
	}

	fmt.Fprintf(&h.buf, `
private:
    static void* %[1]s_ptr;

public:
    static inline auto %[1]s(%[2]s) {
        using Fn = %[3]s (*)(%[4]s);
        return detail::wrap<%[5]s>(reinterpret_cast<Fn>(%[1]s_ptr)(%[6]s));
    }
`, f.Name, strings.Join(params, ", "), nativeReturn, strings.Join(nativeArgs, ", "), f.Return, strings.Join(unwrapped, ", "))
}

// Finish writes the epilogue and returns the header text. Later calls
// return the same text.
func (h *Header) Finish() string {
	if !h.finished {
		h.buf.WriteString(`};

}  // namespace runtime

CHARM_SYCL_END_NAMESPACE
`)
		h.finished = true
	}
	return h.buf.String()
}
