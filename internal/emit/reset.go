package emit

import (
	"fmt"
	"strings"

	"github.com/roach88/ifgen/internal/builder"
	"github.com/roach88/ifgen/internal/ctype"
)

// Reset emits the clear() routine: one statement per function nulling its
// slot, then the release of the implementation handle.
type Reset struct {
	name     string
	buf      strings.Builder
	finished bool
}

var _ builder.Emitter = (*Reset)(nil)

// NewReset creates a Reset emitter and opens the routine body.
func NewReset(name string) *Reset {
	r := &Reset{name: name}
	fmt.Fprintf(&r.buf, "void %s::clear() {\n", name)
	return r
}

func (r *Reset) TaggedType(*ctype.Tagged)           {}
func (r *Reset) Constant(builder.Constant)          {}
func (r *Reset) Fields(ctype.Type, []builder.Field) {}

// Function emits the clearing statement for the slot.
func (r *Reset) Function(f builder.Function) {
	fmt.Fprintf(&r.buf, "    %s_ptr = nullptr;\n", f.Name)
}

// Finish appends the release statement, closes the routine and returns
// its text. Later calls return the same text.
func (r *Reset) Finish() string {
	if !r.finished {
		r.buf.WriteString("    pimpl_.reset();\n}\n")
		r.finished = true
	}
	return r.buf.String()
}
