package emit

import (
	"fmt"
	"strings"

	"github.com/roach88/ifgen/internal/builder"
	"github.com/roach88/ifgen/internal/ctype"
)

// Storage emits the definition of every function's entry-point slot.
// Constants, fields and tagged types carry no storage and are ignored.
type Storage struct {
	name string
	buf  strings.Builder
}

var _ builder.Emitter = (*Storage)(nil)

// NewStorage creates a Storage emitter for the interface struct name.
func NewStorage(name string) *Storage {
	return &Storage{name: name}
}

func (s *Storage) TaggedType(*ctype.Tagged)           {}
func (s *Storage) Constant(builder.Constant)          {}
func (s *Storage) Fields(ctype.Type, []builder.Field) {}

// Function emits the slot definition, initialized to unset.
func (s *Storage) Function(f builder.Function) {
	fmt.Fprintf(&s.buf, "void* %s::%s_ptr = nullptr;\n", s.name, f.Name)
}

// Finish returns the slot definitions.
func (s *Storage) Finish() string {
	return s.buf.String()
}
