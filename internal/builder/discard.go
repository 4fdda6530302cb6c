package builder

import "github.com/roach88/ifgen/internal/ctype"

// Discard is an Emitter that drops every declaration. It is used to dry-run
// a declaration routine.
var Discard Emitter = discard{}

type discard struct{}

func (discard) TaggedType(*ctype.Tagged)   {}
func (discard) Constant(Constant)          {}
func (discard) Fields(ctype.Type, []Field) {}
func (discard) Function(Function)          {}
