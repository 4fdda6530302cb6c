// Package render drives a declaration routine against the artifact
// emitters.
//
// The driver never validates: every artifact is derived by replaying the
// same routine, so a function cannot appear in one artifact and not
// another. An authoring error inside the routine (re-erasing a native
// type) panics and ends the pass; the driver does not recover.
package render

import (
	"fmt"
	"log/slog"

	"github.com/roach88/ifgen/internal/builder"
	"github.com/roach88/ifgen/internal/emit"
	"github.com/roach88/ifgen/internal/ir"
)

// Mode selects which artifacts a render produces.
type Mode string

const (
	// ModeHeader renders the type-safe interface header.
	ModeHeader Mode = "header"

	// ModeStorageReset renders the slot definitions followed by the
	// clear() routine.
	ModeStorageReset Mode = "storage+reset"
)

// ValidModes lists the accepted modes.
var ValidModes = []Mode{ModeHeader, ModeStorageReset}

// ParseMode parses a mode name. "vars" is accepted as an alias for
// storage+reset.
func ParseMode(s string) (Mode, error) {
	switch s {
	case string(ModeHeader):
		return ModeHeader, nil
	case string(ModeStorageReset), "vars":
		return ModeStorageReset, nil
	default:
		return "", fmt.Errorf("invalid mode %q: must be one of %v", s, ValidModes)
	}
}

// Render runs declare against the emitters selected by mode and returns
// the resulting text.
func Render(name string, mode Mode, declare builder.DeclareFunc) (string, error) {
	var out string
	switch mode {
	case ModeHeader:
		out = Header(name, declare)
	case ModeStorageReset:
		out = StorageReset(name, declare)
	default:
		return "", fmt.Errorf("invalid mode %q: must be one of %v", mode, ValidModes)
	}

	slog.Debug("rendered interface",
		"interface", name,
		"mode", string(mode),
		"bytes", len(out))
	return out, nil
}

// Header runs declare once against a Header emitter.
func Header(name string, declare builder.DeclareFunc) string {
	h := emit.NewHeader(name)
	declare(builder.New(h))
	return h.Finish()
}

// StorageReset runs declare once against a Storage emitter and once
// against a Reset emitter, joining the texts with a blank line.
func StorageReset(name string, declare builder.DeclareFunc) string {
	s := emit.NewStorage(name)
	declare(builder.New(s))

	r := emit.NewReset(name)
	declare(builder.New(r))

	return s.Finish() + "\n" + r.Finish()
}

// Trace runs declare against a Trace emitter and returns the recorded
// declarations.
func Trace(declare builder.DeclareFunc) []ir.Decl {
	t := emit.NewTrace()
	declare(builder.New(t))
	return t.Decls()
}

// Fingerprint returns the content-addressed identity of the declarations
// issued by declare for the named interface.
func Fingerprint(name string, declare builder.DeclareFunc) (string, error) {
	return ir.Fingerprint(name, Trace(declare))
}
