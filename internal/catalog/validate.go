package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/roach88/ifgen/internal/ctype"
)

// Validation error codes (E201-E299)
const (
	ErrInterfaceMissing  = "E201" // interface name is required
	ErrUnknownKind       = "E202" // kind is not one of Kinds
	ErrMissingAttribute  = "E203" // a required attribute for the kind is empty
	ErrDuplicateName     = "E204" // name declared twice
	ErrBadTypeExpression = "E205" // type expression malformed or names an undeclared type
	ErrNegativeOffset    = "E206" // field offset below zero
	ErrNotRecordBacked   = "E207" // fields target is not a record-backed type
	ErrInvalidIdentifier = "E208" // name is not a valid identifier
)

// ValidationError represents one catalog validation failure.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// ValidationErrors is returned when a catalog fails validation.
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return fmt.Sprintf("catalog has %d validation error(s):\n  %s", len(errs), strings.Join(msgs, "\n  "))
}

var identifierRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// scope resolves type names declared by earlier entries.
type scope struct {
	types map[string]ctype.Type
}

func newScope() *scope {
	return &scope{types: make(map[string]ctype.Type)}
}

func (s *scope) resolve(name string) (ctype.Type, bool) {
	t, ok := s.types[name]
	return t, ok
}

func (s *scope) parse(expr string) (ctype.Type, error) {
	return ctype.ParseType(expr, s.resolve)
}

// Validate checks c and returns all errors found (does not fail-fast).
// Entries are checked in order, so a type expression may only refer to
// types declared before it.
func Validate(c *Catalog) []ValidationError {
	v := &validator{scope: newScope(), names: make(map[string]string), members: make(map[string]map[string]bool)}

	if c.Interface == "" {
		v.add("interface", ErrInterfaceMissing, "interface name is required")
	} else if !identifierRe.MatchString(c.Interface) {
		v.add("interface", ErrInvalidIdentifier, fmt.Sprintf("%q is not a valid identifier", c.Interface))
	}

	for i, d := range c.Declarations {
		v.declaration(i, d)
	}
	return v.errs
}

type validator struct {
	scope   *scope
	names   map[string]string          // declared name -> label of first declaration
	members map[string]map[string]bool // record type -> field names
	errs    []ValidationError
}

func (v *validator) add(field, code, msg string) {
	v.errs = append(v.errs, ValidationError{Field: field, Message: msg, Code: code})
}

func (v *validator) declaration(i int, d Declaration) {
	at := d.label(i)

	if !d.Kind.valid() {
		v.add(at, ErrUnknownKind, fmt.Sprintf("unknown kind %q, must be one of %v", d.Kind, Kinds))
		return
	}

	switch d.Kind {
	case KindTagged:
		v.require(at, "name", d.Name)
		v.require(at, "base", d.Base)
		v.require(at, "tag", d.Tag)
		base := v.typeExpr(at, "base", d.Base)
		if base == nil {
			base = ctype.Void
		}
		v.declareType(at, d.Name, ctype.NewTagged(d.Name, base, d.Tag))

	case KindEnum:
		v.require(at, "name", d.Name)
		v.require(at, "tag", d.Tag)
		v.declareType(at, d.Name, ctype.NewTagged(d.Name, ctype.Int32, d.Tag))

	case KindOpaquePtr:
		v.require(at, "name", d.Name)
		v.require(at, "tag", d.Tag)
		v.declareType(at, d.Name, ctype.NewTagged(d.Name, ctype.VoidPtr(), d.Tag))

	case KindConstant:
		v.require(at, "name", d.Name)
		v.require(at, "type", d.Type)
		v.require(at, "value", d.Value)
		v.typeExpr(at, "type", d.Type)
		v.declareName(at, d.Name)

	case KindFields:
		v.require(at, "record", d.Record)
		rec := v.typeExpr(at, "record", d.Record)
		if rec != nil && !recordBacked(rec) {
			v.add(at+".record", ErrNotRecordBacked, fmt.Sprintf("%s is not a record-backed type", rec))
		}
		seen := v.members[d.Record]
		if seen == nil {
			seen = make(map[string]bool)
			v.members[d.Record] = seen
		}
		for j, f := range d.Fields {
			fat := fmt.Sprintf("%s.fields[%d]", at, j)
			v.require(fat, "name", f.Name)
			v.require(fat, "type", f.Type)
			v.typeExpr(fat, "type", f.Type)
			if f.Offset < 0 {
				v.add(fat+".offset", ErrNegativeOffset, fmt.Sprintf("offset %d is negative", f.Offset))
			}
			if f.Name == "" {
				continue
			}
			if !identifierRe.MatchString(f.Name) {
				v.add(fat+".name", ErrInvalidIdentifier, fmt.Sprintf("%q is not a valid identifier", f.Name))
			}
			if seen[f.Name] {
				v.add(fat+".name", ErrDuplicateName, fmt.Sprintf("field %q already declared for %s", f.Name, d.Record))
			}
			seen[f.Name] = true
		}

	case KindFunction:
		v.require(at, "name", d.Name)
		v.require(at, "returns", d.Returns)
		v.typeExpr(at, "returns", d.Returns)
		for j, a := range d.Args {
			v.typeExpr(at, fmt.Sprintf("args[%d]", j), a)
		}
		v.declareName(at, d.Name)
	}
}

func (v *validator) require(at, attr, value string) {
	if value == "" {
		v.add(at+"."+attr, ErrMissingAttribute, attr+" is required")
	}
}

// typeExpr parses expr, recording an error on failure. Empty expressions
// are reported by require and return nil here.
func (v *validator) typeExpr(at, attr, expr string) ctype.Type {
	if expr == "" {
		return nil
	}
	t, err := v.scope.parse(expr)
	if err != nil {
		var perr *ctype.ParseError
		msg := err.Error()
		if errors.As(err, &perr) {
			msg = fmt.Sprintf("%q: %s", perr.Expr, perr.Message)
		}
		v.add(at+"."+attr, ErrBadTypeExpression, msg)
		return nil
	}
	return t
}

func (v *validator) declareName(at, name string) bool {
	if name == "" {
		return false
	}
	if !identifierRe.MatchString(name) {
		v.add(at+".name", ErrInvalidIdentifier, fmt.Sprintf("%q is not a valid identifier", name))
		return false
	}
	if first, dup := v.names[name]; dup {
		v.add(at+".name", ErrDuplicateName, fmt.Sprintf("%q already declared by %s", name, first))
		return false
	}
	v.names[name] = at
	return true
}

func (v *validator) declareType(at, name string, t *ctype.Tagged) {
	if v.declareName(at, name) {
		v.scope.types[name] = t
	}
}

// recordBacked reports whether fields can be attached to t.
func recordBacked(t ctype.Type) bool {
	switch v := t.(type) {
	case *ctype.Record:
		return true
	case *ctype.Tagged:
		_, ok := v.Base().(*ctype.Record)
		return ok
	default:
		return false
	}
}
