package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"strconv"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
)

//go:embed schema.cue
var schemaSource string

// CompileError is a CUE catalog value that does not fit the Catalog model.
type CompileError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func parseCUE(data []byte, filename string) (*Catalog, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("catalog schema: %w", err)
	}

	doc := ctx.CompileBytes(data, cue.Filename(filename))
	if err := doc.Err(); err != nil {
		return nil, toLoadError(filename, formatCUEError(err))
	}

	v := schema.LookupPath(cue.ParsePath("#Catalog")).Unify(doc)
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, toLoadError(filename, formatCUEError(err))
	}

	c, err := CompileCatalog(v)
	if err != nil {
		return nil, toLoadError(filename, err)
	}
	return c, nil
}

// toLoadError keeps CUE positions when wrapping a compile failure.
func toLoadError(filename string, err error) *LoadError {
	var compileErr *CompileError
	if errors.As(err, &compileErr) {
		return &LoadError{
			Code:    ErrCodeCUEFailed,
			Path:    filename,
			Message: fmt.Sprintf("%s: %s", compileErr.Field, compileErr.Message),
			Pos:     compileErr.Pos,
		}
	}
	return &LoadError{Code: ErrCodeCUEFailed, Path: filename, Message: err.Error()}
}

// CompileCatalog converts a CUE value shaped like #Catalog into a Catalog.
//
//	ctx := cuecontext.New()
//	v := ctx.CompileString(`interface: "demo", declarations: []`)
//	c, err := CompileCatalog(v)
func CompileCatalog(v cue.Value) (*Catalog, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	c := &Catalog{}

	ifaceVal := v.LookupPath(cue.ParsePath("interface"))
	if !ifaceVal.Exists() {
		return nil, &CompileError{
			Field:   "interface",
			Message: "interface is required",
			Pos:     v.Pos(),
		}
	}
	iface, err := ifaceVal.String()
	if err != nil {
		return nil, formatCUEError(err)
	}
	c.Interface = iface

	declsVal := v.LookupPath(cue.ParsePath("declarations"))
	if !declsVal.Exists() {
		return c, nil
	}
	iter, err := declsVal.List()
	if err != nil {
		return nil, formatCUEError(err)
	}
	for i := 0; iter.Next(); i++ {
		d, err := compileDeclaration(iter.Value(), fmt.Sprintf("declarations[%d]", i))
		if err != nil {
			return nil, err
		}
		c.Declarations = append(c.Declarations, d)
	}

	return c, nil
}

func compileDeclaration(v cue.Value, path string) (Declaration, error) {
	var d Declaration

	kind, err := requiredString(v, path, "kind")
	if err != nil {
		return d, err
	}
	d.Kind = Kind(kind)

	strs := []struct {
		field string
		dst   *string
	}{
		{"name", &d.Name},
		{"base", &d.Base},
		{"tag", &d.Tag},
		{"sentinel", &d.Sentinel},
		{"type", &d.Type},
		{"record", &d.Record},
		{"returns", &d.Returns},
	}
	for _, s := range strs {
		if *s.dst, err = optionalString(v, path, s.field); err != nil {
			return d, err
		}
	}

	if d.Value, err = literal(v, path, "value"); err != nil {
		return d, err
	}

	if argsVal := v.LookupPath(cue.ParsePath("args")); argsVal.Exists() {
		iter, err := argsVal.List()
		if err != nil {
			return d, formatCUEError(err)
		}
		for iter.Next() {
			arg, err := iter.Value().String()
			if err != nil {
				return d, &CompileError{Field: path + ".args", Message: "arguments must be strings", Pos: iter.Value().Pos()}
			}
			d.Args = append(d.Args, arg)
		}
	}

	if fieldsVal := v.LookupPath(cue.ParsePath("fields")); fieldsVal.Exists() {
		iter, err := fieldsVal.List()
		if err != nil {
			return d, formatCUEError(err)
		}
		for i := 0; iter.Next(); i++ {
			f, err := compileField(iter.Value(), fmt.Sprintf("%s.fields[%d]", path, i))
			if err != nil {
				return d, err
			}
			d.Fields = append(d.Fields, f)
		}
	}

	return d, nil
}

func compileField(v cue.Value, path string) (FieldEntry, error) {
	var f FieldEntry
	var err error

	if f.Name, err = requiredString(v, path, "name"); err != nil {
		return f, err
	}
	if f.Type, err = requiredString(v, path, "type"); err != nil {
		return f, err
	}

	offVal := v.LookupPath(cue.ParsePath("offset"))
	if !offVal.Exists() {
		return f, &CompileError{Field: path + ".offset", Message: "offset is required", Pos: v.Pos()}
	}
	off, err := offVal.Int64()
	if err != nil {
		return f, &CompileError{Field: path + ".offset", Message: "offset must be an integer", Pos: offVal.Pos()}
	}
	f.Offset = int(off)
	return f, nil
}

func requiredString(v cue.Value, path, field string) (string, error) {
	fv := v.LookupPath(cue.ParsePath(field))
	if !fv.Exists() {
		return "", &CompileError{Field: path + "." + field, Message: field + " is required", Pos: v.Pos()}
	}
	s, err := fv.String()
	if err != nil {
		return "", &CompileError{Field: path + "." + field, Message: "must be a string", Pos: fv.Pos()}
	}
	return s, nil
}

func optionalString(v cue.Value, path, field string) (string, error) {
	fv := v.LookupPath(cue.ParsePath(field))
	if !fv.Exists() {
		return "", nil
	}
	s, err := fv.String()
	if err != nil {
		return "", &CompileError{Field: path + "." + field, Message: "must be a string", Pos: fv.Pos()}
	}
	return s, nil
}

// literal accepts a string or an integer; integers are formatted in
// decimal.
func literal(v cue.Value, path, field string) (string, error) {
	fv := v.LookupPath(cue.ParsePath(field))
	if !fv.Exists() {
		return "", nil
	}
	if s, err := fv.String(); err == nil {
		return s, nil
	}
	if n, err := fv.Int64(); err == nil {
		return strconv.FormatInt(n, 10), nil
	}
	return "", &CompileError{Field: path + "." + field, Message: "must be a string or an integer", Pos: fv.Pos()}
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	// Return first error with position info
	first := errs[0]
	positions := cueerrors.Positions(first)
	if len(positions) > 0 {
		return &CompileError{
			Field:   "cue",
			Message: first.Error(),
			Pos:     positions[0],
		}
	}

	return err
}
