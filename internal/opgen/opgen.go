// Package opgen generates the fixed-rank index and extent classes
// (id<N> and range<N>) with their full operator overload sets.
//
// Output is produced from text/template sources embedded in the binary.
// Decl mode renders the class declaration and deduction guide; otherwise
// the out-of-line definitions are rendered.
package opgen

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// MaxDim is the highest supported rank.
const MaxDim = 3

// Target selects the generated class.
type Target string

const (
	TargetID    Target = "id"
	TargetRange Target = "range"
)

// ParseTarget parses a target name.
func ParseTarget(s string) (Target, error) {
	switch Target(s) {
	case TargetID, TargetRange:
		return Target(s), nil
	default:
		return "", fmt.Errorf("invalid target %q: must be %q or %q", s, TargetID, TargetRange)
	}
}

// Config is one generator invocation.
type Config struct {
	Target Target
	Dim    int
	Decl   bool
}

// Validate checks the target and rank.
func (c Config) Validate() error {
	if _, err := ParseTarget(string(c.Target)); err != nil {
		return err
	}
	if c.Dim < 1 || c.Dim > MaxDim {
		return fmt.Errorf("invalid dim %d: must be between 1 and %d", c.Dim, MaxDim)
	}
	return nil
}

// Name is the class template name.
func (c Config) Name() string { return string(c.Target) }

// IsID reports whether the index class is generated.
func (c Config) IsID() bool { return c.Target == TargetID }

// FileName is the conventional header name, e.g. id_2.hpp or
// range_3_def.hpp.
func (c Config) FileName() string {
	if c.Decl {
		return fmt.Sprintf("%s_%d.hpp", c.Target, c.Dim)
	}
	return fmt.Sprintf("%s_%d_def.hpp", c.Target, c.Dim)
}

// Render returns the generated source for c.
func Render(c Config) (string, error) {
	var buf bytes.Buffer
	if err := Write(&buf, c); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Write renders c to w.
func Write(w io.Writer, c Config) error {
	if err := c.Validate(); err != nil {
		return err
	}
	name := "definition.tmpl"
	if c.Decl {
		name = "declaration.tmpl"
	}
	if err := templates.ExecuteTemplate(w, name, newView(c)); err != nil {
		return fmt.Errorf("render %s: %w", c.FileName(), err)
	}
	return nil
}

// view is the template data for one class.
type view struct {
	Name   string // id | range
	Type   string // id<2>
	Dim    int
	IsID   bool
	Member string // id_ | range_
	Ops    []Op
}

func newView(c Config) view {
	return view{
		Name:   c.Name(),
		Type:   fmt.Sprintf("%s<%d>", c.Name(), c.Dim),
		Dim:    c.Dim,
		IsID:   c.IsID(),
		Member: c.Name() + "_",
		Ops:    Ops,
	}
}

// Indices returns 0..Dim-1.
func (v view) Indices() []int {
	out := make([]int, v.Dim)
	for i := range out {
		out[i] = i
	}
	return out
}

// Params is the per-dimension constructor parameter list.
func (v view) Params() string {
	return v.Each("size_t dim@", ", ")
}

// GuideParams is the deduction guide parameter list.
func (v view) GuideParams() string {
	return v.Each("size_t", ", ")
}

// Each expands format once per dimension, replacing "@" with the index
// and "$M" with the storage member, and joins the results with sep.
func (v view) Each(format, sep string) string {
	parts := make([]string, v.Dim)
	for i := range parts {
		s := strings.ReplaceAll(format, "$M", v.Member)
		parts[i] = strings.ReplaceAll(s, "@", strconv.Itoa(i))
	}
	return strings.Join(parts, sep)
}
