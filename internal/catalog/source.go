package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/roach88/ifgen/internal/builder"
)

// Builtin is a declaration routine compiled into the binary.
type Builtin struct {
	Name        string
	Interface   string
	Description string
	Declare     builder.DeclareFunc
}

var builtins = map[string]Builtin{
	"cuda": {
		Name:        "cuda",
		Interface:   CUDAInterface,
		Description: "CUDA driver API (contexts, memory, modules, streams)",
		Declare:     DeclareCUDA,
	},
}

// Builtins returns the built-in routines sorted by name.
func Builtins() []Builtin {
	out := make([]Builtin, 0, len(builtins))
	for _, b := range builtins {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Source is a declaration routine ready to render.
type Source struct {
	Interface string
	Origin    string // "builtin:NAME" or the catalog file path
	Declare   builder.DeclareFunc
}

// FromBuiltin resolves a built-in routine by name.
func FromBuiltin(name string) (*Source, error) {
	b, ok := builtins[name]
	if !ok {
		names := make([]string, 0, len(builtins))
		for _, b := range Builtins() {
			names = append(names, b.Name)
		}
		return nil, fmt.Errorf("unknown builtin catalog %q (available: %s)", name, strings.Join(names, ", "))
	}
	return &Source{Interface: b.Interface, Origin: "builtin:" + b.Name, Declare: b.Declare}, nil
}

// FromFile loads, validates and compiles a catalog document.
func FromFile(path string) (*Source, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}
	declare, err := c.Declarer()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &Source{Interface: c.Interface, Origin: path, Declare: declare}, nil
}
