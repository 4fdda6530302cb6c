package catalog

import "fmt"

// Kind identifies a catalog declaration.
type Kind string

const (
	KindTagged    Kind = "tagged"
	KindEnum      Kind = "enum"
	KindOpaquePtr Kind = "opaque_ptr"
	KindConstant  Kind = "constant"
	KindFields    Kind = "fields"
	KindFunction  Kind = "function"
)

// Kinds lists the accepted declaration kinds.
var Kinds = []Kind{KindTagged, KindEnum, KindOpaquePtr, KindConstant, KindFields, KindFunction}

func (k Kind) valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// Catalog is a declarative declaration routine.
type Catalog struct {
	Interface    string        `json:"interface" yaml:"interface" toml:"interface"`
	Declarations []Declaration `json:"declarations" yaml:"declarations" toml:"declarations"`
}

// Declaration is one catalog entry. Which attributes apply depends on Kind:
//   - tagged: Name, Base, Tag, Sentinel (optional)
//   - enum, opaque_ptr: Name, Tag
//   - constant: Name, Type, Value
//   - fields: Record, Fields
//   - function: Name, Returns, Args
//
// Base, Type, Record, Returns and Args hold type expressions.
type Declaration struct {
	Kind     Kind         `json:"kind" yaml:"kind" toml:"kind"`
	Name     string       `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Base     string       `json:"base,omitempty" yaml:"base,omitempty" toml:"base,omitempty"`
	Tag      string       `json:"tag,omitempty" yaml:"tag,omitempty" toml:"tag,omitempty"`
	Sentinel string       `json:"sentinel,omitempty" yaml:"sentinel,omitempty" toml:"sentinel,omitempty"`
	Type     string       `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty"`
	Value    string       `json:"value,omitempty" yaml:"value,omitempty" toml:"value,omitempty"`
	Record   string       `json:"record,omitempty" yaml:"record,omitempty" toml:"record,omitempty"`
	Fields   []FieldEntry `json:"fields,omitempty" yaml:"fields,omitempty" toml:"fields,omitempty"`
	Returns  string       `json:"returns,omitempty" yaml:"returns,omitempty" toml:"returns,omitempty"`
	Args     []string     `json:"args,omitempty" yaml:"args,omitempty" toml:"args,omitempty"`
}

// FieldEntry is one record member.
type FieldEntry struct {
	Name   string `json:"name" yaml:"name" toml:"name"`
	Type   string `json:"type" yaml:"type" toml:"type"`
	Offset int    `json:"offset" yaml:"offset" toml:"offset"`
}

// label names an entry in diagnostics.
func (d Declaration) label(index int) string {
	if d.Name != "" {
		return fmt.Sprintf("declarations[%d] (%s)", index, d.Name)
	}
	if d.Record != "" {
		return fmt.Sprintf("declarations[%d] (fields of %s)", index, d.Record)
	}
	return fmt.Sprintf("declarations[%d]", index)
}
