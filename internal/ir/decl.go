package ir

// DeclKind identifies the kind of a recorded declaration.
type DeclKind string

const (
	KindTagged   DeclKind = "tagged"
	KindConstant DeclKind = "constant"
	KindFields   DeclKind = "fields"
	KindFunction DeclKind = "function"
)

// Decl is one recorded declaration, in sequence order.
//
// Which attributes are set depends on Kind:
//   - tagged: Name, Type (base), Tag, Sentinel (optional)
//   - constant: Name, Type, Value
//   - fields: Type (record), Fields
//   - function: Name, Return, Args
type Decl struct {
	Seq      int64       `json:"seq"`
	Kind     DeclKind    `json:"kind"`
	Name     string      `json:"name,omitempty"`
	Type     string      `json:"type,omitempty"`
	Tag      string      `json:"tag,omitempty"`
	Sentinel *string     `json:"sentinel,omitempty"`
	Value    string      `json:"value,omitempty"`
	Return   string      `json:"return,omitempty"`
	Args     []string    `json:"args,omitempty"`
	Fields   []FieldDecl `json:"fields,omitempty"`
}

// FieldDecl is a record field at a byte offset.
type FieldDecl struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Offset int64  `json:"offset"`
}

// Canonical converts the declaration to an Object for canonical hashing.
// Empty attributes are omitted, matching the JSON form.
func (d Decl) Canonical() Object {
	obj := Object{
		"seq":  Int(d.Seq),
		"kind": String(d.Kind),
	}
	if d.Name != "" {
		obj["name"] = String(d.Name)
	}
	if d.Type != "" {
		obj["type"] = String(d.Type)
	}
	if d.Tag != "" {
		obj["tag"] = String(d.Tag)
	}
	if d.Sentinel != nil {
		obj["sentinel"] = String(*d.Sentinel)
	}
	if d.Value != "" {
		obj["value"] = String(d.Value)
	}
	if d.Return != "" {
		obj["return"] = String(d.Return)
	}
	if len(d.Args) > 0 {
		args := make(Array, len(d.Args))
		for i, a := range d.Args {
			args[i] = String(a)
		}
		obj["args"] = args
	}
	if len(d.Fields) > 0 {
		fields := make(Array, len(d.Fields))
		for i, f := range d.Fields {
			fields[i] = Object{
				"name":   String(f.Name),
				"type":   String(f.Type),
				"offset": Int(f.Offset),
			}
		}
		obj["fields"] = fields
	}
	return obj
}

// Summary counts declarations by kind. Fields counts individual fields,
// not field groups.
type Summary struct {
	TaggedTypes int `json:"tagged_types"`
	Constants   int `json:"constants"`
	Fields      int `json:"fields"`
	Functions   int `json:"functions"`
}

// Summarize counts the declarations in decls.
func Summarize(decls []Decl) Summary {
	var s Summary
	for _, d := range decls {
		switch d.Kind {
		case KindTagged:
			s.TaggedTypes++
		case KindConstant:
			s.Constants++
		case KindFields:
			s.Fields += len(d.Fields)
		case KindFunction:
			s.Functions++
		}
	}
	return s
}
