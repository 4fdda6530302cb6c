package ctype

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// scalarNames maps accepted scalar spellings in type expressions.
// Both the short form (int32) and the native spelling (int32_t) are accepted.
var scalarNames = map[string]Scalar{
	"char":     Char,
	"int8":     Int8,
	"int8_t":   Int8,
	"int16":    Int16,
	"int16_t":  Int16,
	"int32":    Int32,
	"int32_t":  Int32,
	"int64":    Int64,
	"int64_t":  Int64,
	"uint8":    UInt8,
	"uint8_t":  UInt8,
	"uint16":   UInt16,
	"uint16_t": UInt16,
	"uint32":   UInt32,
	"uint32_t": UInt32,
	"uint64":   UInt64,
	"uint64_t": UInt64,
	"usize":    USize,
	"size_t":   USize,
	"void":     Void,
}

// LookupScalar returns the scalar for a spelling accepted by ParseType.
func LookupScalar(name string) (Scalar, bool) {
	s, ok := scalarNames[name]
	return s, ok
}

// Resolver looks up a previously declared named type.
type Resolver func(name string) (Type, bool)

// ParseError describes a malformed type expression.
type ParseError struct {
	Expr    string
	Offset  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("type %q at offset %d: %s", e.Expr, e.Offset, e.Message)
}

// ParseType parses a type expression as written in catalog files.
//
// Grammar:
//
//	expr   := ["const"] base { "*" | "const" }
//	base   := scalar | "record" "<" int "," int ">" | name
//
// Names are resolved with resolve; resolve may be nil when only scalars and
// records are expected. Native forms cannot be written.
func ParseType(expr string, resolve Resolver) (Type, error) {
	p := &typeParser{expr: expr, toks: tokenize(expr)}
	t, err := p.parse(resolve)
	if err != nil {
		return nil, err
	}
	return t, nil
}

type token struct {
	text string
	pos  int
}

func tokenize(s string) []token {
	var toks []token
	i := 0
	for i < len(s) {
		r := rune(s[i])
		switch {
		case unicode.IsSpace(r):
			i++
		case r == '*' || r == '<' || r == '>' || r == ',':
			toks = append(toks, token{text: string(r), pos: i})
			i++
		default:
			start := i
			for i < len(s) && isWordByte(s[i]) {
				i++
			}
			if start == i {
				// Unknown punctuation becomes its own token so the parser
				// can report it.
				i++
			}
			toks = append(toks, token{text: s[start:i], pos: start})
		}
	}
	return toks
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

type typeParser struct {
	expr string
	toks []token
	i    int
}

func (p *typeParser) peek() (token, bool) {
	if p.i >= len(p.toks) {
		return token{pos: len(p.expr)}, false
	}
	return p.toks[p.i], true
}

func (p *typeParser) next() (token, bool) {
	t, ok := p.peek()
	if ok {
		p.i++
	}
	return t, ok
}

func (p *typeParser) errorf(pos int, format string, args ...any) error {
	return &ParseError{Expr: p.expr, Offset: pos, Message: fmt.Sprintf(format, args...)}
}

func (p *typeParser) parse(resolve Resolver) (Type, error) {
	if strings.TrimSpace(p.expr) == "" {
		return nil, p.errorf(0, "empty type expression")
	}

	leadingConst := false
	if t, ok := p.peek(); ok && t.text == "const" {
		leadingConst = true
		p.i++
	}

	base, err := p.parseBase(resolve)
	if err != nil {
		return nil, err
	}
	if leadingConst {
		base = ConstOf(base)
	}

	for {
		t, ok := p.next()
		if !ok {
			return base, nil
		}
		switch t.text {
		case "*":
			base = PointerTo(base)
		case "const":
			base = ConstOf(base)
		default:
			return nil, p.errorf(t.pos, "unexpected %q", t.text)
		}
	}
}

func (p *typeParser) parseBase(resolve Resolver) (Type, error) {
	t, ok := p.next()
	if !ok {
		return nil, p.errorf(t.pos, "missing base type")
	}

	if s, ok := scalarNames[t.text]; ok {
		return s, nil
	}
	if t.text == "record" {
		return p.parseRecord(t)
	}
	if !isIdentifier(t.text) {
		return nil, p.errorf(t.pos, "unexpected %q", t.text)
	}
	if resolve != nil {
		if named, ok := resolve(t.text); ok {
			return named, nil
		}
	}
	return nil, p.errorf(t.pos, "unknown type name %q", t.text)
}

// parseRecord parses the "<size, align>" tail of a record expression.
func (p *typeParser) parseRecord(kw token) (Type, error) {
	if err := p.expect("<"); err != nil {
		return nil, err
	}
	size, err := p.parseInt()
	if err != nil {
		return nil, err
	}
	if err := p.expect(","); err != nil {
		return nil, err
	}
	align, err := p.parseInt()
	if err != nil {
		return nil, err
	}
	if err := p.expect(">"); err != nil {
		return nil, err
	}
	if size <= 0 || align <= 0 {
		return nil, p.errorf(kw.pos, "record size and alignment must be positive")
	}
	return NewRecord(size, align), nil
}

func (p *typeParser) expect(text string) error {
	t, ok := p.next()
	if !ok || t.text != text {
		return p.errorf(t.pos, "expected %q", text)
	}
	return nil
}

func (p *typeParser) parseInt() (int, error) {
	t, ok := p.next()
	if !ok {
		return 0, p.errorf(t.pos, "expected integer")
	}
	n, err := strconv.Atoi(t.text)
	if err != nil {
		return 0, p.errorf(t.pos, "expected integer, got %q", t.text)
	}
	return n, nil
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return false
	}
	return true
}
