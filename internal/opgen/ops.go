package opgen

// Op is a C++ operator token.
type Op string

// OpKind classifies an operator by the overloads it receives.
type OpKind int

const (
	// Relational operators compare two values and return bool.
	Relational OpKind = iota + 1
	// Binary operators combine element-wise and return a new value. Each
	// gets value/value, scalar/value and value/scalar overloads.
	Binary
	// Compound operators assign in place and return the left operand.
	Compound
)

func (k OpKind) String() string {
	switch k {
	case Relational:
		return "relational"
	case Binary:
		return "binary"
	case Compound:
		return "compound"
	default:
		return "unknown"
	}
}

// Ops lists every generated operator in emission order.
var Ops = []Op{
	"==", "!=", "+", "-", "*", "/", "%", "<<", ">>", "&", "|", "^", "&&", "||", "<",
	">", "<=", ">=", "+=", "-=", "*=", "/=", "%=", "<<=", ">>=", "&=", "|=", "^=",
}

var (
	relationalOps = set("==", "!=")
	binaryOps     = set("+", "-", "*", "/", "%", "<<", ">>", "&", "|", "^", "&&", "||", "<", ">", "<=", ">=")
	compoundOps   = set("+=", "-=", "*=", "/=", "%=", "<<=", ">>=", "&=", "|=", "^=")
)

func set(ops ...Op) map[Op]bool {
	m := make(map[Op]bool, len(ops))
	for _, op := range ops {
		m[op] = true
	}
	return m
}

func (o Op) IsRel() bool      { return relationalOps[o] }
func (o Op) IsBin() bool      { return binaryOps[o] }
func (o Op) IsCompound() bool { return compoundOps[o] }

// Kind returns the operator's class, or 0 for an unknown token.
func (o Op) Kind() OpKind {
	switch {
	case o.IsRel():
		return Relational
	case o.IsBin():
		return Binary
	case o.IsCompound():
		return Compound
	default:
		return 0
	}
}
