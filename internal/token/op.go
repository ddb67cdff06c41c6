package token

// Op identifies an arithmetic operator.
type Op uint8

const (
	OpNone Op = iota
	OpAdd     // +
	OpSub     // -
	OpMul     // *
	OpDiv     // /
	OpMod     // %
	OpNeg     // # (unary minus)
)

// Symbol returns the operator's symbol; '#' for unary negation.
func (op Op) Symbol() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	case OpNeg:
		return "#"
	}
	return "?"
}

func (op Op) String() string { return op.Symbol() }

// BinaryOp maps a source byte to its binary operator.
func BinaryOp(b byte) (Op, bool) {
	switch b {
	case '+':
		return OpAdd, true
	case '-':
		return OpSub, true
	case '*':
		return OpMul, true
	case '/':
		return OpDiv, true
	case '%':
		return OpMod, true
	}
	return OpNone, false
}

// Descriptor holds the static properties of an operator.
type Descriptor struct {
	Precedence int // higher binds tighter
	Arity      int
}

var descriptors = [...]Descriptor{
	OpAdd: {Precedence: 1, Arity: 2},
	OpSub: {Precedence: 1, Arity: 2},
	OpMul: {Precedence: 2, Arity: 2},
	OpDiv: {Precedence: 2, Arity: 2},
	OpMod: {Precedence: 2, Arity: 2},
	OpNeg: {Precedence: 1, Arity: 1},
}

// Lookup returns the descriptor for op. OpNone and out-of-range values have none.
func Lookup(op Op) (Descriptor, bool) {
	if op == OpNone || int(op) >= len(descriptors) {
		return Descriptor{}, false
	}
	return descriptors[op], true
}
