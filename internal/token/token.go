package token

import (
	"strconv"

	"shunt/internal/source"
)

// Token represents a single token with its location in the input.
type Token struct {
	Kind  Kind
	Span  source.Span
	Text  string
	Value float64 // Kind == Number
	Op    Op      // Kind == Operator
}

// NewNumber builds a Number token.
func NewNumber(v float64, sp source.Span, text string) Token {
	return Token{Kind: Number, Span: sp, Text: text, Value: v}
}

// NewOperator builds an Operator token.
func NewOperator(op Op, sp source.Span, text string) Token {
	return Token{Kind: Operator, Span: sp, Text: text, Op: op}
}

// Descriptor returns the operator descriptor; ok is false for non-operators.
func (t Token) Descriptor() (Descriptor, bool) {
	if t.Kind != Operator {
		return Descriptor{}, false
	}
	return Lookup(t.Op)
}

// String renders the token the way it appears in postfix listings.
func (t Token) String() string {
	switch t.Kind {
	case Number:
		return strconv.FormatFloat(t.Value, 'g', -1, 64)
	case Operator:
		return t.Op.Symbol()
	case ParenOpen:
		return "("
	case ParenClose:
		return ")"
	}
	return t.Text
}

// Join renders a token sequence separated by spaces, e.g. "2 2 3 * +".
func Join(toks []Token) string {
	buf := make([]byte, 0, len(toks)*3)
	for i, t := range toks {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, t.String()...)
	}
	return string(buf)
}
