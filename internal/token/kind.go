package token

// Kind represents the category of a token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of input. Scan returns it; sequences never contain it.
	EOF
	// Number is a decimal literal.
	Number
	// Operator is a binary operator or unary negation.
	Operator
	// ParenOpen is '('.
	ParenOpen
	// ParenClose is ')'.
	ParenClose
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Number:
		return "Number"
	case Operator:
		return "Operator"
	case ParenOpen:
		return "ParenOpen"
	case ParenClose:
		return "ParenClose"
	}
	return "Unknown"
}
