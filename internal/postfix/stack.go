package postfix

import "shunt/internal/token"

// opStack holds pending operators and open parentheses.
type opStack struct {
	s []token.Token
}

func (o *opStack) push(t token.Token) {
	o.s = append(o.s, t)
}

func (o *opStack) size() int {
	return len(o.s)
}

// unsafeTop and unsafePop must only be called on a non-empty stack.
func (o *opStack) unsafeTop() token.Token {
	return o.s[len(o.s)-1]
}

func (o *opStack) unsafePop() token.Token {
	t := o.s[len(o.s)-1]
	o.s = o.s[:len(o.s)-1]
	return t
}

// topBindsAtLeast reports whether the top of the stack is an operator whose
// precedence is >= prec.
func (o *opStack) topBindsAtLeast(prec int) bool {
	if o.size() == 0 {
		return false
	}
	d, ok := o.unsafeTop().Descriptor()
	return ok && d.Precedence >= prec
}
