package lexer

import (
	"unicode/utf8"

	"shunt/internal/diag"
	"shunt/internal/source"
	"shunt/internal/token"
	"shunt/internal/trace"
)

// State is the context carried from one token to the next.
type State struct {
	// ExpectOperand is true at the start of input and after an operator or '('.
	// In this state '+' is dropped and '-' becomes unary negation.
	ExpectOperand bool
	// Signed is true once a unary sign was consumed for the pending operand.
	Signed bool
}

// Start is the state at the beginning of input.
func Start() State { return State{ExpectOperand: true} }

// after computes the state following tok.
func after(tok token.Token, signed bool) State {
	switch tok.Kind {
	case token.Operator:
		return State{ExpectOperand: true, Signed: signed}
	case token.ParenOpen:
		return State{ExpectOperand: true}
	}
	return State{}
}

// Scan reads the token that starts at or after off.
// It returns the token, the offset just past it and the state for the next call.
// At the end of input the token kind is token.EOF.
func Scan(src string, off uint32, st State) (token.Token, uint32, State, error) {
	c := NewCursor(src)
	c.Off = off

	for {
		c.SkipSpace()
		if c.EOF() {
			return token.Token{Kind: token.EOF, Span: c.SpanFrom(c.Mark())}, c.Off, st, nil
		}

		start := c.Mark()
		ch := c.Peek()

		switch {
		case c.Eat('('):
			tok := token.Token{Kind: token.ParenOpen, Span: c.SpanFrom(start), Text: c.TextFrom(start)}
			return tok, c.Off, after(tok, false), nil

		case c.Eat(')'):
			tok := token.Token{Kind: token.ParenClose, Span: c.SpanFrom(start), Text: c.TextFrom(start)}
			return tok, c.Off, after(tok, false), nil

		case isDec(ch) || ch == '.':
			tok, err := scanNumber(&c)
			if err != nil {
				return token.Token{}, c.Off, st, err
			}
			return tok, c.Off, after(tok, false), nil
		}

		op, ok := token.BinaryOp(ch)
		if !ok {
			return token.Token{}, c.Off, st, illegal(src, c.Off)
		}
		c.Bump()

		if !st.ExpectOperand {
			tok := token.NewOperator(op, c.SpanFrom(start), c.TextFrom(start))
			return tok, c.Off, after(tok, false), nil
		}

		switch op {
		case token.OpAdd, token.OpSub:
			if st.Signed {
				return token.Token{}, uint32(start), st, diag.Errorf(diag.LexUnexpectedOperator,
					c.SpanFrom(start), "unexpected '%s' after unary sign", op.Symbol())
			}
			if op == token.OpAdd {
				// unary plus is a no-op
				st.Signed = true
				continue
			}
			tok := token.NewOperator(token.OpNeg, c.SpanFrom(start), c.TextFrom(start))
			return tok, c.Off, after(tok, true), nil
		default:
			return token.Token{}, uint32(start), st, diag.Errorf(diag.LexUnexpectedOperator,
				c.SpanFrom(start), "unexpected operator '%s', expected a number", op.Symbol())
		}
	}
}

// illegal reports the character at off, covering the whole rune.
func illegal(src string, off uint32) error {
	r, size := utf8.DecodeRuneInString(src[off:])
	sp := source.Span{Start: off, End: off + source.Offset(size)}
	if r == utf8.RuneError && size <= 1 {
		return diag.Errorf(diag.LexIllegalCharacter, sp, "illegal byte 0x%02x", src[off])
	}
	return diag.Errorf(diag.LexIllegalCharacter, sp, "illegal character %q", r)
}

// Options configures Tokenize.
type Options struct {
	// MaxInputBytes rejects longer input; 0 means unlimited.
	MaxInputBytes uint32
	Tracer        trace.Tracer
	// Parent is the trace span the token events attach to.
	Parent uint64
}

// Tokenize splits input into a token sequence in source order.
// It stops at the first error.
func Tokenize(input string, opts Options) ([]token.Token, error) {
	tr := trace.OrNop(opts.Tracer)

	n := source.Len(input)
	if opts.MaxInputBytes > 0 && n > opts.MaxInputBytes {
		return nil, diag.Errorf(diag.LexInputTooLong, source.Span{Start: opts.MaxInputBytes, End: n},
			"input is %d bytes, limit is %d", n, opts.MaxInputBytes)
	}

	toks := make([]token.Token, 0, len(input)/2+1)
	off := uint32(0)
	st := Start()
	for {
		tok, next, nst, err := Scan(input, off, st)
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.EOF {
			break
		}
		if tr.Enabled() {
			trace.Point(tr, trace.ScopeToken, tok.Kind.String(), tok.String()+" @"+tok.Span.String(), opts.Parent)
		}
		toks = append(toks, tok)
		off, st = next, nst
	}
	return toks, nil
}
