package postfix

import (
	"strconv"

	"shunt/internal/diag"
	"shunt/internal/token"
	"shunt/internal/trace"
)

// Options configures Convert.
type Options struct {
	// MaxDepth limits parenthesis nesting; 0 means unlimited.
	MaxDepth int
	Tracer   trace.Tracer
	// Parent is the trace span the stack events attach to.
	Parent uint64
}

// Convert reorders tokens into postfix order.
// The input slice is read left to right and never modified.
func Convert(tokens []token.Token, opts Options) ([]token.Token, error) {
	tr := trace.OrNop(opts.Tracer)
	debug := tr.Enabled()

	output := make([]token.Token, 0, len(tokens))
	stack := opStack{}
	depth := 0

	emit := func(t token.Token) {
		output = append(output, t)
		if debug {
			trace.Point(tr, trace.ScopeToken, "emit", t.String(), opts.Parent)
		}
	}

	for _, t := range tokens {
		switch t.Kind {
		case token.Number:
			emit(t)

		case token.Operator:
			d, ok := t.Descriptor()
			if !ok {
				return nil, diag.Errorf(diag.SynUnexpectedToken, t.Span, "unknown operator %q", t.Text)
			}
			// negation follows the same rule as the binary operators
			for stack.topBindsAtLeast(d.Precedence) {
				emit(stack.unsafePop())
			}
			stack.push(t)
			if debug {
				trace.Point(tr, trace.ScopeToken, "push", t.String(), opts.Parent)
			}

		case token.ParenOpen:
			depth++
			if opts.MaxDepth > 0 && depth > opts.MaxDepth {
				return nil, diag.Errorf(diag.SynNestingTooDeep, t.Span,
					"parentheses nested deeper than %d", opts.MaxDepth)
			}
			stack.push(t)

		case token.ParenClose:
			found := false
			for stack.size() > 0 {
				top := stack.unsafePop()
				if top.Kind == token.ParenOpen {
					found = true
					break
				}
				emit(top)
			}
			if !found {
				return nil, diag.Errorf(diag.SynMismatchedParentheses, t.Span, "')' without matching '('")
			}
			depth--

		default:
			return nil, diag.Errorf(diag.SynUnexpectedToken, t.Span, "unexpected %s token", t.Kind)
		}
	}

	for stack.size() > 0 {
		top := stack.unsafePop()
		if top.Kind == token.ParenOpen {
			return nil, diag.Errorf(diag.SynMismatchedParentheses, top.Span, "'(' is never closed")
		}
		emit(top)
	}

	if debug {
		trace.Point(tr, trace.ScopeStage, "postfix", strconv.Itoa(len(output))+" tokens", opts.Parent)
	}
	return output, nil
}
