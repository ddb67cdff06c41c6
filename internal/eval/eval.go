// Package eval folds a postfix token sequence into a single number.
package eval

import (
	"math"
	"strconv"

	"shunt/internal/diag"
	"shunt/internal/source"
	"shunt/internal/token"
	"shunt/internal/trace"
)

// Options configures Evaluate.
type Options struct {
	Tracer trace.Tracer
	// Parent is the trace span the stack events attach to.
	Parent uint64
}

type binaryFn func(lhs, rhs float64) float64

// Division and remainder by zero follow IEEE 754: ±Inf or NaN, never an error.
var binaryOps = map[token.Op]binaryFn{
	token.OpAdd: func(a, b float64) float64 { return a + b },
	token.OpSub: func(a, b float64) float64 { return a - b },
	token.OpMul: func(a, b float64) float64 { return a * b },
	token.OpDiv: func(a, b float64) float64 { return a / b },
	token.OpMod: math.Mod,
}

// valueStack is the evaluation stack; spans remember where each value came from.
type valueStack struct {
	vals  []float64
	spans []source.Span
}

func (s *valueStack) push(v float64, sp source.Span) {
	s.vals = append(s.vals, v)
	s.spans = append(s.spans, sp)
}

func (s *valueStack) pop() (float64, source.Span) {
	n := len(s.vals) - 1
	v, sp := s.vals[n], s.spans[n]
	s.vals, s.spans = s.vals[:n], s.spans[:n]
	return v, sp
}

func (s *valueStack) size() int { return len(s.vals) }

// Evaluate computes the value of a postfix sequence.
func Evaluate(postfix []token.Token, opts Options) (float64, error) {
	if len(postfix) == 0 {
		return math.NaN(), &diag.Error{Code: diag.EvalEmptyExpression, Msg: "empty expression"}
	}

	tr := trace.OrNop(opts.Tracer)
	debug := tr.Enabled()

	stack := valueStack{
		vals:  make([]float64, 0, len(postfix)/2+1),
		spans: make([]source.Span, 0, len(postfix)/2+1),
	}

	for _, t := range postfix {
		switch t.Kind {
		case token.Number:
			stack.push(t.Value, t.Span)

		case token.Operator:
			d, ok := t.Descriptor()
			if !ok {
				return math.NaN(), diag.Errorf(diag.SynUnexpectedToken, t.Span, "unknown operator %q", t.Text)
			}
			if stack.size() < d.Arity {
				return math.NaN(), diag.Errorf(diag.EvalInsufficientOperands, t.Span,
					"operator '%s' needs %d operands, got %d", t.Op.Symbol(), d.Arity, stack.size())
			}

			var res float64
			sp := t.Span
			if d.Arity == 1 {
				v, vsp := stack.pop()
				res, sp = apply1(t.Op, v), sp.Cover(vsp)
			} else {
				rhs, rsp := stack.pop()
				lhs, lsp := stack.pop()
				res, sp = binaryOps[t.Op](lhs, rhs), sp.Cover(lsp).Cover(rsp)
			}
			stack.push(res, sp)

			if debug {
				trace.Point(tr, trace.ScopeToken, t.Op.Symbol(),
					strconv.FormatFloat(res, 'g', -1, 64), opts.Parent)
			}

		default:
			return math.NaN(), diag.Errorf(diag.SynUnexpectedToken, t.Span, "unexpected %s token in postfix", t.Kind)
		}
	}

	if stack.size() > 1 {
		return math.NaN(), diag.Errorf(diag.EvalExcessOperands, stack.spans[1],
			"%d values left on the stack, missing operator", stack.size())
	}
	res, _ := stack.pop()
	return res, nil
}

func apply1(op token.Op, v float64) float64 {
	if op == token.OpNeg {
		return -v
	}
	return v
}
