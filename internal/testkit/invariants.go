package testkit

import (
	"errors"
	"fmt"
	"math"

	"fortio.org/safecast"

	"shunt/internal/diag"
	"shunt/internal/token"
)

// CheckTokenInvariants checks a successful tokenizer result against its input:
// 1) every span is non-empty and inside the input
// 2) spans appear in source order without overlap
// 3) numbers are finite, operators have a descriptor
func CheckTokenInvariants(input string, toks []token.Token) error {
	n, err := safecast.Conv[uint32](len(input))
	if err != nil {
		return fmt.Errorf("input length overflow: %w", err)
	}
	var prevEnd uint32
	for i, t := range toks {
		if t.Span.Empty() {
			return fmt.Errorf("token %d (%s) has empty span", i, t)
		}
		if t.Span.End > n {
			return fmt.Errorf("token %d span %v beyond input of %d bytes", i, t.Span, n)
		}
		if t.Span.Start < prevEnd {
			return fmt.Errorf("token %d span %v overlaps previous end %d", i, t.Span, prevEnd)
		}
		prevEnd = t.Span.End

		switch t.Kind {
		case token.Number:
			if math.IsNaN(t.Value) || math.IsInf(t.Value, 0) {
				return fmt.Errorf("token %d: non-finite number %v", i, t.Value)
			}
		case token.Operator:
			if _, ok := t.Descriptor(); !ok {
				return fmt.Errorf("token %d: operator %q has no descriptor", i, t.Text)
			}
		case token.ParenOpen, token.ParenClose:
		default:
			return fmt.Errorf("token %d: unexpected kind %s", i, t.Kind)
		}
	}
	return nil
}

// CheckErrorInvariants checks that err is a *diag.Error with a known code
// whose span lies inside the input. Empty spans may sit at the input end.
func CheckErrorInvariants(input string, err error) error {
	var de *diag.Error
	if !errors.As(err, &de) {
		return fmt.Errorf("error %v is %T, not *diag.Error", err, err)
	}
	if de.Code.Stage() == diag.StageUnknown {
		return fmt.Errorf("error %v has unknown code %d", de, de.Code)
	}
	n, cerr := safecast.Conv[uint32](len(input))
	if cerr != nil {
		return fmt.Errorf("input length overflow: %w", cerr)
	}
	if de.Span.Start > de.Span.End || de.Span.End > n {
		return fmt.Errorf("error %v span %v outside input of %d bytes", de, de.Span, n)
	}
	return nil
}
