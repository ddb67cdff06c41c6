package lexer

import (
	"math"
	"strconv"

	"shunt/internal/diag"
	"shunt/internal/source"
	"shunt/internal/token"
)

// scanNumber reads a maximal run of digits with at most one '.'.
// Accepted: 12, 1.5, .5, 1. Rejected: ".", "1.2.3" (at the second '.').
func scanNumber(c *Cursor) (token.Token, error) {
	start := c.Mark()
	seenDot := false

	for !c.EOF() {
		b := c.Peek()
		if isDec(b) {
			c.Bump()
			continue
		}
		if b != '.' {
			break
		}
		if seenDot {
			return token.Token{}, diag.Errorf(diag.LexMalformedNumber, source.At(c.Off),
				"number cannot contain more than one point")
		}
		seenDot = true
		c.Bump()
	}

	sp := c.SpanFrom(start)
	text := c.TextFrom(start)
	if text == "." {
		return token.Token{}, diag.Errorf(diag.LexMalformedNumber, sp, "expected digit around '.'")
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(v, 0) {
		return token.Token{}, diag.Errorf(diag.LexMalformedNumber, sp, "number %q is out of range", text)
	}
	return token.NewNumber(v, sp, text), nil
}
