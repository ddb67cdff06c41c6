package lexer

import (
	"shunt/internal/source"
)

// Cursor is a byte position inside the expression text.
type Cursor struct {
	Src string
	Off uint32
	// Limit is the exclusive upper bound for Off; defaults to len(Src).
	Limit uint32
}

// NewCursor creates a cursor at the start of src.
func NewCursor(src string) Cursor {
	return Cursor{Src: src, Limit: source.Len(src)}
}

// EOF reports whether the cursor has reached the limit.
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// Peek returns the current byte, or 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.Src[c.Off]
}

// Bump advances one byte and returns the byte it passed over.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.Src[c.Off]
	c.Off++
	return b
}

// Eat consumes the next byte if it matches b.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.Src[c.Off] == b {
		c.Off++
		return true
	}
	return false
}

// Mark is a saved position used to build spans.
type Mark uint32

// Mark saves the current position.
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom returns the span from m to the current position.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{Start: uint32(m), End: c.Off}
}

// TextFrom returns the input between m and the current position.
func (c *Cursor) TextFrom(m Mark) string {
	return c.Src[m:c.Off]
}

// Reset moves the cursor back to m.
func (c *Cursor) Reset(m Mark) {
	c.Off = uint32(m)
}

// SkipSpace advances past ASCII whitespace.
func (c *Cursor) SkipSpace() {
	for !c.EOF() && isSpace(c.Src[c.Off]) {
		c.Off++
	}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }
