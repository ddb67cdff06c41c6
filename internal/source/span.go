package source

import (
	"fmt"
)

// Span is a half-open byte range [Start, End) into the expression text.
type Span struct {
	Start uint32 // в байтах включительно
	End   uint32 // в байтах не включительно
}

// At returns the one-byte span starting at off.
func At(off uint32) Span {
	return Span{Start: off, End: off + 1}
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// Cover returns the smallest span containing both s and other.
func (s Span) Cover(other Span) Span {
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// Clamp trims the span so that it does not reach past n bytes.
func (s Span) Clamp(n uint32) Span {
	if s.Start > n {
		s.Start = n
	}
	if s.End > n {
		s.End = n
	}
	return s
}

// Text returns the slice of src covered by the span.
func (s Span) Text(src string) string {
	sp := s.Clamp(Len(src))
	return src[sp.Start:sp.End]
}
