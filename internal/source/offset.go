package source

import (
	"fmt"

	"fortio.org/safecast"
)

// Len returns len(src) as a byte offset.
// Inputs larger than 4 GiB cannot be addressed by a Span.
func Len[T ~string | ~[]byte](src T) uint32 {
	n, err := safecast.Conv[uint32](len(src))
	if err != nil {
		panic(fmt.Errorf("source length overflow: %w", err))
	}
	return n
}

// Offset converts an int index into a byte offset.
func Offset(i int) uint32 {
	off, err := safecast.Conv[uint32](i)
	if err != nil {
		panic(fmt.Errorf("offset overflow: %w", err))
	}
	return off
}
