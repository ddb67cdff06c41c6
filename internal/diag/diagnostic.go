package diag

import (
	"shunt/internal/source"
)

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	// Input is the index of the expression within a batch.
	Input int
}
