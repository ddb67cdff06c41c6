package diag

import "strings"

// Severity ranks a diagnostic. Every pipeline error is SevError; the lower
// levels exist for callers that add their own notes to a Bag.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

// Label is the lower-case form used in rendered headers ("error[LEX1001]").
func (s Severity) Label() string {
	switch s {
	case SevInfo:
		return "info"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	}
	return "unknown"
}

func (s Severity) String() string { return strings.ToUpper(s.Label()) }
