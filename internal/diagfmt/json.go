package diagfmt

import (
	"encoding/json"
	"errors"
	"io"

	"shunt/internal/diag"
	"shunt/internal/source"
)

// ErrorJSON is the machine-readable form of a single error.
type ErrorJSON struct {
	Code    uint16 `json:"code"`
	ID      string `json:"id"`
	Title   string `json:"title"`
	Stage   string `json:"stage"`
	Message string `json:"message"`
	Start   uint32 `json:"start"`
	End     uint32 `json:"end"`
	Text    string `json:"text,omitempty"`
}

// DiagnosticJSON is one entry of a batch report.
type DiagnosticJSON struct {
	Input    int    `json:"input"`
	Severity string `json:"severity"`
	ID       string `json:"id"`
	Message  string `json:"message"`
	Start    uint32 `json:"start"`
	End      uint32 `json:"end"`
}

// DiagnosticsOutput is the root object written by JSONBag.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

// BuildErrorJSON converts err; errors that are not *diag.Error get the unknown code.
func BuildErrorJSON(input string, err error) ErrorJSON {
	var de *diag.Error
	if !errors.As(err, &de) {
		return ErrorJSON{
			ID:      diag.UnknownCode.ID(),
			Title:   diag.UnknownCode.Title(),
			Stage:   diag.StageUnknown.String(),
			Message: err.Error(),
		}
	}
	sp := de.Span.Clamp(source.Len(input))
	return ErrorJSON{
		Code:    uint16(de.Code),
		ID:      de.Code.ID(),
		Title:   de.Code.Title(),
		Stage:   de.Code.Stage().String(),
		Message: message(de),
		Start:   de.Span.Start,
		End:     de.Span.End,
		Text:    sp.Text(input),
	}
}

// JSON writes err as one indented JSON object.
func JSON(w io.Writer, input string, err error) error {
	if err == nil {
		return nil
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildErrorJSON(input, err))
}

// JSONBag writes every diagnostic in bag, in the bag's current order.
func JSONBag(w io.Writer, bag *diag.Bag) error {
	out := DiagnosticsOutput{Diagnostics: []DiagnosticJSON{}}
	if bag != nil {
		for _, d := range bag.Items() {
			out.Diagnostics = append(out.Diagnostics, DiagnosticJSON{
				Input:    d.Input,
				Severity: d.Severity.Label(),
				ID:       d.Code.ID(),
				Message:  d.Message,
				Start:    d.Primary.Start,
				End:      d.Primary.End,
			})
		}
	}
	out.Count = len(out.Diagnostics)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
