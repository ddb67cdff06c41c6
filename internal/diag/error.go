package diag

import (
	"fmt"

	"shunt/internal/source"
)

// Error is the single error type produced by the pipeline stages.
type Error struct {
	Code Code
	Span source.Span
	Msg  string
}

// Sentinels for errors.Is. Only the Code is compared.
var (
	ErrIllegalCharacter      = &Error{Code: LexIllegalCharacter}
	ErrMalformedNumber       = &Error{Code: LexMalformedNumber}
	ErrInputTooLong          = &Error{Code: LexInputTooLong}
	ErrUnexpectedOperator    = &Error{Code: LexUnexpectedOperator}
	ErrUnexpectedToken       = &Error{Code: SynUnexpectedToken}
	ErrMismatchedParentheses = &Error{Code: SynMismatchedParentheses}
	ErrNestingTooDeep        = &Error{Code: SynNestingTooDeep}
	ErrInsufficientOperands  = &Error{Code: EvalInsufficientOperands}
	ErrExcessOperands        = &Error{Code: EvalExcessOperands}
	ErrEmptyExpression       = &Error{Code: EvalEmptyExpression}
)

// Errorf builds an *Error with a formatted message.
func Errorf(code Code, sp source.Span, format string, args ...any) *Error {
	return &Error{Code: code, Span: sp, Msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Code.Title()
	}
	if e.Span.Empty() {
		return fmt.Sprintf("%s: %s", e.Code.ID(), msg)
	}
	return fmt.Sprintf("%s: %s at offset %d", e.Code.ID(), msg, e.Span.Start)
}

// Is matches any *Error with the same Code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Offset returns the byte offset the error points at.
func (e *Error) Offset() uint32 { return e.Span.Start }

// Diagnostic converts the error into a bag entry.
func (e *Error) Diagnostic() Diagnostic {
	return Diagnostic{Severity: SevError, Code: e.Code, Message: e.Msg, Primary: e.Span}
}
