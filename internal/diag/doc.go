// Package diag defines the error model shared by all pipeline stages.
//
// # Data model
//
// Every failure of the tokenizer, the shunting-yard converter or the postfix
// evaluator is an *Error carrying:
//
//   - Code – compact numeric identifier (see codes.go) with stable string form
//     (LEX1001, SYN2006, EVL3001 ...).
//   - Span – byte range in the input pointing at the issue. Errors that have no
//     natural location (EmptyExpression) use the empty span at offset 0.
//   - Msg – short human oriented text.
//
// Callers distinguish kinds programmatically with errors.Is against the
// exported sentinels (ErrMalformedNumber, ErrMismatchedParentheses, ...) or
// with errors.As to reach the span. Never match on message text.
//
// # Collecting
//
// Diagnostic and Bag aggregate several errors when many expressions are
// validated in one go. A single Compute call still stops at the first error.
//
// Package diag does not format anything for humans; rendering lives in
// internal/diagfmt.
package diag
