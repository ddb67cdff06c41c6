// Package token defines the lexical tokens of arithmetic expressions and the
// static operator table shared by the converter and the evaluator.
// Invariants:
//   - Token.Text is a slice of the original input (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - A Number token always carries a finite, non-NaN Value.
//   - An Operator token always carries an Op that has a Descriptor.
//   - Unary negation is its own operator (OpNeg, symbol '#'); unary plus never
//     reaches the token stream.
package token
